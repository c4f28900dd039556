// ABOUTME: Tests for environment configuration and the YAML sources file
// ABOUTME: Verifies defaults, overrides, validation, and sources-file fallback

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("ADVISOR_SOURCES", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %q, want gpt-4o-mini", cfg.ChatModel)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %q, want text-embedding-3-small", cfg.EmbeddingModel)
	}
	if cfg.TopK != 5 {
		t.Errorf("TopK = %d, want 5", cfg.TopK)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}

	// Missing sources file falls back to the built-in corpus
	if len(cfg.Sources) != 2 {
		t.Fatalf("len(Sources) = %d, want 2 defaults", len(cfg.Sources))
	}
	if cfg.Sources[0].ID != "aprilynne" || cfg.Sources[1].ID != "hayden" {
		t.Errorf("default source ids = %q, %q", cfg.Sources[0].ID, cfg.Sources[1].ID)
	}
	if cfg.Sources[0].Title != "Improving Video Introductions" {
		t.Errorf("Sources[0].Title = %q", cfg.Sources[0].Title)
	}

	// Nil keyword list means the ranker uses its defaults
	if cfg.OutOfScopeKeywords != nil {
		t.Errorf("OutOfScopeKeywords = %v, want nil", cfg.OutOfScopeKeywords)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("ADVISOR_SOURCES", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("ADVISOR_OPENAI_MODEL", "gpt-4o")
	t.Setenv("ADVISOR_TOP_K", "3")
	t.Setenv("OPENAI_TIMEOUT", "10s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ChatModel != "gpt-4o" {
		t.Errorf("ChatModel = %q, want gpt-4o", cfg.ChatModel)
	}
	if cfg.TopK != 3 {
		t.Errorf("TopK = %d, want 3", cfg.TopK)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
}

func TestLoad_InvalidTopK(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("ADVISOR_SOURCES", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("ADVISOR_TOP_K", "0")

	if _, err := Load(); err == nil {
		t.Error("Load() error = nil, want validation error for TOP_K = 0")
	}
}

func TestLoadSources_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	content := `sources:
  - id: vid1
    path: transcripts/vid1.txt
    title: First Video
  - id: vid2
    path: transcripts/vid2.txt
out_of_scope_keywords:
  - sponsorship
  - brand deal
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	sources, keywords, err := LoadSources(path)
	if err != nil {
		t.Fatalf("LoadSources() error = %v", err)
	}

	if len(sources) != 2 {
		t.Fatalf("len(sources) = %d, want 2", len(sources))
	}
	if sources[0].Title != "First Video" {
		t.Errorf("sources[0].Title = %q, want First Video", sources[0].Title)
	}
	if sources[1].DisplayTitle() != "vid2" {
		t.Errorf("DisplayTitle() = %q, want fallback to id", sources[1].DisplayTitle())
	}
	if len(keywords) != 2 || keywords[0] != "sponsorship" {
		t.Errorf("keywords = %v, want [sponsorship, brand deal]", keywords)
	}
}

func TestLoadSources_MissingFileUsesDefaults(t *testing.T) {
	sources, keywords, err := LoadSources(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadSources() error = %v", err)
	}
	if len(sources) != len(DefaultSources) {
		t.Errorf("len(sources) = %d, want %d", len(sources), len(DefaultSources))
	}
	if keywords != nil {
		t.Errorf("keywords = %v, want nil", keywords)
	}
}

func TestLoadSources_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	if err := os.WriteFile(path, []byte("sources: {not valid"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, _, err := LoadSources(path); err == nil {
		t.Error("LoadSources() error = nil, want parse error")
	}
}

func TestLoadSources_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no sources", "out_of_scope_keywords: [ads]\n"},
		{"source without id", "sources:\n  - path: a.txt\n"},
		{"source without path", "sources:\n  - id: vid1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "sources.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("writing fixture: %v", err)
			}
			if _, _, err := LoadSources(path); err == nil {
				t.Error("LoadSources() error = nil, want error")
			}
		})
	}
}
