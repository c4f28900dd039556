// ABOUTME: Centralized configuration for the advisor
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/harper/youtube-advisor/internal/transcript"
)

// Config holds all configuration for the advisor
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Retrieval settings
	TopK               int
	OutOfScopeKeywords []string

	// Corpus settings
	SourcesFile string
	Sources     []transcript.Source
}

// Load reads configuration from environment variables, then overlays the
// sources file named by ADVISOR_SOURCES when present.
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		ChatModel:      getEnv("ADVISOR_OPENAI_MODEL", "gpt-4o-mini"),
		EmbeddingModel: getEnv("ADVISOR_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:        getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		TopK:           getEnvInt("ADVISOR_TOP_K", 5),
		SourcesFile:    getEnv("ADVISOR_SOURCES", "sources.yaml"),
	}

	sources, keywords, err := LoadSources(cfg.SourcesFile)
	if err != nil {
		return nil, err
	}
	cfg.Sources = sources
	cfg.OutOfScopeKeywords = keywords

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.TopK < 1 {
		return fmt.Errorf("ADVISOR_TOP_K must be at least 1, got %d", c.TopK)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if len(c.Sources) == 0 {
		return fmt.Errorf("no transcript sources configured")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
