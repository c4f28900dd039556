// ABOUTME: YAML sources file describing the transcript corpus and the out-of-scope gate list
// ABOUTME: A missing file falls back to the built-in default corpus
package config

import (
	"fmt"
	"os"

	"github.com/harper/youtube-advisor/internal/transcript"
	"gopkg.in/yaml.v3"
)

// sourcesFile is the on-disk shape of the sources YAML file
type sourcesFile struct {
	Sources            []transcript.Source `yaml:"sources"`
	OutOfScopeKeywords []string            `yaml:"out_of_scope_keywords"`
}

// DefaultSources is the built-in transcript corpus used when no sources
// file is present
var DefaultSources = []transcript.Source{
	{ID: "aprilynne", Path: "transcripts/aprilynne.txt", Title: "Improving Video Introductions"},
	{ID: "hayden", Path: "transcripts/hayden.txt", Title: "YouTube Storytelling Techniques"},
}

// LoadSources reads the sources file at path. A missing file is not an
// error: the built-in defaults are returned. A present but malformed file
// is an error so a broken corpus configuration never loads silently.
func LoadSources(path string) ([]transcript.Source, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSources, nil, nil
		}
		return nil, nil, fmt.Errorf("reading sources file: %w", err)
	}

	var sf sourcesFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, nil, fmt.Errorf("parsing sources file %s: %w", path, err)
	}

	if len(sf.Sources) == 0 {
		return nil, nil, fmt.Errorf("sources file %s lists no sources", path)
	}

	for i, src := range sf.Sources {
		if src.ID == "" {
			return nil, nil, fmt.Errorf("sources file %s: source %d has no id", path, i)
		}
		if src.Path == "" {
			return nil, nil, fmt.Errorf("sources file %s: source %q has no path", path, src.ID)
		}
	}

	return sf.Sources, sf.OutOfScopeKeywords, nil
}
