// ABOUTME: Segment and Corpus models for transcript retrieval
// ABOUTME: Defines the atomic unit of retrievable knowledge with its embedding
package models

import "fmt"

// Segment represents one timestamped unit of transcript text.
// Embedding is nil until the ingestion batch has run.
type Segment struct {
	SourceID    string    `json:"source_id"`
	SourceTitle string    `json:"source_title"`
	Timestamp   string    `json:"timestamp"`
	Content     string    `json:"content"`
	Embedding   []float64 `json:"embedding,omitempty"`
}

// String returns a short preview for logging
func (s Segment) String() string {
	content := s.Content
	if len(content) > 100 {
		content = content[:100] + "..."
	}
	return fmt.Sprintf("[%s t=%s] %s", s.SourceID, s.Timestamp, content)
}

// HasEmbedding reports whether the segment has been embedded
func (s Segment) HasEmbedding() bool {
	return len(s.Embedding) > 0
}

// Corpus is the full ordered set of segments available for retrieval.
// It is built once at startup and never mutated afterwards.
type Corpus []Segment

// Len returns the number of segments in the corpus
func (c Corpus) Len() int {
	return len(c)
}

// IsEmpty reports whether the corpus holds no segments
func (c Corpus) IsEmpty() bool {
	return len(c) == 0
}
