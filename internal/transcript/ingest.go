// ABOUTME: Corpus ingestion: read transcript sources, parse segments, batch-embed contents
// ABOUTME: Unreadable sources are skipped with a warning; a failed embedding batch aborts ingestion
package transcript

import (
	"fmt"
	"log"
	"os"

	"github.com/harper/youtube-advisor/internal/llm"
	"github.com/harper/youtube-advisor/internal/models"
)

// Source names one transcript file to ingest. Title is the display name used
// in citations; when empty the ID is used verbatim.
type Source struct {
	ID    string `yaml:"id"`
	Path  string `yaml:"path"`
	Title string `yaml:"title"`
}

// DisplayTitle returns the citation title for the source
func (s Source) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return s.ID
}

// Ingestor builds a Corpus from transcript sources
type Ingestor struct {
	embedder llm.Embedder
	logger   *log.Logger
}

// NewIngestor creates an Ingestor using the given embedder.
// A nil logger falls back to the standard logger.
func NewIngestor(embedder llm.Embedder, logger *log.Logger) *Ingestor {
	if logger == nil {
		logger = log.Default()
	}
	return &Ingestor{
		embedder: embedder,
		logger:   logger,
	}
}

// Ingest reads every source, parses its segments, then embeds all segment
// contents in one batched call. Missing or unreadable sources are skipped
// with a warning. If no segments parse at all, the corpus is empty and no
// embedding call is made. A failed batch is fatal: a partially embedded
// corpus is never returned.
func (ing *Ingestor) Ingest(sources []Source) (models.Corpus, error) {
	var corpus models.Corpus

	for _, src := range sources {
		data, err := os.ReadFile(src.Path)
		if err != nil {
			ing.logger.Printf("Warning: skipping source %s: %v", src.ID, err)
			continue
		}

		segments := ParseLines(src.ID, src.DisplayTitle(), string(data))
		ing.logger.Printf("Loaded %d segments from %s", len(segments), src.ID)
		corpus = append(corpus, segments...)
	}

	if corpus.IsEmpty() {
		return corpus, nil
	}

	contents := make([]string, len(corpus))
	for i, seg := range corpus {
		contents[i] = seg.Content
	}

	vectors, err := ing.embedder.EmbedBatch(contents)
	if err != nil {
		return nil, fmt.Errorf("embedding corpus: %w", err)
	}
	if len(vectors) != len(corpus) {
		return nil, fmt.Errorf("embedding corpus: got %d vectors for %d segments", len(vectors), len(corpus))
	}

	for i := range corpus {
		corpus[i].Embedding = vectors[i]
	}

	ing.logger.Printf("Created embeddings for %d segments", len(corpus))
	return corpus, nil
}
