// ABOUTME: Relevance ranking of transcript segments by cosine similarity
// ABOUTME: Applies the out-of-scope keyword gate before any segments are returned
package advisor

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/harper/youtube-advisor/internal/llm"
	"github.com/harper/youtube-advisor/internal/models"
)

// DefaultOutOfScopeKeywords disqualify a question regardless of similarity.
// Substring matching is a coarse heuristic; the list is configuration, not
// policy baked into the ranker.
var DefaultOutOfScopeKeywords = []string{
	"ad spend",
	"advertising",
	"monetization",
	"revenue",
	"analytics",
}

// Ranker scores a question against an embedded corpus
type Ranker struct {
	embedder           llm.Embedder
	outOfScopeKeywords []string
	logger             *log.Logger
}

// NewRanker creates a Ranker. Nil keywords fall back to the default gate
// list; a nil logger falls back to the standard logger.
func NewRanker(embedder llm.Embedder, outOfScopeKeywords []string, logger *log.Logger) *Ranker {
	if outOfScopeKeywords == nil {
		outOfScopeKeywords = DefaultOutOfScopeKeywords
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Ranker{
		embedder:           embedder,
		outOfScopeKeywords: outOfScopeKeywords,
		logger:             logger,
	}
}

// IsOutOfScope reports whether the question contains a disqualifying keyword
func (r *Ranker) IsOutOfScope(question string) bool {
	lower := strings.ToLower(question)
	for _, keyword := range r.outOfScopeKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// Rank returns up to topK segments ordered by descending cosine similarity
// to the question. An empty corpus or an out-of-scope question yields an
// empty result without calling the embedder. There is no minimum-similarity
// floor: weak matches are surfaced rather than refused, and only the keyword
// gate suppresses a question outright. A failed question embedding is
// returned as an error, never conflated with an empty result.
func (r *Ranker) Rank(question string, corpus models.Corpus, topK int) ([]models.Segment, error) {
	if corpus.IsEmpty() {
		return []models.Segment{}, nil
	}

	if r.IsOutOfScope(question) {
		r.logger.Printf("Out-of-scope question gated: %q", question)
		return []models.Segment{}, nil
	}

	vectors, err := r.embedder.EmbedBatch([]string{question})
	if err != nil {
		return nil, fmt.Errorf("embedding question: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embedding question: expected 1 vector, got %d", len(vectors))
	}
	questionVec := vectors[0]

	type scored struct {
		segment    models.Segment
		similarity float64
	}

	candidates := make([]scored, 0, corpus.Len())
	for _, seg := range corpus {
		// Segments without embeddings are excluded, not scored as zero
		if !seg.HasEmbedding() {
			continue
		}
		candidates = append(candidates, scored{
			segment:    seg,
			similarity: CosineSimilarity(questionVec, seg.Embedding),
		})
	}

	// Stable sort keeps corpus order for exact similarity ties
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})

	if len(candidates) > topK {
		candidates = candidates[:topK]
	}

	results := make([]models.Segment, len(candidates))
	for i, c := range candidates {
		results[i] = c.segment
	}

	r.logger.Printf("Returning %d segments for question %q", len(results), question)
	return results, nil
}

// CosineSimilarity calculates cosine similarity between two vectors.
// Mismatched lengths or zero vectors score 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
