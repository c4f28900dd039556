// ABOUTME: Advisor orchestration: rank, build prompt, delegate to the generator
// ABOUTME: Always returns a string; failures become literal user-facing messages
package advisor

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/harper/youtube-advisor/internal/llm"
	"github.com/harper/youtube-advisor/internal/models"
)

// DefaultTopK is the default number of segments retrieved per question
const DefaultTopK = 5

// FallbackMessage is returned when no relevant segments are found.
// The generator is never called on this path.
const FallbackMessage = "I don't have enough information in the provided transcripts to answer your question. " +
	"Please ask about video introductions or storytelling techniques, which are covered in the available content."

// Advisor answers questions grounded in an immutable transcript corpus
type Advisor struct {
	corpus    models.Corpus
	ranker    *Ranker
	generator llm.Generator
	topK      int
	logger    *log.Logger
}

// NewAdvisor creates an Advisor over an already-ingested corpus.
// topK values below 1 fall back to DefaultTopK; a nil logger falls back to
// the standard logger.
func NewAdvisor(corpus models.Corpus, ranker *Ranker, generator llm.Generator, topK int, logger *log.Logger) *Advisor {
	if topK < 1 {
		topK = DefaultTopK
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Advisor{
		corpus:    corpus,
		ranker:    ranker,
		generator: generator,
		topK:      topK,
		logger:    logger,
	}
}

// CorpusSize returns the number of segments available for retrieval
func (a *Advisor) CorpusSize() int {
	return a.corpus.Len()
}

// Answer runs the full pipeline for one question and returns the answer
// text. It returns a string under every condition: ranking failures and
// generator failures are converted into literal messages at this boundary,
// never propagated to the caller.
func (a *Advisor) Answer(question string) string {
	qid := uuid.New().String()[:8]
	a.logger.Printf("[%s] processing question: %s", qid, question)

	segments, err := a.ranker.Rank(question, a.corpus, a.topK)
	if err != nil {
		// Could not search is distinct from nothing relevant found
		a.logger.Printf("[%s] ranking failed: %v", qid, err)
		return fmt.Sprintf("Sorry, I couldn't search the transcripts right now: %v. Please try again.", err)
	}

	if len(segments) == 0 {
		a.logger.Printf("[%s] no relevant segments, returning fallback", qid)
		return FallbackMessage
	}

	prompt := BuildPrompt(question, segments)

	answer, err := a.generator.Generate(SystemInstruction, prompt)
	if err != nil {
		a.logger.Printf("[%s] generation failed: %v", qid, err)
		return fmt.Sprintf("Sorry, I encountered an error while processing your question: %v", err)
	}

	a.logger.Printf("[%s] generated response with citations", qid)
	return answer
}
