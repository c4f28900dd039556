// ABOUTME: Evaluation runner - asks every suite question and collects scored results
// ABOUTME: Consumes the advisor through its public Answer surface, like any other caller
package eval

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Answerer is the advisor surface the runner needs
type Answerer interface {
	Answer(question string) string
}

// Runner executes the evaluation suite against a live advisor
type Runner struct {
	advisor Answerer
	verbose bool
}

// NewRunner creates an evaluation runner
func NewRunner(advisor Answerer, verbose bool) *Runner {
	return &Runner{
		advisor: advisor,
		verbose: verbose,
	}
}

// RunQuestion asks one question and scores the response
func (r *Runner) RunQuestion(q TestQuestion) QuestionResult {
	if r.verbose {
		fmt.Printf("\n========================================\n")
		fmt.Printf("QUESTION [%s]: %s\n", q.Category, q.Question)
		fmt.Printf("========================================\n")
	}

	response := r.advisor.Answer(q.Question)
	result := Evaluate(q, response)

	if r.verbose {
		fmt.Printf("Response: %s\n", previewText(response, 150))
		fmt.Printf("Citations: %d, Topic coverage: %.2f, Fallback: %v\n",
			result.CitationCount, result.TopicCoverage, result.FallbackUsed)
		fmt.Printf("Score: %.2f (%s)\n", result.Score, result.Status)
	}

	return result
}

// previewText shortens verbose output without splitting multibyte runes
func previewText(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}

// RunAll executes every question in the suite
func (r *Runner) RunAll() []QuestionResult {
	questions := GetAllQuestions()
	results := make([]QuestionResult, 0, len(questions))

	for _, q := range questions {
		results = append(results, r.RunQuestion(q))
	}

	return results
}

// ExportResults writes results and a summary to a JSON file
func (r *Runner) ExportResults(results []QuestionResult, outputPath string) error {
	summary := map[string]interface{}{
		"timestamp":       time.Now().Format(time.RFC3339),
		"total_questions": len(results),
		"passed":          0,
		"failed":          0,
		"results":         results,
	}

	for _, result := range results {
		if result.Status == "PASS" {
			summary["passed"] = summary["passed"].(int) + 1
		} else {
			summary["failed"] = summary["failed"].(int) + 1
		}
	}

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	fmt.Printf("Results exported to: %s\n", outputPath)
	return nil
}
