// ABOUTME: Command-line runner for the advisor evaluation suite
// ABOUTME: Builds a live advisor, asks every suite question, and outputs JSON results
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/harper/youtube-advisor/benchmarks/eval"
	"github.com/harper/youtube-advisor/internal/advisor"
	"github.com/harper/youtube-advisor/internal/config"
	"github.com/harper/youtube-advisor/internal/llm"
	"github.com/harper/youtube-advisor/internal/transcript"
	"github.com/joho/godotenv"
)

func main() {
	// Command-line flags
	outputPath := flag.String("output", "eval_results.json", "Output path for JSON results")
	verbose := flag.Bool("verbose", false, "Enable verbose output")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (continuing anyway): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY environment variable is required for evaluation")
	}

	fmt.Println("========================================")
	fmt.Println("YouTube Advisor Evaluation")
	fmt.Println("========================================")
	fmt.Println()

	client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
		Timeout:        cfg.Timeout,
	})
	if err != nil {
		log.Fatalf("Failed to initialize OpenAI client: %v", err)
	}

	retrying := llm.NewRetryingClient(client, client,
		llm.WithMaxRetries(cfg.MaxRetries),
		llm.WithRetryDelay(cfg.RetryDelay),
	)

	ingestor := transcript.NewIngestor(retrying, log.Default())
	corpus, err := ingestor.Ingest(cfg.Sources)
	if err != nil {
		log.Fatalf("Failed to ingest transcripts: %v", err)
	}

	ranker := advisor.NewRanker(retrying, cfg.OutOfScopeKeywords, log.Default())
	adv := advisor.NewAdvisor(corpus, ranker, retrying, cfg.TopK, log.Default())

	runner := eval.NewRunner(adv, *verbose)
	results := runner.RunAll()

	// Print summary
	fmt.Println("\n========================================")
	fmt.Println("EVALUATION SUMMARY")
	fmt.Println("========================================")

	passed := 0
	failed := 0

	for _, result := range results {
		fmt.Printf("\n[%s] %s\n", result.Category, result.Question)
		fmt.Printf("  Citations: %d\n", result.CitationCount)
		fmt.Printf("  Topic coverage: %.2f\n", result.TopicCoverage)
		fmt.Printf("  Score: %.2f\n", result.Score)
		fmt.Printf("  Status: %s\n", result.Status)

		if result.Status == "PASS" {
			passed++
		} else {
			failed++
		}
	}

	fmt.Println("\n========================================")
	fmt.Printf("Total Questions: %d\n", len(results))
	fmt.Printf("Passed: %d\n", passed)
	fmt.Printf("Failed: %d\n", failed)
	fmt.Println("========================================")

	// Export results
	if err := runner.ExportResults(results, *outputPath); err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}

	// Exit with error code if any questions failed
	if failed > 0 {
		os.Exit(1)
	}
}
