// ABOUTME: Shared advisor construction for CLI commands
// ABOUTME: Loads config, builds the OpenAI collaborators, and ingests the corpus
package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/harper/youtube-advisor/internal/advisor"
	"github.com/harper/youtube-advisor/internal/config"
	"github.com/harper/youtube-advisor/internal/llm"
	"github.com/harper/youtube-advisor/internal/transcript"
	"github.com/joho/godotenv"
)

// buildAdvisor wires the full pipeline: config, OpenAI client with retry
// decorator, corpus ingestion, ranker, and orchestrator.
func buildAdvisor() (*advisor.Advisor, *config.Config, error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.OpenAIKey == "" {
		return nil, nil, fmt.Errorf("OPENAI_API_KEY not set (create a .env file or export it)")
	}

	client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: cfg.EmbeddingModel,
		Timeout:        cfg.Timeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("initializing OpenAI client: %w", err)
	}

	retrying := llm.NewRetryingClient(client, client,
		llm.WithMaxRetries(cfg.MaxRetries),
		llm.WithRetryDelay(cfg.RetryDelay),
	)

	logger := commandLogger()

	ingestor := transcript.NewIngestor(retrying, logger)
	corpus, err := ingestor.Ingest(cfg.Sources)
	if err != nil {
		return nil, nil, fmt.Errorf("ingesting transcripts: %w", err)
	}

	ranker := advisor.NewRanker(retrying, cfg.OutOfScopeKeywords, logger)
	adv := advisor.NewAdvisor(corpus, ranker, retrying, cfg.TopK, logger)

	return adv, cfg, nil
}

// commandLogger returns a logger honoring the global verbosity flags.
// Pipeline progress goes to stderr so answer text on stdout stays clean.
func commandLogger() *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}
