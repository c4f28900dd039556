// ABOUTME: Main entry point for the advisor MCP server with stdio transport
// ABOUTME: Ingests the transcript corpus once, then serves ask_advisor over stdio
package main

import (
	"log"

	"github.com/harper/youtube-advisor/internal/advisor"
	"github.com/harper/youtube-advisor/internal/config"
	"github.com/harper/youtube-advisor/internal/llm"
	"github.com/harper/youtube-advisor/internal/mcp"
	"github.com/harper/youtube-advisor/internal/transcript"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY not set - the advisor cannot embed or answer without it")
	}

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

	// Build the corpus once; it is immutable for the server's lifetime
	ingestor := transcript.NewIngestor(retrying, log.Default())
	corpus, err := ingestor.Ingest(cfg.Sources)
	if err != nil {
		log.Fatalf("Failed to ingest transcripts: %v", err)
	}
	if corpus.IsEmpty() {
		log.Println("Warning: no transcript segments loaded - every question will get the fallback answer")
	}

	ranker := advisor.NewRanker(retrying, cfg.OutOfScopeKeywords, log.Default())
	adv := advisor.NewAdvisor(corpus, ranker, retrying, cfg.TopK, log.Default())

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"YouTube Advisor",
		"1.0.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, adv, cfg.Sources)

	// Start server with stdio transport
	log.Println("Advisor MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
