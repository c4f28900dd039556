// ABOUTME: Collaborator interfaces for the external embedding and generation services
// ABOUTME: The advisor core depends on these, never on a concrete provider
package llm

// Embedder produces one fixed-length vector per input text, in input order.
// The same embedder instance must be used for corpus ingestion and for
// question embedding so that all vectors share one space.
type Embedder interface {
	EmbedBatch(texts []string) ([][]float64, error)
}

// Generator produces an answer from a system instruction and a user prompt
type Generator interface {
	Generate(systemInstruction, userPrompt string) (string, error)
}
