// ABOUTME: MCP tool handler implementations for the advisor server
// ABOUTME: Exposes grounded question answering and corpus source listing
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/youtube-advisor/internal/transcript"
	"github.com/mark3labs/mcp-go/mcp"
)

// Answerer is the advisor surface the handlers need
type Answerer interface {
	Answer(question string) string
	CorpusSize() int
}

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	advisor Answerer
	sources []transcript.Source
}

// AskAdvisor handles the ask_advisor tool
func (h *Handlers) AskAdvisor(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	// Answer never fails; every failure mode is already a literal message
	answer := h.advisor.Answer(question)
	return mcp.NewToolResultText(answer), nil
}

// ListSources handles the list_sources tool
func (h *Handlers) ListSources(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type sourceInfo struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}

	response := struct {
		Sources      []sourceInfo `json:"sources"`
		SegmentCount int          `json:"segment_count"`
	}{
		Sources:      make([]sourceInfo, 0, len(h.sources)),
		SegmentCount: h.advisor.CorpusSize(),
	}

	for _, src := range h.sources {
		response.Sources = append(response.Sources, sourceInfo{
			ID:    src.ID,
			Title: src.DisplayTitle(),
		})
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}
