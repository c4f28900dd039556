// ABOUTME: MCP tool definitions and registration for the advisor server
// ABOUTME: Defines JSON schemas for the ask_advisor and list_sources tools
package mcp

import (
	"github.com/harper/youtube-advisor/internal/transcript"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, advisor Answerer, sources []transcript.Source) *Handlers {
	handlers := &Handlers{
		advisor: advisor,
		sources: sources,
	}

	// 1. ask_advisor - answer a question grounded in the transcript corpus
	server.AddTool(mcp.Tool{
		Name:        "ask_advisor",
		Description: "Ask the YouTube growth advisor a question. Answers are grounded in the loaded video transcripts and cite source titles with timestamps.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Free-text question about YouTube content creation",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskAdvisor)

	// 2. list_sources - list the transcript sources in the loaded corpus
	server.AddTool(mcp.Tool{
		Name:        "list_sources",
		Description: "List the transcript sources the advisor can cite, with the total segment count.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListSources)

	return handlers
}
