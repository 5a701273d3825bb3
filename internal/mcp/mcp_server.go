// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/lumenkit/kbscore/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the kbscore MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Knowledge Base Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: score_knowledge_base ---
	s.AddTool(mcp.NewTool("score_knowledge_base",
		mcp.WithDescription("Score a knowledge base snapshot and return the full readiness report."),
		mcp.WithString("snapshot_path", mcp.Description("Path to the knowledge base snapshot JSON file."), mcp.Required()),
		mcp.WithString("vertical", mcp.Description("Business vertical for catalog overrides. Defaults to 'generic'."), mcp.Enum("generic", "dental_clinic", "restaurant", "beauty_salon", "fitness_studio", "retail")),
	), h.handleScoreKnowledgeBase)

	// --- 2. Tool: list_scoreable_fields ---
	s.AddTool(mcp.NewTool("list_scoreable_fields",
		mcp.WithDescription("List the scoreable field catalog with vertical overrides applied."),
		mcp.WithString("vertical", mcp.Description("Business vertical for catalog overrides. Defaults to 'generic'."), mcp.Enum("generic", "dental_clinic", "restaurant", "beauty_salon", "fitness_studio", "retail")),
	), h.handleListScoreableFields)

	// --- 3. Tool: get_recommendations ---
	s.AddTool(mcp.NewTool("get_recommendations",
		mcp.WithDescription("Score a knowledge base snapshot and return only the ranked improvement recommendations."),
		mcp.WithString("snapshot_path", mcp.Description("Path to the knowledge base snapshot JSON file."), mcp.Required()),
		mcp.WithString("vertical", mcp.Description("Business vertical for catalog overrides. Defaults to 'generic'."), mcp.Enum("generic", "dental_clinic", "restaurant", "beauty_salon", "fitness_studio", "retail")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of recommendations returned.")),
	), h.handleGetRecommendations)

	return s
}

// StartMCPServer starts the kbscore MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
