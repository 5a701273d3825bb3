package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lumenkit/kbscore/core"
	"github.com/lumenkit/kbscore/internal/contract"
	"github.com/lumenkit/kbscore/internal/loader"
	"github.com/lumenkit/kbscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleScoreKnowledgeBase(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.SnapshotPath = request.GetString("snapshot_path", "")
	if v := request.GetString("vertical", ""); v != "" {
		cfg.Vertical = schema.Vertical(v)
	}

	if cfg.SnapshotPath == "" {
		return mcp.NewToolResultError("snapshot_path is required"), nil
	}

	snap, err := loader.LoadSnapshot(cfg.SnapshotPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load snapshot: %v", err)), nil
	}

	result := core.ScoreKnowledgeBase(snap, cfg.Vertical, time.Now())
	jsonData, _ := json.MarshalIndent(result, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListScoreableFields(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if v := request.GetString("vertical", ""); v != "" {
		cfg.Vertical = schema.Vertical(v)
	}

	fields := core.GetFieldsForVertical(cfg.Vertical)
	jsonData, _ := json.MarshalIndent(fields, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRecommendations(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.SnapshotPath = request.GetString("snapshot_path", "")
	if v := request.GetString("vertical", ""); v != "" {
		cfg.Vertical = schema.Vertical(v)
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	if cfg.SnapshotPath == "" {
		return mcp.NewToolResultError("snapshot_path is required"), nil
	}

	snap, err := loader.LoadSnapshot(cfg.SnapshotPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load snapshot: %v", err)), nil
	}

	result := core.ScoreKnowledgeBase(snap, cfg.Vertical, time.Now())
	recs := result.Recommendations
	if len(recs) > cfg.ResultLimit {
		recs = recs[:cfg.ResultLimit]
	}

	jsonData, _ := json.MarshalIndent(recs, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
