package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lumenkit/kbscore/internal/contract"
	mcp_internal "github.com/lumenkit/kbscore/internal/mcp"
	"github.com/lumenkit/kbscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshotFile(t *testing.T) string {
	t.Helper()
	snap := schema.Snapshot{
		Instructions: []schema.Record{
			{ID: "i1", Type: "identity", Title: "About us", Content: "Family dental practice serving downtown since 2005 with a focus on preventive care.", IsActive: true},
		},
	}
	data, err := json.Marshal(snap)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestMCPServerTools(t *testing.T) {
	baseCfg := &contract.Config{
		Vertical:    schema.VerticalGeneric,
		ResultLimit: contract.DefaultResultLimit,
	}
	s := mcp_internal.NewMCPServer(baseCfg)

	ctx := context.Background()

	t.Run("score_knowledge_base missing snapshot_path", func(t *testing.T) {
		tool := s.GetTool("score_knowledge_base")
		require.NotNil(t, tool, "Tool score_knowledge_base should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "score_knowledge_base",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "snapshot_path is required")
	})

	t.Run("score_knowledge_base unreadable snapshot", func(t *testing.T) {
		tool := s.GetTool("score_knowledge_base")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "score_knowledge_base",
				Arguments: map[string]any{
					"snapshot_path": "/nonexistent/snapshot.json",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "failed to load snapshot")
	})

	t.Run("score_knowledge_base returns result JSON", func(t *testing.T) {
		tool := s.GetTool("score_knowledge_base")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "score_knowledge_base",
				Arguments: map[string]any{
					"snapshot_path": writeSnapshotFile(t),
					"vertical":      "dental_clinic",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.IsError)

		var result schema.ScoringResult
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &result))
		assert.Equal(t, schema.VerticalDentalClinic, result.Vertical)
		assert.NotEmpty(t, result.Fields)
		assert.Len(t, result.Categories, len(schema.AllCategories))
	})

	t.Run("list_scoreable_fields returns catalog JSON", func(t *testing.T) {
		tool := s.GetTool("list_scoreable_fields")
		require.NotNil(t, tool, "Tool list_scoreable_fields should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "list_scoreable_fields",
				Arguments: map[string]any{
					"vertical": "restaurant",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.IsError)

		var fields []schema.ScoreableField
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &fields))
		assert.NotEmpty(t, fields)

		var menuLabel string
		for _, f := range fields {
			if f.Key == "services_list" {
				menuLabel = f.Label
			}
		}
		assert.Equal(t, "Menu items", menuLabel)
	})

	t.Run("get_recommendations honors limit", func(t *testing.T) {
		tool := s.GetTool("get_recommendations")
		require.NotNil(t, tool, "Tool get_recommendations should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_recommendations",
				Arguments: map[string]any{
					"snapshot_path": writeSnapshotFile(t),
					"limit":         3.0,
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.False(t, res.IsError)

		var recs []schema.Recommendation
		require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &recs))
		assert.Len(t, recs, 3)
	})
}
