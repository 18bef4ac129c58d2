// ABOUTME: MCP resource implementations over the synced Oura store.
// ABOUTME: Provides the oura://summary dashboard resource.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/ourasync/internal/db"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// oura://summary - latest daily scores plus table counts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "oura://summary",
		Name:        "Oura Sync Summary",
		Description: "Latest daily scores plus row counts for every synced table",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	counts, err := db.CountAll(s.db)
	if err != nil {
		return nil, fmt.Errorf("failed to count tables: %w", err)
	}

	result := map[string]interface{}{
		"tables": counts,
	}

	latest, err := db.LatestDay(s.db)
	if err != nil {
		return nil, err
	}
	if !latest.IsZero() {
		summary, err := db.GetDailySummary(s.db, latest)
		if err != nil {
			return nil, err
		}
		result["latest"] = summary
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "oura://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
