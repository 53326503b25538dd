package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	neturl "net/url"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sitescore/sitescore/internal/adapters/outbound/history"
	"github.com/sitescore/sitescore/internal/domain"
)

// registerResources registers all SiteScore MCP resources on the given server.
func registerResources(s *server.MCPServer, cfg domain.Config) {
	// 1. sitescore://config - resolved configuration
	s.AddResource(
		mcplib.NewResource(
			"sitescore://config",
			"Configuration",
			mcplib.WithResourceDescription("Resolved SiteScore configuration, defaults included"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(cfg),
	)

	// 2. sitescore://history/{url} - stored audits per URL (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"sitescore://history/{+url}",
			"Audit History",
			mcplib.WithTemplateDescription("Stored audit results for a URL, oldest first"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleHistoryResource(),
	)
}

func handleConfigResource(cfg domain.Config) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling config: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "sitescore://config",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleHistoryResource() server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		// Populated by template matching; clients may percent-encode the URL.
		raw, ok := request.Params.Arguments["url"].(string)
		if !ok || raw == "" {
			return nil, fmt.Errorf("url is required")
		}
		if unescaped, err := neturl.PathUnescape(raw); err == nil {
			raw = unescaped
		}

		entries, err := history.New(historyRoot()).Load(raw)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		if entries == nil {
			entries = []domain.HistoryEntry{}
		}

		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling history: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
