package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/sitescore/sitescore/internal/domain"
)

// NewSiteScoreMCPServer creates a new MCP server with all SiteScore tools
// and resources registered. The config normally comes from .sitescore.yaml
// in the working directory.
func NewSiteScoreMCPServer(cfg domain.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"sitescore",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, cfg)
	registerResources(s, cfg)

	return s
}
