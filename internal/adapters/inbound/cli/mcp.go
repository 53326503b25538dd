package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/sitescore/sitescore/internal/adapters/inbound/mcp"
	"github.com/sitescore/sitescore/internal/adapters/outbound/config"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the SiteScore MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start SiteScore MCP server (stdio)",
		Long:  "Start the SiteScore MCP server using stdio transport. This lets AI coding assistants audit pages, check contrast and query color suggestions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(".")
			if err != nil {
				return err
			}
			s := mcpadapter.NewSiteScoreMCPServer(cfg)
			return server.ServeStdio(s)
		},
	}
}
