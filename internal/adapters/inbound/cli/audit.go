package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sitescore/sitescore/internal/adapters/outbound/config"
	"github.com/sitescore/sitescore/internal/adapters/outbound/fetcher"
	"github.com/sitescore/sitescore/internal/adapters/outbound/history"
	"github.com/sitescore/sitescore/internal/adapters/outbound/tui"
	"github.com/sitescore/sitescore/internal/application"
	"github.com/sitescore/sitescore/internal/domain"
)

func newAuditCmd() *cobra.Command {
	var (
		jsonOutput  bool
		ciMode      bool
		minScore    int
		badge       bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "audit <url>",
		Short: "Audit a page's markup consistency",
		Long:  "Fetch a page and score how consistently its stylesheets, scripts and class names are organized.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(".")
			if err != nil {
				return err
			}

			svc := application.NewAuditService(
				fetcher.New(cfg.Fetch),
				history.New(historyRoot()),
				cfg,
			)

			if showHistory {
				entries, err := svc.History(args[0])
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			result, err := svc.AuditURL(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			switch {
			case jsonOutput:
				return renderJSON(cmd, result)
			case badge:
				return renderBadge(cmd, result)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderAudit(result))
			}

			if ciMode && result.OverallScore < minScore {
				return fmt.Errorf("score %d is below minimum %d", result.OverallScore, minScore)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the audit as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum overall score for CI mode")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show past audits of the URL")

	return cmd
}

// historyRoot is where per-URL audit history lives; saves there are
// best-effort, so a missing home directory only loses the trend view.
func historyRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return home
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderBadge(cmd *cobra.Command, result *domain.AuditResult) error {
	color := domain.BadgeColor(result.OverallScore)
	url := fmt.Sprintf("https://img.shields.io/badge/sitescore-%d%%2F100-%s", result.OverallScore, color)
	fmt.Fprintln(cmd.OutOrStdout(), url)
	return nil
}
