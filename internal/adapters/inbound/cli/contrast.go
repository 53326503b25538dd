package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitescore/sitescore/internal/adapters/outbound/config"
	"github.com/sitescore/sitescore/internal/adapters/outbound/fetcher"
	"github.com/sitescore/sitescore/internal/adapters/outbound/tui"
	"github.com/sitescore/sitescore/internal/application"
)

func newContrastCmd() *cobra.Command {
	var (
		jsonOutput  bool
		targetRatio float64
	)

	cmd := &cobra.Command{
		Use:   "contrast <url>",
		Short: "Check a page's colors against WCAG contrast requirements",
		Long:  "Fetch a page, pair up its foreground and background colors, and report WCAG AA/AAA compliance for light and dark mode.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(".")
			if err != nil {
				return err
			}
			if targetRatio > 0 {
				cfg.Contrast.TargetRatio = targetRatio
			}

			svc := application.NewAccessibilityService(fetcher.New(cfg.Fetch), cfg)

			report, err := svc.AuditURL(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("contrast check failed: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderContrastReport(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().Float64Var(&targetRatio, "target", 0, "Contrast ratio suggested fixes aim for (default from config)")

	return cmd
}
