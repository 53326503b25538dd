package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitescore/sitescore/internal/adapters/outbound/config"
	"github.com/sitescore/sitescore/internal/adapters/outbound/tui"
	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/colour"
	"github.com/sitescore/sitescore/internal/domain/suggest"
)

func newSuggestCmd() *cobra.Command {
	var (
		jsonOutput  bool
		largeText   bool
		targetRatio float64
	)

	cmd := &cobra.Command{
		Use:   "suggest <foreground> <background>",
		Short: "Suggest accessible replacements for a color pair",
		Long:  "Run the remediation strategies against a foreground/background pair and list the smallest adjustments that reach the target contrast ratio.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, ok := colour.ParseColor(args[0])
			if !ok {
				return fmt.Errorf("unrecognized foreground color %q", args[0])
			}
			bg, ok := colour.ParseColor(args[1])
			if !ok {
				return fmt.Errorf("unrecognized background color %q", args[1])
			}

			cfg, err := config.New().Load(".")
			if err != nil {
				return err
			}
			target := cfg.Contrast.TargetRatio
			if targetRatio > 0 {
				target = targetRatio
			}

			size := domain.TextSizeNormal
			if largeText {
				size = domain.TextSizeLarge
			}

			suggestions := suggest.Generate(fg, bg, size, target)

			if jsonOutput {
				return renderJSON(cmd, suggestions)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSuggestions(fg.Hex(), bg.Hex(), suggestions))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output suggestions as JSON")
	cmd.Flags().BoolVar(&largeText, "large", false, "Treat the text as large (18pt or 14pt bold)")
	cmd.Flags().Float64Var(&targetRatio, "target", 0, "Contrast ratio to aim for (default from config)")

	return cmd
}
