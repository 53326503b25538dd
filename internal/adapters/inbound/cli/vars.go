package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/sitescore/sitescore/internal/adapters/outbound/config"
	"github.com/sitescore/sitescore/internal/adapters/outbound/fetcher"
	"github.com/sitescore/sitescore/internal/adapters/outbound/tui"
	"github.com/sitescore/sitescore/internal/application"
	"github.com/sitescore/sitescore/internal/domain/cssvars"
)

func newVarsCmd() *cobra.Command {
	var (
		jsonOutput bool
		cssOutput  bool
		overrides  []string
	)

	cmd := &cobra.Command{
		Use:   "vars <url>",
		Short: "Extract a page's CSS custom properties",
		Long:  "Fetch a page and its linked stylesheets, then partition every CSS custom property into light, dark and shared sets.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(".")
			if err != nil {
				return err
			}

			svc := application.NewVariablesService(fetcher.New(cfg.Fetch), cfg, newLogger())

			palette, err := svc.ExtractURL(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("extracting variables: %w", err)
			}

			switch {
			case cssOutput:
				set, err := parseOverrides(overrides)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), cssvars.Generate(*palette, set))
				return nil
			case jsonOutput:
				return renderJSON(cmd, palette)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderPalette(args[0], *palette))
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the palette as JSON")
	cmd.Flags().BoolVar(&cssOutput, "css", false, "Emit the palette back as a :root stylesheet")
	cmd.Flags().StringArrayVar(&overrides, "set", nil, "Override a variable in --css output (name=value, repeatable)")

	return cmd
}

func parseOverrides(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	set := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("bad --set %q, expected name=value", pair)
		}
		set[name] = value
	}
	return set, nil
}

// newLogger builds the service logger; quiet unless --verbose is set.
func newLogger() hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "sitescore",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "sitescore",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}
