package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sitescore/sitescore/internal/adapters/outbound/config"
	"github.com/sitescore/sitescore/internal/adapters/outbound/tui"
	"github.com/sitescore/sitescore/internal/domain/colour"
	"github.com/sitescore/sitescore/internal/domain/harmony"
)

func newHarmonyCmd() *cobra.Command {
	var (
		jsonOutput bool
		schemeName string
	)

	cmd := &cobra.Command{
		Use:   "harmony <color>",
		Short: "Show color-wheel companions for a color",
		Long:  "Rotate a color around the hue wheel and list its complementary, analogous, triadic, split-complementary and tetradic companions.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, ok := colour.ParseColor(args[0])
			if !ok {
				return fmt.Errorf("unrecognized color %q", args[0])
			}

			cfg, err := config.New().Load(".")
			if err != nil {
				return err
			}
			brand := harmony.PaletteFromHex(cfg.Brand)

			schemes := harmony.Schemes
			if schemeName != "" {
				scheme, err := schemeByName(schemeName)
				if err != nil {
					return err
				}
				schemes = []harmony.Scheme{scheme}
			}

			if jsonOutput {
				return renderJSON(cmd, harmonyJSON(base, schemes, brand))
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHarmony(base, schemes, brand))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output companions as JSON")
	cmd.Flags().StringVar(&schemeName, "scheme", "", "Limit to one scheme (complementary, analogous, triadic, split-complementary, tetradic)")

	return cmd
}

func schemeByName(name string) (harmony.Scheme, error) {
	for _, s := range harmony.Schemes {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown scheme %q (valid: complementary, analogous, triadic, split-complementary, tetradic)", name)
}

type harmonyOutput struct {
	Base         string              `json:"base"`
	Schemes      map[string][]string `json:"schemes"`
	ClosestBrand harmony.BrandMatch  `json:"closest_brand"`
}

func harmonyJSON(base colour.RGB, schemes []harmony.Scheme, brand harmony.BrandPalette) harmonyOutput {
	out := harmonyOutput{
		Base:         base.Hex(),
		Schemes:      make(map[string][]string, len(schemes)),
		ClosestBrand: harmony.ClosestBrandColor(base, brand),
	}
	for _, scheme := range schemes {
		var hexes []string
		for _, c := range harmony.Related(base, scheme) {
			hexes = append(hexes, c.Hex())
		}
		out.Schemes[string(scheme)] = hexes
	}
	return out
}
