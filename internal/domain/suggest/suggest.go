// Package suggest searches for minimal color adjustments that lift a
// failing foreground/background pair over a target contrast ratio.
//
// Each strategy is a greedy first-fit walk along one HSL axis: it stops
// at the first step that clears the target, trading global optimality
// for minimal perceptual change.
package suggest

import (
	"fmt"
	"sort"

	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/colour"
	"github.com/sitescore/sitescore/internal/domain/wcag"
)

// DefaultTarget is the AAA contrast ratio for normal text.
const DefaultTarget = 7.0

// Strategy names the axis a suggestion moved along.
type Strategy string

const (
	StrategyDarkenFg     Strategy = "darken-fg"
	StrategyLightenBg    Strategy = "lighten-bg"
	StrategySaturateFg   Strategy = "saturate-fg"
	StrategyDesaturateBg Strategy = "desaturate-bg"
	StrategyHybrid       Strategy = "hybrid"
)

// Search bounds per axis. Lightness moves in fine steps, saturation in
// coarser ones; the hybrid grid nudges both colors a little instead of
// one color a lot.
const (
	lightnessStep   = 5.0
	lightnessBound  = 30.0
	saturationStep  = 10.0
	saturationBound = 40.0
)

var hybridSteps = []float64{5, 10, 15}

// Preview shows a color pair before and after the adjustment.
type Preview struct {
	Original  string `json:"original"`
	Suggested string `json:"suggested"`
}

// Suggestion is one passing alternative for a failing color pair.
type Suggestion struct {
	Foreground     string     `json:"foreground"`
	Background     string     `json:"background"`
	Ratio          float64    `json:"ratio"`
	WCAGLevel      wcag.Level `json:"wcag_level"`
	Strategy       Strategy   `json:"strategy"`
	ImprovementPct float64    `json:"improvement_pct"`
	Preview        Preview    `json:"preview"`
}

// Generate runs all five strategies against the pair and returns their
// first-fit candidates, ranked by improvement over the original ratio
// and deduplicated by resulting (foreground, background) pair.
func Generate(fg, bg colour.RGB, size domain.TextSize, target float64) []Suggestion {
	if target <= 0 {
		target = DefaultTarget
	}
	base := colour.ContrastRatio(fg, bg)

	var out []Suggestion
	add := func(s *Suggestion) {
		if s != nil {
			out = append(out, *s)
		}
	}
	add(darkenFg(fg, bg, base, size, target))
	add(lightenBg(fg, bg, base, size, target))
	add(saturateFg(fg, bg, base, size, target))
	add(desaturateBg(fg, bg, base, size, target))
	add(hybrid(fg, bg, base, size, target))

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ImprovementPct > out[j].ImprovementPct
	})

	seen := make(map[string]bool, len(out))
	uniq := out[:0]
	for _, s := range out {
		key := s.Foreground + "|" + s.Background
		if seen[key] {
			continue
		}
		seen[key] = true
		uniq = append(uniq, s)
	}
	return uniq
}

// Best returns the hybrid suggestion when one survives ranking, since
// it perturbs each color least, and otherwise the top-ranked one.
// Identical colors have no usable gradient and yield nil.
func Best(fg, bg colour.RGB, size domain.TextSize, target float64) *Suggestion {
	if fg == bg {
		return nil
	}
	suggestions := Generate(fg, bg, size, target)
	if len(suggestions) == 0 {
		return nil
	}
	for i := range suggestions {
		if suggestions[i].Strategy == StrategyHybrid {
			return &suggestions[i]
		}
	}
	return &suggestions[0]
}

func darkenFg(fg, bg colour.RGB, base float64, size domain.TextSize, target float64) *Suggestion {
	hsl := fg.HSL()
	for step := lightnessStep; step <= lightnessBound; step += lightnessStep {
		cand := colour.HSL{H: hsl.H, S: hsl.S, L: clamp(hsl.L - step)}.RGB()
		if colour.ContrastRatio(cand, bg) >= target {
			return newSuggestion(fg, bg, cand, bg, base, size, StrategyDarkenFg)
		}
	}
	return nil
}

func lightenBg(fg, bg colour.RGB, base float64, size domain.TextSize, target float64) *Suggestion {
	hsl := bg.HSL()
	for step := lightnessStep; step <= lightnessBound; step += lightnessStep {
		cand := colour.HSL{H: hsl.H, S: hsl.S, L: clamp(hsl.L + step)}.RGB()
		if colour.ContrastRatio(fg, cand) >= target {
			return newSuggestion(fg, bg, fg, cand, base, size, StrategyLightenBg)
		}
	}
	return nil
}

func saturateFg(fg, bg colour.RGB, base float64, size domain.TextSize, target float64) *Suggestion {
	hsl := fg.HSL()
	for step := saturationStep; step <= saturationBound; step += saturationStep {
		cand := colour.HSL{H: hsl.H, S: clamp(hsl.S + step), L: hsl.L}.RGB()
		if colour.ContrastRatio(cand, bg) >= target {
			return newSuggestion(fg, bg, cand, bg, base, size, StrategySaturateFg)
		}
	}
	return nil
}

func desaturateBg(fg, bg colour.RGB, base float64, size domain.TextSize, target float64) *Suggestion {
	hsl := bg.HSL()
	for step := saturationStep; step <= saturationBound; step += saturationStep {
		cand := colour.HSL{H: hsl.H, S: clamp(hsl.S - step), L: hsl.L}.RGB()
		if colour.ContrastRatio(fg, cand) >= target {
			return newSuggestion(fg, bg, fg, cand, base, size, StrategyDesaturateBg)
		}
	}
	return nil
}

func hybrid(fg, bg colour.RGB, base float64, size domain.TextSize, target float64) *Suggestion {
	fgHSL := fg.HSL()
	bgHSL := bg.HSL()
	for _, fgStep := range hybridSteps {
		for _, bgStep := range hybridSteps {
			candFg := colour.HSL{H: fgHSL.H, S: fgHSL.S, L: clamp(fgHSL.L - fgStep)}.RGB()
			candBg := colour.HSL{H: bgHSL.H, S: bgHSL.S, L: clamp(bgHSL.L + bgStep)}.RGB()
			if colour.ContrastRatio(candFg, candBg) >= target {
				return newSuggestion(fg, bg, candFg, candBg, base, size, StrategyHybrid)
			}
		}
	}
	return nil
}

func newSuggestion(origFg, origBg, newFg, newBg colour.RGB, base float64, size domain.TextSize, strategy Strategy) *Suggestion {
	ratio := colour.ContrastRatio(newFg, newBg)
	return &Suggestion{
		Foreground:     newFg.Hex(),
		Background:     newBg.Hex(),
		Ratio:          ratio,
		WCAGLevel:      wcag.Classify(ratio, size),
		Strategy:       strategy,
		ImprovementPct: (ratio - base) / base * 100,
		Preview: Preview{
			Original:  fmt.Sprintf("%s on %s", origFg.Hex(), origBg.Hex()),
			Suggested: fmt.Sprintf("%s on %s", newFg.Hex(), newBg.Hex()),
		},
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
