package domain

import "fmt"

// Thresholds tune when the consistency rule engine flags a pattern.
type Thresholds struct {
	// MaxStylesheets is the external stylesheet count above which the
	// page counts as fragmented.
	MaxStylesheets int `yaml:"max_stylesheets" json:"max_stylesheets,omitempty"`
	// MaxScripts is the external script count above which the page
	// counts as fragmented.
	MaxScripts int `yaml:"max_scripts" json:"max_scripts,omitempty"`
	// SoftAssetCeiling and HardAssetCeiling bound the combined external
	// asset count; crossing soft is a warning, crossing hard is critical.
	SoftAssetCeiling int `yaml:"soft_asset_ceiling" json:"soft_asset_ceiling,omitempty"`
	HardAssetCeiling int `yaml:"hard_asset_ceiling" json:"hard_asset_ceiling,omitempty"`
	// InlineStyleWarn is the inline style-block count above which the
	// inline-styles finding escalates from info to warning.
	InlineStyleWarn int `yaml:"inline_style_warn" json:"inline_style_warn,omitempty"`
	// NamingMinority is the fraction of class names allowed to deviate
	// from the dominant convention before the page is flagged.
	NamingMinority float64 `yaml:"naming_minority" json:"naming_minority,omitempty"`
}

// ContrastConfig tunes the accessibility audit.
type ContrastConfig struct {
	// TargetRatio is the contrast ratio remediation aims for.
	TargetRatio float64 `yaml:"target_ratio" json:"target_ratio,omitempty"`
	// DarkSelectors adds site-specific dark-mode selectors on top of
	// the built-in framework set.
	DarkSelectors []string `yaml:"dark_selectors" json:"dark_selectors,omitempty"`
}

// FetchConfig tunes outbound HTTP fetches.
type FetchConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds" json:"timeout_seconds,omitempty"`
	MaxBodyKB      int `yaml:"max_body_kb"     json:"max_body_kb,omitempty"`
}

// BrandSlots enumerates the named roles a brand palette can fill.
var BrandSlots = []string{
	"primary", "secondary", "accent", "neutral",
	"success", "warning", "error",
}

// Config holds site-level configuration loaded from .sitescore.yaml.
type Config struct {
	Thresholds Thresholds     `yaml:"thresholds" json:"thresholds,omitempty"`
	Contrast   ContrastConfig `yaml:"contrast"   json:"contrast,omitempty"`
	Fetch      FetchConfig    `yaml:"fetch"      json:"fetch,omitempty"`
	// Brand maps palette slots to hex colors, used for brand-aligned
	// color suggestions.
	Brand map[string]string `yaml:"brand" json:"brand,omitempty"`
}

// DefaultConfig returns the configuration used when no .sitescore.yaml
// is present.
func DefaultConfig() Config {
	return Config{
		Thresholds: Thresholds{
			MaxStylesheets:   5,
			MaxScripts:       6,
			SoftAssetCeiling: 15,
			HardAssetCeiling: 20,
			InlineStyleWarn:  3,
			NamingMinority:   0.30,
		},
		Contrast: ContrastConfig{
			TargetRatio: 7.0,
		},
		Fetch: FetchConfig{
			TimeoutSeconds: 10,
			MaxBodyKB:      2048,
		},
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	// 1. count thresholds must be positive
	counts := map[string]int{
		"max_stylesheets":    c.Thresholds.MaxStylesheets,
		"max_scripts":        c.Thresholds.MaxScripts,
		"soft_asset_ceiling": c.Thresholds.SoftAssetCeiling,
		"hard_asset_ceiling": c.Thresholds.HardAssetCeiling,
		"inline_style_warn":  c.Thresholds.InlineStyleWarn,
	}
	for name, v := range counts {
		if v <= 0 {
			return fmt.Errorf("thresholds.%s must be > 0 (got %d)", name, v)
		}
	}

	// 2. hard ceiling must not undercut the soft ceiling
	if c.Thresholds.HardAssetCeiling < c.Thresholds.SoftAssetCeiling {
		return fmt.Errorf("thresholds.hard_asset_ceiling %d is below soft_asset_ceiling %d",
			c.Thresholds.HardAssetCeiling, c.Thresholds.SoftAssetCeiling)
	}

	// 3. naming minority is a fraction
	if c.Thresholds.NamingMinority < 0 || c.Thresholds.NamingMinority >= 1 {
		return fmt.Errorf("thresholds.naming_minority must be in [0.0, 1.0) (got %.2f)", c.Thresholds.NamingMinority)
	}

	// 4. contrast target must be an achievable ratio
	if c.Contrast.TargetRatio < 1 || c.Contrast.TargetRatio > 21 {
		return fmt.Errorf("contrast.target_ratio must be between 1 and 21 (got %.1f)", c.Contrast.TargetRatio)
	}

	// 5. fetch limits must be positive
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("fetch.timeout_seconds must be > 0 (got %d)", c.Fetch.TimeoutSeconds)
	}
	if c.Fetch.MaxBodyKB <= 0 {
		return fmt.Errorf("fetch.max_body_kb must be > 0 (got %d)", c.Fetch.MaxBodyKB)
	}

	// 6. brand slots must be known and values must be hex colors
	for slot, hex := range c.Brand {
		if !isBrandSlot(slot) {
			return fmt.Errorf("unknown brand slot %q (valid: primary, secondary, accent, neutral, success, warning, error)", slot)
		}
		if !isHexColor(hex) {
			return fmt.Errorf("brand.%s: %q is not a hex color", slot, hex)
		}
	}

	return nil
}

func isBrandSlot(name string) bool {
	for _, s := range BrandSlots {
		if s == name {
			return true
		}
	}
	return false
}

func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
