package cssvars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/cssvars"
)

const themeCSS = `
:root {
  --bg: #ffffff;
  --fg: #1a1a1a;
  --brand: #3b82f6;
  --gap: 1.5rem;
  --font-stack: system-ui, sans-serif;
}

@media (prefers-color-scheme: dark) {
  :root {
    --bg: #121212;
    --fg: #e0e0e0;
  }
}

.dark {
  --surface: #1e1e1e;
}
`

func TestExtract_PartitionsModes(t *testing.T) {
	p := cssvars.Extract(themeCSS)

	lightNames := names(p.Light)
	darkNames := names(p.Dark)
	sharedNames := names(p.Shared)

	assert.ElementsMatch(t, []string{"bg", "fg"}, lightNames)
	assert.ElementsMatch(t, []string{"bg", "fg", "surface"}, darkNames)
	assert.ElementsMatch(t, []string{"brand", "gap", "font-stack"}, sharedNames)
}

func TestExtract_DualModeVariableIsNotShared(t *testing.T) {
	css := `:root { --c: #111; }
@media (prefers-color-scheme: dark) { :root { --c: #eee; } }`

	p := cssvars.Extract(css)

	require.Len(t, p.Light, 1)
	require.Len(t, p.Dark, 1)
	assert.Empty(t, p.Shared)

	assert.Equal(t, "c", p.Light[0].Name)
	assert.Equal(t, "#111", p.Light[0].Value)
	assert.Equal(t, domain.ModeLight, p.Light[0].Mode)

	assert.Equal(t, "c", p.Dark[0].Name)
	assert.Equal(t, "#eee", p.Dark[0].Value)
	assert.Equal(t, domain.ModeDark, p.Dark[0].Mode)
}

func TestExtract_LightOnlyIsShared(t *testing.T) {
	p := cssvars.Extract(`:root { --radius: 8px; }`)

	require.Len(t, p.Shared, 1)
	assert.Empty(t, p.Light)
	assert.Empty(t, p.Dark)
	assert.Equal(t, domain.ModeNone, p.Shared[0].Mode)
}

func TestExtract_DarkSelectors(t *testing.T) {
	tests := []struct {
		name string
		css  string
		dark bool
	}{
		{"class dark", `.dark { --x: 1px; }`, true},
		{"dark mode class", `.dark-mode { --x: 1px; }`, true},
		{"dark theme class", `.dark-theme { --x: 1px; }`, true},
		{"data theme attr", `[data-theme="dark"] { --x: 1px; }`, true},
		{"bootstrap attr", `[data-bs-theme="dark"] { --x: 1px; }`, true},
		{"single quoted attr", `[data-theme='dark'] { --x: 1px; }`, true},
		{"compound selector", `html.dark .card { --x: 1px; }`, true},
		{"prefix is not a match", `.darkroom { --x: 1px; }`, false},
		{"plain root", `:root { --x: 1px; }`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := cssvars.Extract(tt.css)
			if tt.dark {
				assert.Len(t, p.Dark, 1)
				assert.Empty(t, p.Shared)
			} else {
				assert.Empty(t, p.Dark)
			}
		})
	}
}

func TestExtractWithSelectors_SiteSpecific(t *testing.T) {
	css := `.theme-night { --bg: #000; }`

	assert.Empty(t, cssvars.Extract(css).Dark)

	p := cssvars.ExtractWithSelectors(css, []string{".theme-night"})
	require.Len(t, p.Dark, 1)
	assert.Equal(t, "bg", p.Dark[0].Name)
}

func TestExtract_ValueTypes(t *testing.T) {
	css := `:root {
  --hex: #ff0000;
  --rgb: rgb(10, 20, 30);
  --named: rebeccapurple;
  --px: 12px;
  --rem: 1.25rem;
  --pct: 50%;
  --negative: -4px;
  --shadow: 0 1px 2px rgba(0, 0, 0, 0.4);
  --stack: Georgia, serif;
}`
	p := cssvars.Extract(css)
	require.Len(t, p.Shared, 9)

	types := map[string]cssvars.VarType{}
	for _, v := range p.Shared {
		types[v.Name] = v.Type
	}
	assert.Equal(t, cssvars.TypeColor, types["hex"])
	assert.Equal(t, cssvars.TypeColor, types["rgb"])
	assert.Equal(t, cssvars.TypeColor, types["named"])
	assert.Equal(t, cssvars.TypeSize, types["px"])
	assert.Equal(t, cssvars.TypeSize, types["rem"])
	assert.Equal(t, cssvars.TypeSize, types["pct"])
	assert.Equal(t, cssvars.TypeSize, types["negative"])
	assert.Equal(t, cssvars.TypeOther, types["shadow"])
	assert.Equal(t, cssvars.TypeOther, types["stack"])
}

func TestExtract_LaterDeclarationWins(t *testing.T) {
	css := `:root { --bg: #fff; }
:root { --bg: #fafafa; }`

	p := cssvars.Extract(css)
	require.Len(t, p.Shared, 1)
	assert.Equal(t, "#fafafa", p.Shared[0].Value)
}

func TestExtract_IgnoresNonRootLightRules(t *testing.T) {
	css := `.card { --pad: 4px; }
:root { --bg: #fff; }`

	p := cssvars.Extract(css)
	require.Len(t, p.Shared, 1)
	assert.Equal(t, "bg", p.Shared[0].Name)
}

func TestExtract_NestedMedia(t *testing.T) {
	css := `@media screen {
  @media (prefers-color-scheme: dark) {
    :root { --bg: #000; }
  }
}`
	p := cssvars.Extract(css)
	require.Len(t, p.Dark, 1)
	assert.Equal(t, "bg", p.Dark[0].Name)
}

func TestExtract_MalformedInput(t *testing.T) {
	assert.True(t, cssvars.Extract("").Empty())
	assert.True(t, cssvars.Extract("body { color: red; }").Empty())

	p := cssvars.Extract(`:root { --ok: 1px; } .broken { --lost: 2px`)
	require.Len(t, p.Shared, 1)
	assert.Equal(t, "ok", p.Shared[0].Name)
}

func TestGenerate_RendersBothModes(t *testing.T) {
	p := cssvars.Extract(themeCSS)
	out := cssvars.Generate(p, nil)

	assert.Contains(t, out, ":root {")
	assert.Contains(t, out, "--brand: #3b82f6;")
	assert.Contains(t, out, "--bg: #ffffff;")
	assert.Contains(t, out, "@media (prefers-color-scheme: dark)")
	assert.Contains(t, out, "--bg: #121212;")
	assert.Contains(t, out, "--surface: #1e1e1e;")
}

func TestGenerate_NoDarkBlockWhenEmpty(t *testing.T) {
	p := cssvars.Extract(`:root { --gap: 8px; }`)
	out := cssvars.Generate(p, nil)

	assert.Contains(t, out, "--gap: 8px;")
	assert.NotContains(t, out, "@media")
}

func TestGenerate_Overrides(t *testing.T) {
	p := cssvars.Extract(themeCSS)

	out := cssvars.Generate(p, map[string]string{
		"brand": "#ff00ff",
		"--bg":  "#fefefe",
	})

	assert.Contains(t, out, "--brand: #ff00ff;")
	assert.Contains(t, out, "--bg: #fefefe;")
	assert.NotContains(t, out, "#3b82f6")
}

func TestGenerate_RoundTrip(t *testing.T) {
	p := cssvars.Extract(themeCSS)
	again := cssvars.Extract(cssvars.Generate(p, nil))

	assert.ElementsMatch(t, names(p.Light), names(again.Light))
	assert.ElementsMatch(t, names(p.Shared), names(again.Shared))
	// The .dark scope is rendered into the media block, so dark names
	// survive even though the emitted selector changes.
	assert.ElementsMatch(t, names(p.Dark), names(again.Dark))
}

func names(vars []cssvars.Variable) []string {
	out := make([]string, 0, len(vars))
	for _, v := range vars {
		out = append(out, v.Name)
	}
	return out
}
