package cssvars

import (
	"strings"
)

// Generate renders a palette back to CSS: one :root block with the
// shared and light variables, then a prefers-color-scheme media block
// with the dark ones. Overrides are keyed by variable name, with or
// without the leading dashes, and replace values in every mode they
// appear in.
func Generate(p Palette, overrides map[string]string) string {
	named := make(map[string]string, len(overrides))
	for k, v := range overrides {
		named[strings.TrimPrefix(k, "--")] = v
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	writeVars(&b, p.Shared, named)
	writeVars(&b, p.Light, named)
	b.WriteString("}\n")

	if len(p.Dark) > 0 {
		b.WriteString("\n@media (prefers-color-scheme: dark) {\n  :root {\n")
		for _, v := range p.Dark {
			b.WriteString("    --")
			b.WriteString(v.Name)
			b.WriteString(": ")
			b.WriteString(valueFor(v, named))
			b.WriteString(";\n")
		}
		b.WriteString("  }\n}\n")
	}
	return b.String()
}

func writeVars(b *strings.Builder, vars []Variable, overrides map[string]string) {
	for _, v := range vars {
		b.WriteString("  --")
		b.WriteString(v.Name)
		b.WriteString(": ")
		b.WriteString(valueFor(v, overrides))
		b.WriteString(";\n")
	}
}

func valueFor(v Variable, overrides map[string]string) string {
	if ov, ok := overrides[v.Name]; ok {
		return ov
	}
	return v.Value
}
