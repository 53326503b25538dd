// Package cssvars extracts CSS custom properties from stylesheet text
// and partitions them into light, dark and shared sets.
//
// Light variables come from :root blocks, dark variables from
// prefers-color-scheme media blocks and framework dark-mode selectors.
// A name defined in both contexts is one logical dual-mode token; a
// name defined only under :root is shared across modes.
package cssvars

import (
	"regexp"
	"strings"

	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/colour"
)

// VarType is the rough kind of a variable's value.
type VarType string

const (
	TypeColor VarType = "color"
	TypeSize  VarType = "size"
	TypeOther VarType = "other"
)

// Variable is one extracted custom property. Name carries no leading
// dashes; Selector is the rule block it was declared in.
type Variable struct {
	Name     string      `json:"name"`
	Value    string      `json:"value"`
	Selector string      `json:"selector"`
	Type     VarType     `json:"type"`
	Mode     domain.Mode `json:"mode"`
}

// Palette partitions one page's variables. Light holds the light half
// of dual-mode tokens, Dark every dark-context definition, and Shared
// the mode-agnostic rest. A name never appears in both Shared and Dark.
type Palette struct {
	Light  []Variable `json:"light"`
	Dark   []Variable `json:"dark"`
	Shared []Variable `json:"shared"`
}

// Empty reports whether nothing was extracted.
func (p Palette) Empty() bool {
	return len(p.Light) == 0 && len(p.Dark) == 0 && len(p.Shared) == 0
}

// darkSelectors are the framework conventions treated as dark-mode
// scopes in addition to the prefers-color-scheme media query.
var darkSelectors = []string{
	".dark",
	".dark-mode",
	".dark-theme",
	`[data-theme="dark"]`,
	`[data-bs-theme="dark"]`,
}

var (
	varDeclRe = regexp.MustCompile(`--([A-Za-z0-9_-]+)\s*:\s*([^;}]+)`)
	sizeValRe = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)(px|r?em|%|v[hw]|vmin|vmax|pt|ch|ex)$`)
)

// Rule is one selector block visited during a stylesheet walk.
type Rule struct {
	Selector string
	Body     string
}

// DarkRules returns every rule block scoped to dark mode, whether by a
// prefers-color-scheme media query or a dark-theme selector.
func DarkRules(css string, extraDark []string) []Rule {
	var out []Rule
	walkRules(css, false, func(sel, body string, inDark bool) {
		if inDark || isDarkSelector(sel, extraDark) {
			out = append(out, Rule{Selector: sel, Body: body})
		}
	})
	return out
}

// Extract parses stylesheet text and partitions its custom properties.
// Malformed CSS degrades to whatever blocks could still be walked.
func Extract(css string) Palette {
	return ExtractWithSelectors(css, nil)
}

// ExtractWithSelectors is Extract with site-specific dark selectors on
// top of the built-in set.
func ExtractWithSelectors(css string, extraDark []string) Palette {
	light := newVarSet()
	dark := newVarSet()

	walkRules(css, false, func(sel, body string, inDark bool) {
		isDark := inDark || isDarkSelector(sel, extraDark)
		isLight := !isDark && strings.Contains(sel, ":root")
		if !isDark && !isLight {
			return
		}
		for _, m := range varDeclRe.FindAllStringSubmatch(body, -1) {
			v := Variable{
				Name:     m[1],
				Value:    strings.TrimSpace(m[2]),
				Selector: sel,
			}
			v.Type = classifyValue(v.Value)
			if isDark {
				dark.put(v)
			} else {
				light.put(v)
			}
		}
	})

	var p Palette
	for _, v := range light.ordered() {
		if dark.has(v.Name) {
			v.Mode = domain.ModeLight
			p.Light = append(p.Light, v)
		} else {
			v.Mode = domain.ModeNone
			p.Shared = append(p.Shared, v)
		}
	}
	for _, v := range dark.ordered() {
		v.Mode = domain.ModeDark
		p.Dark = append(p.Dark, v)
	}
	return p
}

// walkRules is a tolerant CSS block walker. It pairs each selector with
// its brace-matched body, recursing into at-rule bodies so rules inside
// @media and @supports are still visited. Unbalanced braces end the
// walk at the last parsable block.
func walkRules(css string, inDark bool, emit func(sel, body string, inDark bool)) {
	i := 0
	for i < len(css) {
		open := strings.IndexByte(css[i:], '{')
		if open < 0 {
			return
		}
		open += i
		sel := selectorText(css[i:open])
		body, next := matchBraces(css, open)

		if strings.HasPrefix(sel, "@") {
			walkRules(body, inDark || isDarkMedia(sel), emit)
		} else if sel != "" {
			emit(sel, body, inDark)
		}
		i = next
	}
}

// selectorText trims a raw prelude down to the selector it ends with.
func selectorText(s string) string {
	if j := strings.LastIndexAny(s, "};"); j >= 0 {
		s = s[j+1:]
	}
	return strings.TrimSpace(s)
}

// matchBraces returns the body of the block opening at s[open] and the
// index just past its closing brace. An unterminated block runs to the
// end of input.
func matchBraces(s string, open int) (string, int) {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[open+1 : i], i + 1
			}
		}
	}
	return s[open+1:], len(s)
}

func isDarkMedia(sel string) bool {
	lower := strings.ToLower(sel)
	return strings.HasPrefix(lower, "@media") &&
		strings.Contains(lower, "prefers-color-scheme") &&
		strings.Contains(lower, "dark")
}

func isDarkSelector(sel string, extra []string) bool {
	norm := strings.ReplaceAll(strings.ToLower(sel), "'", `"`)
	for _, tok := range darkSelectors {
		if containsToken(norm, tok) {
			return true
		}
	}
	for _, tok := range extra {
		if tok != "" && containsToken(norm, strings.ToLower(tok)) {
			return true
		}
	}
	return false
}

// containsToken reports whether tok occurs in sel ending at a selector
// boundary, so ".dark" matches "html.dark .card" but not ".darkroom".
func containsToken(sel, tok string) bool {
	for from := 0; ; {
		idx := strings.Index(sel[from:], tok)
		if idx < 0 {
			return false
		}
		end := from + idx + len(tok)
		if end == len(sel) || !isIdentChar(sel[end]) {
			return true
		}
		from += idx + 1
	}
}

func isIdentChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

func classifyValue(v string) VarType {
	if _, ok := colour.ParseColor(v); ok {
		return TypeColor
	}
	if sizeValRe.MatchString(v) {
		return TypeSize
	}
	return TypeOther
}

// varSet is an insertion-ordered name->Variable map; a later
// declaration of the same name wins, as in the CSS cascade.
type varSet struct {
	byName map[string]int
	list   []Variable
}

func newVarSet() *varSet {
	return &varSet{byName: map[string]int{}}
}

func (s *varSet) put(v Variable) {
	if i, ok := s.byName[v.Name]; ok {
		s.list[i] = v
		return
	}
	s.byName[v.Name] = len(s.list)
	s.list = append(s.list, v)
}

func (s *varSet) has(name string) bool {
	_, ok := s.byName[name]
	return ok
}

func (s *varSet) ordered() []Variable {
	return s.list
}
