// Package markup extracts stylesheet, script, class-name and inline
// color facts from raw HTML text.
//
// Extraction is deliberately regex-based: audited pages are often
// malformed, truncated, or assembled client-side, and a strict DOM
// parse would reject exactly the pages most worth auditing. Every
// pattern is independent and a non-match yields an empty result, never
// an error.
package markup

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sitescore/sitescore/internal/domain"
)

// InlineURL is the synthetic URL recorded for the aggregate inline
// style entry.
const InlineURL = "inline"

// AssetRecord describes one discovered stylesheet or script reference.
type AssetRecord struct {
	URL           string `json:"url"`
	IsExternal    bool   `json:"is_external"`
	IsMinified    bool   `json:"is_minified"`
	SizeHint      int    `json:"size_hint"`
	IsInlineBlock bool   `json:"is_inline_block"`
	// IsDuplicate marks the second and later occurrences of the same
	// script src within one document.
	IsDuplicate bool `json:"is_duplicate,omitempty"`
	// IsDeferred is set for scripts carrying async or defer.
	IsDeferred bool `json:"is_deferred,omitempty"`
}

// ScanResult holds everything one pass over the HTML produced.
type ScanResult struct {
	Stylesheets   []AssetRecord      `json:"stylesheets"`
	Scripts       []AssetRecord      `json:"scripts"`
	InlineStyles  int                `json:"inline_styles"`
	InlineScripts int                `json:"inline_scripts"`
	StyleContents []string           `json:"-"`
	ClassNames    []string           `json:"class_names"`
	ColorPairs    []domain.ColorPair `json:"color_pairs"`
}

var (
	linkRe        = regexp.MustCompile(`(?i)<link\b[^>]*\bhref\s*=\s*["']([^"']+)["'][^>]*>`)
	styleBlockRe  = regexp.MustCompile(`(?is)<style\b[^>]*>(.*?)</style>`)
	scriptOpenRe  = regexp.MustCompile(`(?i)<script\b[^>]*>`)
	scriptSrcRe   = regexp.MustCompile(`(?i)\bsrc\s*=\s*["']([^"']+)["']`)
	scriptFlagRe  = regexp.MustCompile(`(?i)\b(async|defer)\b`)
	classAttrRe   = regexp.MustCompile(`(?i)\bclass\s*=\s*["']([^"']+)["']`)
	styledElemRe  = regexp.MustCompile(`(?i)<(p|h[1-6]|a|button|span|div|li)\b[^>]*\bstyle\s*=\s*["']([^"']*)["'][^>]*>`)
	colorDeclRe   = regexp.MustCompile(`(?i)(?:^|;)\s*color\s*:\s*([^;]+)`)
	bgColorDeclRe = regexp.MustCompile(`(?i)(?:^|;)\s*background(?:-color)?\s*:\s*([^;]+)`)
)

// Scan extracts all asset and color facts from raw HTML. It never
// fails; markup that matches nothing produces an empty result.
func Scan(html string) *ScanResult {
	res := &ScanResult{}
	res.scanStylesheets(html)
	res.scanScripts(html)
	res.scanClassNames(html)
	res.scanColorPairs(html)
	return res
}

func (s *ScanResult) scanStylesheets(html string) {
	for _, m := range linkRe.FindAllStringSubmatch(html, -1) {
		href := strings.TrimSpace(m[1])
		if href == "" {
			continue
		}
		s.Stylesheets = append(s.Stylesheets, AssetRecord{
			URL:        href,
			IsExternal: isExternalURL(href),
			IsMinified: strings.Contains(strings.ToLower(href), ".min.css"),
		})
	}

	for _, m := range styleBlockRe.FindAllStringSubmatch(html, -1) {
		s.StyleContents = append(s.StyleContents, m[1])
	}
	s.InlineStyles = len(s.StyleContents)
	if s.InlineStyles > 0 {
		size := 0
		for _, c := range s.StyleContents {
			size += len(c)
		}
		s.Stylesheets = append(s.Stylesheets, AssetRecord{
			URL:           InlineURL,
			SizeHint:      size,
			IsInlineBlock: true,
		})
	}
}

func (s *ScanResult) scanScripts(html string) {
	seen := map[string]bool{}
	for _, tag := range scriptOpenRe.FindAllString(html, -1) {
		src := scriptSrcRe.FindStringSubmatch(tag)
		if src == nil {
			s.InlineScripts++
			continue
		}
		url := strings.TrimSpace(src[1])
		if url == "" {
			s.InlineScripts++
			continue
		}
		// drop the src attribute so async/defer never matches inside the URL
		attrs := scriptSrcRe.ReplaceAllString(tag, "")
		s.Scripts = append(s.Scripts, AssetRecord{
			URL:         url,
			IsExternal:  isExternalURL(url),
			IsMinified:  strings.Contains(strings.ToLower(url), ".min.js"),
			IsDuplicate: seen[url],
			IsDeferred:  scriptFlagRe.MatchString(attrs),
		})
		seen[url] = true
	}
}

func (s *ScanResult) scanClassNames(html string) {
	set := map[string]bool{}
	for _, m := range classAttrRe.FindAllStringSubmatch(html, -1) {
		for _, name := range strings.Fields(m[1]) {
			set[name] = true
		}
	}
	if len(set) == 0 {
		return
	}
	s.ClassNames = make([]string, 0, len(set))
	for name := range set {
		s.ClassNames = append(s.ClassNames, name)
	}
	sort.Strings(s.ClassNames)
}

func (s *ScanResult) scanColorPairs(html string) {
	for _, m := range styledElemRe.FindAllStringSubmatch(html, -1) {
		tag := strings.ToLower(m[1])
		style := m[2]

		fg, hasFg := firstDecl(colorDeclRe, style)
		bg, hasBg := firstDecl(bgColorDeclRe, style)
		if !hasFg && !hasBg {
			continue
		}
		if !hasFg {
			fg = "#000000"
		}
		if !hasBg {
			bg = "#ffffff"
		}

		s.ColorPairs = append(s.ColorPairs, domain.ColorPair{
			Element:    tag,
			Foreground: fg,
			Background: bg,
			TextSize:   TextSizeFor(tag),
		})
	}
}

func firstDecl(re *regexp.Regexp, style string) (string, bool) {
	m := re.FindStringSubmatch(style)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	return v, v != ""
}

// ColorDeclarations pulls the foreground and background color values
// out of a CSS declaration list. An empty string means the declaration
// is absent. Custom properties such as --text-color never match.
func ColorDeclarations(decls string) (fg, bg string) {
	fg, _ = firstDecl(colorDeclRe, decls)
	bg, _ = firstDecl(bgColorDeclRe, decls)
	return fg, bg
}

// TextSizeFor maps an element tag to its WCAG size class. Headings
// h1-h3 are assumed to render at large-text sizes; everything else is
// treated as normal text.
func TextSizeFor(tag string) domain.TextSize {
	switch tag {
	case "h1", "h2", "h3":
		return domain.TextSizeLarge
	}
	return domain.TextSizeNormal
}

func isExternalURL(url string) bool {
	lower := strings.ToLower(url)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "//")
}

// LinkedStylesheets returns the stylesheet records that reference a
// file, excluding the synthetic inline entry.
func (s *ScanResult) LinkedStylesheets() []AssetRecord {
	var out []AssetRecord
	for _, a := range s.Stylesheets {
		if !a.IsInlineBlock {
			out = append(out, a)
		}
	}
	return out
}

// LinkedScripts returns the script records loaded via src.
func (s *ScanResult) LinkedScripts() []AssetRecord {
	return s.Scripts
}

// DuplicateScriptURLs returns each script URL that appears more than
// once, in first-seen order.
func (s *ScanResult) DuplicateScriptURLs() []string {
	var out []string
	seen := map[string]bool{}
	for _, a := range s.Scripts {
		if a.IsDuplicate && !seen[a.URL] {
			out = append(out, a.URL)
			seen[a.URL] = true
		}
	}
	return out
}

// Stats condenses the scan into the counts reported with an audit.
func (s *ScanResult) Stats() domain.PageStats {
	st := domain.PageStats{
		InlineStyles:  s.InlineStyles,
		InlineScripts: s.InlineScripts,
		ClassNames:    len(s.ClassNames),
	}
	for _, a := range s.Stylesheets {
		if a.IsInlineBlock {
			continue
		}
		st.Stylesheets++
		if a.IsExternal {
			st.ExternalCSS++
		}
	}
	for _, a := range s.Scripts {
		st.Scripts++
		if a.IsExternal {
			st.ExternalJS++
		}
	}
	return st
}
