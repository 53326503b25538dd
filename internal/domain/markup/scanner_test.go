package markup_test

import (
	"strings"
	"testing"

	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html>
<head>
  <LINK rel="stylesheet" HREF="https://cdn.example.com/app.min.css">
  <link rel="stylesheet" href="/assets/theme.css">
  <style>
    body { color: #333; }
  </style>
  <style>.hero { background: #fff; }</style>
</head>
<body class="page page--home">
  <div class="hero darkMode">
    <h1 style="color: #777777; background-color: #ffffff;">Welcome</h1>
    <p style="color: rgb(51, 51, 51)">Intro text</p>
    <span style="background: #222222">badge</span>
  </div>
  <script src="https://cdn.example.com/app.min.js" defer></script>
  <script src="/js/widget.js"></script>
  <script src="/js/widget.js"></script>
  <script>console.log("inline");</script>
</body>
</html>`

func TestScan_Stylesheets(t *testing.T) {
	res := markup.Scan(samplePage)

	linked := res.LinkedStylesheets()
	require.Len(t, linked, 2)
	assert.Equal(t, "https://cdn.example.com/app.min.css", linked[0].URL)
	assert.True(t, linked[0].IsExternal)
	assert.True(t, linked[0].IsMinified)
	assert.Equal(t, "/assets/theme.css", linked[1].URL)
	assert.False(t, linked[1].IsExternal)
	assert.False(t, linked[1].IsMinified)

	// all inline blocks collapse into one synthetic entry
	require.Len(t, res.Stylesheets, 3)
	inline := res.Stylesheets[2]
	assert.Equal(t, markup.InlineURL, inline.URL)
	assert.True(t, inline.IsInlineBlock)
	assert.Greater(t, inline.SizeHint, 0)

	assert.Equal(t, 2, res.InlineStyles)
	require.Len(t, res.StyleContents, 2)
	assert.Contains(t, res.StyleContents[0], "color: #333")
}

func TestScan_Scripts(t *testing.T) {
	res := markup.Scan(samplePage)

	require.Len(t, res.Scripts, 3)
	assert.True(t, res.Scripts[0].IsExternal)
	assert.True(t, res.Scripts[0].IsMinified)
	assert.True(t, res.Scripts[0].IsDeferred)
	assert.False(t, res.Scripts[0].IsDuplicate)

	assert.False(t, res.Scripts[1].IsDuplicate, "first occurrence is not the duplicate")
	assert.True(t, res.Scripts[2].IsDuplicate, "second occurrence is")

	assert.Equal(t, 1, res.InlineScripts)
	assert.Equal(t, []string{"/js/widget.js"}, res.DuplicateScriptURLs())
}

func TestScan_ClassNames(t *testing.T) {
	res := markup.Scan(samplePage)
	assert.Equal(t, []string{"darkMode", "hero", "page", "page--home"}, res.ClassNames)
}

func TestScan_ColorPairs(t *testing.T) {
	res := markup.Scan(samplePage)
	require.Len(t, res.ColorPairs, 3)

	h1 := res.ColorPairs[0]
	assert.Equal(t, "h1", h1.Element)
	assert.Equal(t, "#777777", h1.Foreground)
	assert.Equal(t, "#ffffff", h1.Background)
	assert.Equal(t, domain.TextSizeLarge, h1.TextSize)

	p := res.ColorPairs[1]
	assert.Equal(t, "p", p.Element)
	assert.Equal(t, "rgb(51, 51, 51)", p.Foreground, "values are kept verbatim")
	assert.Equal(t, "#ffffff", p.Background, "absent background defaults to white")
	assert.Equal(t, domain.TextSizeNormal, p.TextSize)

	span := res.ColorPairs[2]
	assert.Equal(t, "#000000", span.Foreground, "absent color defaults to black")
	assert.Equal(t, "#222222", span.Background)
}

func TestScan_TextSizeByHeadingLevel(t *testing.T) {
	res := markup.Scan(`<h3 style="color:#555">a</h3><h4 style="color:#555">b</h4>`)
	require.Len(t, res.ColorPairs, 2)
	assert.Equal(t, domain.TextSizeLarge, res.ColorPairs[0].TextSize)
	assert.Equal(t, domain.TextSizeNormal, res.ColorPairs[1].TextSize)
}

func TestScan_StyleWithoutColors(t *testing.T) {
	res := markup.Scan(`<div style="margin: 0; padding: 2px">x</div>`)
	assert.Empty(t, res.ColorPairs)
}

func TestScan_BorderColorIsNotForeground(t *testing.T) {
	res := markup.Scan(`<div style="border-color: red; color: #112233">x</div>`)
	require.Len(t, res.ColorPairs, 1)
	assert.Equal(t, "#112233", res.ColorPairs[0].Foreground)
}

func TestScan_EmptyInput(t *testing.T) {
	res := markup.Scan("")
	assert.Empty(t, res.Stylesheets)
	assert.Empty(t, res.Scripts)
	assert.Empty(t, res.ClassNames)
	assert.Empty(t, res.ColorPairs)
	assert.Zero(t, res.InlineStyles)
	assert.Zero(t, res.InlineScripts)
}

func TestScan_MalformedInput(t *testing.T) {
	// unclosed tags, stray brackets, truncated document
	res := markup.Scan(`<html><head><link rel="stylesheet" href="/a.css><style>body {`)
	assert.NotNil(t, res)
	assert.Empty(t, res.StyleContents, "unterminated style block never matches")
}

func TestScan_ProtocolRelativeIsExternal(t *testing.T) {
	res := markup.Scan(`<link rel="stylesheet" href="//cdn.example.com/site.css">`)
	require.Len(t, res.Stylesheets, 1)
	assert.True(t, res.Stylesheets[0].IsExternal)
}

func TestScan_AsyncInsideURLIsNotDeferred(t *testing.T) {
	res := markup.Scan(`<script src="/js/async.js"></script>`)
	require.Len(t, res.Scripts, 1)
	assert.False(t, res.Scripts[0].IsDeferred)
}

func TestScan_Stats(t *testing.T) {
	st := markup.Scan(samplePage).Stats()
	assert.Equal(t, 2, st.Stylesheets)
	assert.Equal(t, 1, st.ExternalCSS)
	assert.Equal(t, 2, st.InlineStyles)
	assert.Equal(t, 3, st.Scripts)
	assert.Equal(t, 1, st.ExternalJS)
	assert.Equal(t, 1, st.InlineScripts)
	assert.Equal(t, 4, st.ClassNames)
}

func TestScan_LargeDocumentStaysLinear(t *testing.T) {
	// a crude guard against catastrophic backtracking in the patterns
	page := strings.Repeat(`<div class="a b c"><span style="color:#333">x</span></div>`, 2000)
	res := markup.Scan(page)
	assert.Len(t, res.ColorPairs, 2000)
}
