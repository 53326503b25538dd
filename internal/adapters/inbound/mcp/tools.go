package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sitescore/sitescore/internal/adapters/outbound/cache"
	"github.com/sitescore/sitescore/internal/adapters/outbound/fetcher"
	"github.com/sitescore/sitescore/internal/adapters/outbound/history"
	"github.com/sitescore/sitescore/internal/application"
	"github.com/sitescore/sitescore/internal/domain"
	"github.com/sitescore/sitescore/internal/domain/colour"
	"github.com/sitescore/sitescore/internal/domain/cssvars"
	"github.com/sitescore/sitescore/internal/domain/harmony"
	"github.com/sitescore/sitescore/internal/domain/suggest"
)

// registerTools registers all SiteScore MCP tools on the given server.
func registerTools(s *server.MCPServer, cfg domain.Config) {
	// 1. site_audit
	s.AddTool(
		mcplib.NewTool("site_audit",
			mcplib.WithDescription("Audit a page's markup consistency. Returns CSS/JS scores, issues and page stats as JSON."),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("URL of the page to audit"),
			),
		),
		handleAudit(cfg),
	)

	// 2. site_contrast
	s.AddTool(
		mcplib.NewTool("site_contrast",
			mcplib.WithDescription("Check a page's color pairs against WCAG AA/AAA contrast requirements in light and dark mode"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("URL of the page to check"),
			),
			mcplib.WithNumber("target",
				mcplib.Description("Contrast ratio suggested fixes aim for (default from config)"),
			),
		),
		handleContrast(cfg),
	)

	// 3. site_suggest_colors
	s.AddTool(
		mcplib.NewTool("site_suggest_colors",
			mcplib.WithDescription("Suggest minimal color adjustments that bring a foreground/background pair up to the target contrast ratio"),
			mcplib.WithString("foreground",
				mcplib.Required(),
				mcplib.Description("Foreground color (hex, rgb() or named)"),
			),
			mcplib.WithString("background",
				mcplib.Required(),
				mcplib.Description("Background color (hex, rgb() or named)"),
			),
			mcplib.WithBoolean("large", mcplib.Description("Treat the text as large (18pt or 14pt bold)")),
			mcplib.WithNumber("target", mcplib.Description("Contrast ratio to aim for (default from config)")),
		),
		handleSuggestColors(cfg),
	)

	// 4. site_css_variables
	s.AddTool(
		mcplib.NewTool("site_css_variables",
			mcplib.WithDescription("Extract a page's CSS custom properties, partitioned into light, dark and shared sets"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("URL of the page to extract from"),
			),
			mcplib.WithBoolean("as_css", mcplib.Description("Return a generated :root stylesheet instead of JSON")),
		),
		handleCSSVariables(cfg),
	)

	// 5. site_color_harmony
	s.AddTool(
		mcplib.NewTool("site_color_harmony",
			mcplib.WithDescription("List a color's hue-wheel companions and its closest brand palette slot"),
			mcplib.WithString("color",
				mcplib.Required(),
				mcplib.Description("Base color (hex, rgb() or named)"),
			),
			mcplib.WithString("scheme",
				mcplib.Description("Limit to one scheme: complementary, analogous, triadic, split-complementary or tetradic"),
			),
		),
		handleColorHarmony(cfg),
	)
}

// newServices creates the standard set of outbound adapters and services.
// pageTTL is how long a fetched body may serve successive tool calls
// before it is considered stale.
const pageTTL = 5 * time.Minute

func newServices(cfg domain.Config) (*application.AuditService, *application.AccessibilityService, *application.VariablesService) {
	// Tool calls often hit the same URL back to back (audit, then
	// contrast, then vars), so inbound fetches go through a cache.
	f := fetcher.NewCached(fetcher.New(cfg.Fetch), cache.New(historyRoot(), pageTTL))
	return application.NewAuditService(f, history.New(historyRoot()), cfg),
		application.NewAccessibilityService(f, cfg),
		application.NewVariablesService(f, cfg, hclog.NewNullLogger())
}

func historyRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return home
}

func handleAudit(cfg domain.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		auditSvc, _, _ := newServices(cfg)
		result, err := auditSvc.AuditURL(ctx, url)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleContrast(cfg domain.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if target, ok := request.GetArguments()["target"].(float64); ok && target > 0 {
			cfg.Contrast.TargetRatio = target
		}

		_, contrastSvc, _ := newServices(cfg)
		report, err := contrastSvc.AuditURL(ctx, url)
		if err != nil {
			return errorResult(fmt.Sprintf("contrast check failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleSuggestColors(cfg domain.Config) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		fgStr, err := request.RequireString("foreground")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		bgStr, err := request.RequireString("background")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		fg, ok := colour.ParseColor(fgStr)
		if !ok {
			return errorResult(fmt.Sprintf("unrecognized foreground color %q", fgStr)), nil
		}
		bg, ok := colour.ParseColor(bgStr)
		if !ok {
			return errorResult(fmt.Sprintf("unrecognized background color %q", bgStr)), nil
		}

		args := request.GetArguments()
		size := domain.TextSizeNormal
		if large, _ := args["large"].(bool); large {
			size = domain.TextSizeLarge
		}
		target := cfg.Contrast.TargetRatio
		if t, ok := args["target"].(float64); ok && t > 0 {
			target = t
		}

		return jsonResult(suggest.Generate(fg, bg, size, target))
	}
}

func handleCSSVariables(cfg domain.Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		_, _, varsSvc := newServices(cfg)
		palette, err := varsSvc.ExtractURL(ctx, url)
		if err != nil {
			return errorResult(fmt.Sprintf("extracting variables failed: %v", err)), nil
		}

		if asCSS, _ := request.GetArguments()["as_css"].(bool); asCSS {
			return textResult(cssvars.Generate(*palette, nil)), nil
		}
		return jsonResult(palette)
	}
}

func handleColorHarmony(cfg domain.Config) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		colorStr, err := request.RequireString("color")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		base, ok := colour.ParseColor(colorStr)
		if !ok {
			return errorResult(fmt.Sprintf("unrecognized color %q", colorStr)), nil
		}

		schemes := harmony.Schemes
		if name, _ := request.GetArguments()["scheme"].(string); name != "" {
			found := false
			for _, s := range harmony.Schemes {
				if string(s) == name {
					schemes = []harmony.Scheme{s}
					found = true
					break
				}
			}
			if !found {
				return errorResult(fmt.Sprintf("unknown scheme %q", name)), nil
			}
		}

		type harmonyResult struct {
			Base         string              `json:"base"`
			Schemes      map[string][]string `json:"schemes"`
			ClosestBrand harmony.BrandMatch  `json:"closest_brand"`
		}
		out := harmonyResult{
			Base:         base.Hex(),
			Schemes:      make(map[string][]string, len(schemes)),
			ClosestBrand: harmony.ClosestBrandColor(base, harmony.PaletteFromHex(cfg.Brand)),
		}
		for _, scheme := range schemes {
			var hexes []string
			for _, c := range harmony.Related(base, scheme) {
				hexes = append(hexes, c.Hex())
			}
			out.Schemes[string(scheme)] = hexes
		}
		return jsonResult(out)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
