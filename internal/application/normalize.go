package application

import (
	"net/url"
	"strings"
)

// NormalizeURL defaults the scheme to https:// when the caller supplies
// a bare hostname, so "example.com" and "https://example.com" audit the
// same page.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return raw
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw
	case !strings.Contains(raw, "://"):
		return "https://" + raw
	}
	return raw
}

// resolveURL turns a stylesheet href into an absolute URL against the
// page it was linked from. Unresolvable hrefs come back unchanged.
func resolveURL(page, href string) string {
	base, err := url.Parse(page)
	if err != nil {
		return href
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
