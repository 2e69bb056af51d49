package pagemd

import (
	"context"
	"net/url"
	"strings"
)

// Page is a converted article ready to be stored.
type Page struct {
	URL     string
	Title   string
	Content string // Markdown
}

// PageWriter persists converted pages.
type PageWriter interface {
	// WritePage stores the page and returns the location it was written to.
	WritePage(ctx context.Context, page *Page) (string, error)
}

// DefaultFilename is used when a page has no usable title.
const DefaultFilename = "article.md"

// Filename derives a Markdown file name from a page title. Every character
// outside [a-zA-Z0-9] becomes an underscore and the result is lowercased.
func Filename(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return DefaultFilename
	}
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	return b.String() + ".md"
}

// Title returns the first level-1 heading of a Markdown document, which is
// where converters place the article title.
func Title(markdown string) string {
	for _, s := range ExtractSections(markdown) {
		if s.Level == 1 {
			return s.Title
		}
	}
	return ""
}

// internalSchemes are browser pages that never hold article content.
var internalSchemes = []string{"chrome", "edge", "about", "moz-extension"}

// ValidatePageURL reports whether rawURL can serve as the base of a
// conversion. An empty URL is allowed: relative references then degrade to
// plain text. Browser-internal pages are rejected.
func ValidatePageURL(rawURL string) error {
	if rawURL == "" {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Errorf(EINVALID, "invalid page URL: %v", err)
	}
	scheme := strings.ToLower(u.Scheme)
	for _, s := range internalSchemes {
		if scheme == s {
			return Errorf(EINVALID, "cannot convert browser-internal page %q", rawURL)
		}
	}
	return nil
}
