package goquery

import (
	"net/url"
	"strings"
)

// parseBase parses the page URL used to resolve relative references.
// Returns nil when the page URL is empty or malformed; relative references
// then cannot be resolved.
func parseBase(pageURL string) *url.URL {
	if pageURL == "" {
		return nil
	}
	u, err := url.Parse(pageURL)
	if err != nil || !u.IsAbs() {
		return nil
	}
	return u
}

// hostname returns the host of base without port, or "" for nil.
func hostname(base *url.URL) string {
	if base == nil {
		return ""
	}
	return base.Hostname()
}

// origin returns the scheme and host of base.
func origin(base *url.URL) *url.URL {
	return &url.URL{Scheme: base.Scheme, Host: base.Host}
}

// resolveURL resolves href against base. Without a base only absolute
// references resolve. The boolean is false when href cannot be resolved.
func resolveURL(base *url.URL, href string) (string, bool) {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}
	if base == nil {
		if !ref.IsAbs() {
			return "", false
		}
		return ref.String(), true
	}
	return base.ResolveReference(ref).String(), true
}

// isSkippedHref reports whether a link target should render as text only.
func isSkippedHref(href string) bool {
	href = strings.TrimSpace(href)
	return href == "" ||
		strings.HasPrefix(href, "#") ||
		strings.HasPrefix(strings.ToLower(href), "javascript:")
}

// isDataURI reports whether src embeds its payload inline.
func isDataURI(src string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(src)), "data:")
}
