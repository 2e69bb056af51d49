// Package trafilatura extracts article content with
// github.com/markusmobius/go-trafilatura, for pages no selector profile
// covers.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/pagemd"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagemd.Extractor at compile time.
var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main content of a page.
type Extractor struct {
	// Fallback enables trafilatura's readability and distiller fallbacks
	// when its own heuristics find too little text.
	Fallback bool
}

// NewExtractor creates a new Extractor with fallbacks enabled.
func NewExtractor() *Extractor {
	return &Extractor{Fallback: true}
}

// Extract returns the title and main content of rawHTML. Images, links and
// tables are kept so that conversion options decide what is rendered.
//
// Returns ENOTFOUND if trafilatura finds no content.
func (e *Extractor) Extract(rawHTML string) (*pagemd.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagemd.Errorf(pagemd.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  e.Fallback,
		ExcludeComments: true,
		IncludeImages:   true,
		IncludeLinks:    true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, pagemd.Errorf(pagemd.ENOTFOUND, "content not found: %v", err)
	}
	if result == nil || result.ContentNode == nil {
		return nil, pagemd.Errorf(pagemd.ENOTFOUND, "content not found: no main content")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EINTERNAL, "render content: %v", err)
	}

	return &pagemd.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
