// Package readability extracts article content with
// github.com/go-shiori/go-readability, a port of Mozilla's Readability.js.
package readability

import (
	"strings"

	"github.com/fwojciec/pagemd"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagemd.Extractor at compile time.
var _ pagemd.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main content of a page.
type Extractor struct {
	// KeepClasses preserves class attributes in the content so that code
	// blocks retain their language markers.
	KeepClasses bool
}

// NewExtractor creates a new Extractor that keeps class attributes.
func NewExtractor() *Extractor {
	return &Extractor{KeepClasses: true}
}

// Extract returns the title and main content of rawHTML.
//
// Returns ENOTFOUND if readability finds no article.
func (e *Extractor) Extract(rawHTML string) (*pagemd.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagemd.Errorf(pagemd.EINVALID, "empty HTML input")
	}

	// Parser holds per-document state, so each call gets its own.
	parser := readability.NewParser()
	parser.KeepClasses = e.KeepClasses

	article, err := parser.Parse(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, pagemd.Errorf(pagemd.ENOTFOUND, "content not found: %v", err)
	}

	return &pagemd.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}
