package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemd"
)

// Detect returns the first fingerprinted platform profile the page matches,
// or nil. The meta generator tag is checked across all profiles before any
// marker selector.
func Detect(doc *goquery.Document, profiles *pagemd.Profiles) *pagemd.Profile {
	if generator := metaGenerator(doc); generator != "" {
		for i := range profiles.Platforms {
			p := &profiles.Platforms[i]
			if p.Generator != "" && strings.Contains(generator, strings.ToLower(p.Generator)) {
				return p
			}
		}
	}

	for i := range profiles.Platforms {
		p := &profiles.Platforms[i]
		for _, sel := range p.Detect {
			if doc.Find(sel).Length() > 0 {
				return p
			}
		}
	}
	return nil
}

// metaGenerator returns the lowercased content of the last generator meta
// tag, or "".
func metaGenerator(doc *goquery.Document) string {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, ok := s.Attr("content"); ok {
			generator = strings.ToLower(content)
		}
	})
	return generator
}
