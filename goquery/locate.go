package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemd"
)

// Located holds the parts of a page the converter renders.
type Located struct {
	// Title is the article title, or "" if none was found.
	Title string

	// Content is the root of the article body within the page tree.
	Content *goquery.Selection

	// CoverImage is the designated cover image element. Empty when images
	// are disabled or the page has none.
	CoverImage *goquery.Selection
}

// Locate finds the title, content root and cover image of a page. The
// platform profile is consulted first (it may be nil), then the generic
// profile, then document-level fallbacks. Within each selector list the
// first structural match wins.
//
// Returns ENOTFOUND if the document has no body.
func Locate(doc *goquery.Document, platform, generic *pagemd.Profile, opts pagemd.Options) (*Located, error) {
	content := locateContent(doc, platform, generic)
	if content.Length() == 0 {
		return nil, pagemd.Errorf(pagemd.ENOTFOUND, "content not found: page has no body")
	}

	loc := &Located{
		Title:      LocateTitle(doc, platform, generic),
		Content:    content,
		CoverImage: emptySelection(doc),
	}
	if opts.IncludeImages {
		loc.CoverImage = locateCoverImage(doc, platform, generic)
	}
	return loc, nil
}

// LocateTitle returns the article title: the first non-empty match of the
// platform then generic title selectors, else the document title up to the
// first " - ", else the first h1, else "".
func LocateTitle(doc *goquery.Document, platform, generic *pagemd.Profile) string {
	for _, p := range []*pagemd.Profile{platform, generic} {
		if p == nil {
			continue
		}
		for _, sel := range p.Title {
			if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
				return text
			}
		}
	}

	docTitle := strings.Join(strings.Fields(doc.Find("title").First().Text()), " ")
	before, _, _ := strings.Cut(docTitle, " - ")
	if title := strings.TrimSpace(before); title != "" {
		return title
	}

	return strings.TrimSpace(doc.Find("h1").First().Text())
}

func locateContent(doc *goquery.Document, platform, generic *pagemd.Profile) *goquery.Selection {
	for _, p := range []*pagemd.Profile{platform, generic} {
		if p == nil {
			continue
		}
		for _, sel := range p.Content {
			if match := doc.Find(sel).First(); match.Length() > 0 {
				return match
			}
		}
	}
	return doc.Find("body").First()
}

// locateCoverImage returns the first img matched by, or nested in an element
// matched by, a cover image selector.
func locateCoverImage(doc *goquery.Document, platform, generic *pagemd.Profile) *goquery.Selection {
	for _, p := range []*pagemd.Profile{platform, generic} {
		if p == nil {
			continue
		}
		for _, sel := range p.CoverImage {
			match := doc.Find(sel).First()
			if match.Length() == 0 {
				continue
			}
			if goquery.NodeName(match) == "img" {
				return match
			}
			if img := match.Find("img").First(); img.Length() > 0 {
				return img
			}
		}
	}
	return emptySelection(doc)
}

func emptySelection(doc *goquery.Document) *goquery.Selection {
	return doc.Find("body").First().Not("*")
}
