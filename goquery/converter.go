// Package goquery implements the article extraction and Markdown rendering
// engine on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemd"
)

// Ensure Converter implements pagemd.Converter at compile time.
var _ pagemd.Converter = (*Converter)(nil)

// Converter converts HTML pages to Markdown using selector profiles.
// A Converter holds no per-call state and is safe for concurrent use.
type Converter struct {
	// Profiles is the site registry. Required.
	Profiles *pagemd.Profiles

	// Extractor, if set, replaces profile-based title and content lookup.
	// Sanitizing and rendering still apply to the extracted content.
	Extractor pagemd.Extractor

	// InlineCodeMax is the length below which single-line code renders
	// inline. Defaults to pagemd.DefaultInlineCodeMax when zero.
	InlineCodeMax int
}

// NewConverter creates a new Converter backed by profiles.
func NewConverter(profiles *pagemd.Profiles) *Converter {
	return &Converter{
		Profiles:      profiles,
		InlineCodeMax: pagemd.DefaultInlineCodeMax,
	}
}

// Article is a page located and sanitized for rendering.
type Article struct {
	Title string

	// Content is a sanitized copy of the content root.
	Content *goquery.Selection

	// CoverImage is the cover img element of the page, possibly empty.
	CoverImage *goquery.Selection

	// Base is the parsed page URL, or nil when relative references cannot
	// be resolved.
	Base *url.URL

	// Platform is the matched platform profile, or nil.
	Platform *pagemd.Profile
}

// Convert transforms a full HTML document into a Markdown article.
func (c *Converter) Convert(rawHTML string, pageURL string, opts pagemd.Options) (markdown string, err error) {
	// Rendering works on parser output we do not control; a fault in one
	// page must not take down the caller.
	defer func() {
		if r := recover(); r != nil {
			markdown, err = "", pagemd.Errorf(pagemd.EINTERNAL, "conversion failed: %v", r)
		}
	}()

	a, err := c.Prepare(rawHTML, pageURL, opts)
	if err != nil {
		return "", err
	}

	r := &renderer{
		opts:      opts,
		base:      a.Base,
		strategy:  strategyOf(a.Platform),
		inlineMax: c.InlineCodeMax,
	}
	if r.inlineMax <= 0 {
		r.inlineMax = pagemd.DefaultInlineCodeMax
	}

	var b strings.Builder
	if a.Title != "" {
		b.WriteString("# " + a.Title + "\n\n")
	}
	if a.CoverImage.Length() > 0 {
		b.WriteString(r.image(a.CoverImage))
	}
	b.WriteString(r.node(a.Content))

	markdown = pagemd.PostProcess(b.String())
	if markdown == "" {
		return "", pagemd.Errorf(pagemd.ENOTFOUND, "content not found: page has no article text")
	}
	return markdown, nil
}

// Prepare parses rawHTML, resolves the platform profile by host and then by
// fingerprint, locates the article and sanitizes its content.
func (c *Converter) Prepare(rawHTML string, pageURL string, opts pagemd.Options) (*Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagemd.Errorf(pagemd.EINVALID, "empty HTML input")
	}
	if err := pagemd.ValidatePageURL(pageURL); err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EINTERNAL, "conversion failed: %v", err)
	}

	base := parseBase(pageURL)
	generic := &c.Profiles.Generic
	platform := c.Profiles.Resolve(hostname(base))
	if platform == nil {
		platform = Detect(doc, c.Profiles)
	}

	loc, err := c.locate(rawHTML, doc, platform, generic, opts)
	if err != nil {
		return nil, err
	}

	return &Article{
		Title:      loc.Title,
		Content:    Sanitize(loc.Content, platform, generic),
		CoverImage: loc.CoverImage,
		Base:       base,
		Platform:   platform,
	}, nil
}

// locate finds the title, content and cover image, delegating title and
// content to the Extractor when one is configured.
func (c *Converter) locate(rawHTML string, doc *goquery.Document, platform, generic *pagemd.Profile, opts pagemd.Options) (*Located, error) {
	loc, err := Locate(doc, platform, generic, opts)
	if err != nil || c.Extractor == nil {
		return loc, err
	}

	result, err := c.Extractor.Extract(rawHTML)
	if err != nil {
		return nil, err
	}
	extracted, err := goquery.NewDocumentFromReader(strings.NewReader(result.ContentHTML))
	if err != nil {
		return nil, pagemd.Errorf(pagemd.EINTERNAL, "conversion failed: %v", err)
	}
	body := extracted.Find("body").First()
	if strings.TrimSpace(body.Text()) == "" && body.Find("img, iframe").Length() == 0 {
		return nil, pagemd.Errorf(pagemd.ENOTFOUND, "content not found: extractor returned no content")
	}

	loc.Content = body
	if title := strings.TrimSpace(result.Title); title != "" {
		loc.Title = title
	}
	return loc, nil
}

func strategyOf(p *pagemd.Profile) pagemd.CodeStrategy {
	if p == nil {
		return pagemd.CodeStrategyStandard
	}
	return p.Strategy
}
