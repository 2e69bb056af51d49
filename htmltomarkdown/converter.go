// Package htmltomarkdown provides an alternative Markdown engine backed by
// github.com/JohannesKaufmann/html-to-markdown/v2. Article location and
// sanitizing are shared with the goquery engine; only rendering differs.
package htmltomarkdown

import (
	"strings"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/pagemd"
	"github.com/fwojciec/pagemd/goquery"
)

// Ensure Converter implements pagemd.Converter at compile time.
var _ pagemd.Converter = (*Converter)(nil)

// Converter renders located articles with html-to-markdown.
type Converter struct {
	locator *goquery.Converter
	conv    *converter.Converter
}

// NewConverter creates a new Converter that locates articles with locator.
func NewConverter(locator *goquery.Converter) *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{locator: locator, conv: conv}
}

// Convert transforms a full HTML document into a Markdown article. A panic
// while rendering is reported as EINTERNAL.
func (c *Converter) Convert(rawHTML string, pageURL string, opts pagemd.Options) (markdown string, err error) {
	defer func() {
		if r := recover(); r != nil {
			markdown, err = "", pagemd.Errorf(pagemd.EINTERNAL, "conversion failed: %v", r)
		}
	}()

	a, err := c.locator.Prepare(rawHTML, pageURL, opts)
	if err != nil {
		return "", err
	}

	content := a.Content
	if a.CoverImage.Length() > 0 {
		content.PrependSelection(a.CoverImage.Clone())
	}
	applyOptions(content, opts)

	var convOpts []converter.ConvertOptionFunc
	if a.Base != nil {
		convOpts = append(convOpts, converter.WithDomain(a.Base.String()))
	}
	body, err := c.conv.ConvertNode(content.Get(0), convOpts...)
	if err != nil {
		return "", pagemd.Errorf(pagemd.EINTERNAL, "conversion failed: %v", err)
	}

	var b strings.Builder
	if a.Title != "" {
		b.WriteString("# " + a.Title + "\n\n")
	}
	b.Write(body)

	markdown = pagemd.PostProcess(b.String())
	if markdown == "" {
		return "", pagemd.Errorf(pagemd.ENOTFOUND, "content not found: page has no article text")
	}
	return markdown, nil
}

// applyOptions prunes the sanitized tree so that the renderer never sees
// what the options exclude: images, link targets and tables. Inline images
// are dropped regardless.
func applyOptions(content *gq.Selection, opts pagemd.Options) {
	images := content.Find("img")
	if !opts.IncludeImages {
		images.Remove()
	} else {
		images.Each(func(_ int, img *gq.Selection) {
			src := strings.TrimSpace(img.AttrOr("src", ""))
			if src == "" {
				src = strings.TrimSpace(img.AttrOr("data-src", ""))
				img.SetAttr("src", src)
			}
			if src == "" || strings.HasPrefix(strings.ToLower(src), "data:") {
				img.Remove()
			}
		})
	}

	if !opts.IncludeLinks {
		content.Find("a").Each(func(_ int, a *gq.Selection) {
			a.ReplaceWithSelection(a.Contents())
		})
	}

	if !opts.IncludeTables {
		content.Find("table").Remove()
	}
}
