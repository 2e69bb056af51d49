package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemd"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// renderer turns a sanitized content tree into a Markdown fragment. Each
// method returns its fragment; nothing is accumulated across calls.
type renderer struct {
	opts      pagemd.Options
	base      *url.URL
	strategy  pagemd.CodeStrategy
	inlineMax int
}

// node renders one node of any type.
func (r *renderer) node(s *goquery.Selection) string {
	n := s.Get(0)
	switch n.Type {
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return ""
		}
		return text + " "
	case html.ElementNode:
		return r.element(s, n)
	}
	return ""
}

// children renders the child nodes of s in document order.
func (r *renderer) children(s *goquery.Selection) string {
	var b strings.Builder
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		b.WriteString(r.node(c))
	})
	return b.String()
}

func (r *renderer) element(s *goquery.Selection, n *html.Node) string {
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		level := int(n.Data[1] - '0')
		return "\n\n" + strings.Repeat("#", level) + " " + trimmedText(s) + "\n\n"
	case atom.P:
		return "\n\n" + r.children(s) + "\n\n"
	case atom.Br:
		return "\n"
	case atom.Strong, atom.B:
		return "**" + trimmedText(s) + "**"
	case atom.Em, atom.I:
		return "_" + trimmedText(s) + "_"
	case atom.Blockquote:
		return "\n\n> " + strings.ReplaceAll(trimmedText(s), "\n", "\n> ") + "\n\n"
	case atom.A:
		return r.link(s)
	case atom.Img:
		if !r.opts.IncludeImages {
			return ""
		}
		return r.image(s)
	case atom.Pre, atom.Code:
		if IsCodeBlock(s) {
			return r.code(s)
		}
		return r.children(s)
	case atom.Ul, atom.Ol:
		return r.list(s, n.DataAtom == atom.Ol)
	case atom.Li:
		if IsCodeBlock(s) {
			// The first line renders the whole block.
			if s.PrevAllFiltered("li").Length() > 0 {
				return ""
			}
			return r.code(s)
		}
		return r.children(s)
	case atom.Table:
		if !r.opts.IncludeTables {
			return ""
		}
		return RenderTable(s)
	}
	return r.children(s)
}

func (r *renderer) link(s *goquery.Selection) string {
	text := trimmedText(s)
	if !r.opts.IncludeLinks {
		return text
	}
	href, ok := s.Attr("href")
	if !ok || isSkippedHref(href) || text == "" {
		return text
	}
	abs, ok := resolveURL(r.base, href)
	if !ok {
		return text
	}
	return "[" + text + "](" + abs + ")"
}

// image renders an img element. Missing sources, data URIs and root-relative
// sources that cannot be resolved render nothing.
func (r *renderer) image(s *goquery.Selection) string {
	src := strings.TrimSpace(s.AttrOr("src", ""))
	if src == "" {
		src = strings.TrimSpace(s.AttrOr("data-src", ""))
	}
	if src == "" {
		return ""
	}
	if strings.HasPrefix(src, "/") {
		if r.base == nil {
			return ""
		}
		resolved, ok := resolveURL(origin(r.base), src)
		if !ok {
			return ""
		}
		src = resolved
	}
	if isDataURI(src) {
		return ""
	}
	return "\n\n![" + s.AttrOr("alt", "") + "](" + src + ")\n\n"
}

func (r *renderer) code(s *goquery.Selection) string {
	return pagemd.FormatCode(pagemd.CodeBlock{
		Text:     ExtractCode(s, r.strategy),
		Language: DetectLanguage(s, r.strategy),
	}, r.inlineMax)
}

// list renders the direct items of a ul or ol, one per line, skipping
// items without text. Ordered items are numbered by position, so a skipped
// item leaves a gap. Lists laid out as code lines render as one code block.
func (r *renderer) list(s *goquery.Selection, ordered bool) string {
	items := s.ChildrenFiltered("li")
	if first := items.First(); first.Length() > 0 && isCodeLine(first) {
		return r.code(first)
	}

	var b strings.Builder
	b.WriteString("\n\n")
	items.Each(func(i int, li *goquery.Selection) {
		text := trimmedText(li)
		if text == "" {
			return
		}
		if ordered {
			b.WriteString(strconv.Itoa(i+1) + ". ")
		} else {
			b.WriteString("- ")
		}
		b.WriteString(text)
		b.WriteString("\n")
	})
	b.WriteString("\n")
	return b.String()
}

func trimmedText(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}
