package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemd"
	"golang.org/x/net/html"
)

// knownLanguages are class names accepted as a language tag on their own.
var knownLanguages = map[string]bool{
	"html": true, "css": true, "javascript": true, "python": true,
	"java": true, "cpp": true, "csharp": true, "php": true,
	"ruby": true, "swift": true, "go": true, "rust": true,
	"kotlin": true, "typescript": true,
}

var leadingLineNumberRe = regexp.MustCompile(`^\d+[.:]?\s*`)

// IsCodeBlock reports whether s is a code region: it carries a highlighter
// class, is a pre or code element, or is one line of a list-based code
// block.
func IsCodeBlock(s *goquery.Selection) bool {
	if hasCodeClass(s) {
		return true
	}
	switch goquery.NodeName(s) {
	case "pre", "code":
		return true
	case "li":
		return isCodeLine(s)
	}
	return false
}

func hasCodeClass(s *goquery.Selection) bool {
	for _, cls := range strings.Fields(s.AttrOr("class", "")) {
		if strings.Contains(cls, "code") ||
			strings.Contains(cls, "prettyprint") ||
			strings.HasPrefix(cls, "language-") ||
			strings.Contains(cls, "hljs") {
			return true
		}
	}
	return false
}

// isCodeLine reports whether li is one line of a list-based code block.
func isCodeLine(li *goquery.Selection) bool {
	return li.HasClass("code-line") || li.Parent().HasClass("code-list")
}

// ExtractCode returns the normalized text of a code block. The first
// matching layout wins: line-numbered highlight tables, list-based blocks,
// the rich-text strategy, then plain pre/code text.
func ExtractCode(s *goquery.Selection, strategy pagemd.CodeStrategy) string {
	switch {
	case s.HasClass("hljs-ln") || s.Find(".hljs-ln").Length() > 0:
		return pagemd.NormalizeCode(numberedLines(s), false)
	case goquery.NodeName(s) == "li":
		return pagemd.NormalizeCode(listLines(s), false)
	case strategy == pagemd.CodeStrategyRichText:
		return pagemd.NormalizeCode(richTextMarkup(s), true)
	default:
		return pagemd.NormalizeCode(plainCode(s), false)
	}
}

// numberedLines joins the code rows of a highlight.js line-number table,
// skipping the gutter cells.
func numberedLines(s *goquery.Selection) string {
	var lines []string
	s.Find(".hljs-ln-line").Not(".hljs-ln-n, .hljs-ln-numbers").Each(func(_ int, line *goquery.Selection) {
		lines = append(lines, line.Text())
	})
	return strings.Join(lines, "\n")
}

// listLines joins every item of the list li belongs to, one line each.
func listLines(li *goquery.Selection) string {
	items := li.Parent().ChildrenFiltered("li")
	if items.Length() == 0 {
		items = li
	}

	var lines []string
	items.Each(func(_ int, item *goquery.Selection) {
		text := item.Text()
		if code := item.Find(".hljs-ln-code, .code-content").First(); code.Length() > 0 {
			text = code.Text()
		}
		lines = append(lines, leadingLineNumberRe.ReplaceAllString(text, ""))
	})
	return strings.Join(lines, "\n")
}

// richTextMarkup returns the inner markup of the block with line breaks
// already turned into newlines. Rich-text editors lay code out with <br>
// and styled spans, so the text content alone loses the line structure.
func richTextMarkup(s *goquery.Selection) string {
	clone := s.First().Clone()
	clone.Find("br").ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: "\n"})

	target := clone.Find("code").First()
	if target.Length() == 0 {
		target = clone
	}
	markup, err := target.Html()
	if err != nil {
		return target.Text()
	}
	return markup
}

func plainCode(s *goquery.Selection) string {
	code := s.Find("code").First()
	if code.Length() == 0 {
		return s.Text()
	}
	if !code.HasClass("hljs") {
		return code.Text()
	}

	var b strings.Builder
	code.Contents().Each(func(_ int, c *goquery.Selection) {
		switch c.Get(0).Type {
		case html.TextNode, html.ElementNode:
			b.WriteString(c.Text())
		}
	})
	return b.String()
}

// DetectLanguage guesses the language of a code block. Site markers of the
// rich-text strategy come first, then language classes, then data-lang
// attributes, then content sniffing. Returns "" for plain text.
func DetectLanguage(s *goquery.Selection, strategy pagemd.CodeStrategy) string {
	if strategy == pagemd.CodeStrategyRichText {
		if s.HasClass("js_darkmode__3") {
			return "javascript"
		}
		if lang := s.Closest("[data-lang]").AttrOr("data-lang", ""); lang != "" {
			return strings.ToLower(lang)
		}
	}

	candidates := []*goquery.Selection{s}
	if code := s.Find("code").First(); code.Length() > 0 {
		candidates = append(candidates, code)
	}
	for _, c := range candidates {
		if lang := markedLanguage(c); lang != "" {
			return lang
		}
	}

	return sniffLanguage(s.Text())
}

// markedLanguage reads an explicit language marker from s: a language-*
// class, a class naming a known language, or a data-lang/data-language
// attribute on s or its parent.
func markedLanguage(s *goquery.Selection) string {
	classes := strings.Fields(s.AttrOr("class", ""))
	for _, cls := range classes {
		if lang, ok := strings.CutPrefix(cls, "language-"); ok && lang != "" {
			return lang
		}
	}
	for _, cls := range classes {
		if knownLanguages[strings.ToLower(cls)] {
			return strings.ToLower(cls)
		}
	}
	for _, n := range []*goquery.Selection{s, s.Parent()} {
		for _, attr := range []string{"data-lang", "data-language"} {
			if lang := n.AttrOr(attr, ""); lang != "" {
				return strings.ToLower(lang)
			}
		}
	}
	return ""
}

func sniffLanguage(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.HasPrefix(text, "<?php"):
		return "php"
	case strings.Contains(text, "<!doctype html") || strings.Contains(text, "<html"):
		return "html"
	case strings.Contains(text, "import ") && strings.Contains(text, "from "):
		return "python"
	case strings.Contains(text, "function") && strings.Contains(text, "{"):
		return "javascript"
	}
	return ""
}
