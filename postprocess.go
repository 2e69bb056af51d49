package pagemd

import (
	"regexp"
	"strings"
)

var (
	dataImageRe       = regexp.MustCompile(`!\[[^\]]*\]\(data:[^)]*\)`)
	javascriptLinkRe  = regexp.MustCompile(`\[([^\]]+)\]\(javascript:[^)]*\)`)
	lineLeadingSpace  = regexp.MustCompile(`(?m)^[^\S\n]+`)
	lineTrailingSpace = regexp.MustCompile(`(?m)[^\S\n]+$`)
	spaceRunRe        = regexp.MustCompile(` {2,}`)
)

// PostProcess cleans up an assembled Markdown document: data-URI images are
// removed, javascript: links are reduced to their text, every line is
// trimmed, space runs collapse to one space, at most one blank line separates
// blocks and the document is trimmed.
//
// PostProcess is idempotent.
func PostProcess(markdown string) string {
	markdown = replaceUntilStable(markdown, dataImageRe, "")
	markdown = replaceUntilStable(markdown, javascriptLinkRe, "$1")
	markdown = lineTrailingSpace.ReplaceAllString(markdown, "")
	markdown = lineLeadingSpace.ReplaceAllString(markdown, "")
	markdown = spaceRunRe.ReplaceAllString(markdown, " ")
	markdown = excessNewlinesRe.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(markdown)
}

// replaceUntilStable applies re until the text no longer changes. Removing
// one match can expose another, e.g. an image nested in alt text.
func replaceUntilStable(s string, re *regexp.Regexp, repl string) string {
	for {
		next := re.ReplaceAllString(s, repl)
		if next == s {
			return s
		}
		s = next
	}
}
