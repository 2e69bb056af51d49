package pagemd

import (
	"regexp"
	"strings"
)

// DefaultInlineCodeMax is the length below which a single-line code block is
// written as inline code instead of a fenced block.
const DefaultInlineCodeMax = 100

// CodeBlock is a code region extracted from the page.
type CodeBlock struct {
	Text     string
	Language string // empty for plain text
}

var (
	htmlEntityReplacer = strings.NewReplacer(
		"&nbsp;", " ",
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&quot;", `"`,
		"&#34;", `"`,
		"&#39;", "'",
	)
	lineBreakTagRe   = regexp.MustCompile(`(?i)<br\s*/?>`)
	anyTagRe         = regexp.MustCompile(`<[^>]+>`)
	lineNumberRe     = regexp.MustCompile(`(?m)^[ \t]*(?:\d+[.:][ \t]*)+`)
	trailingSpaceRe  = regexp.MustCompile(`(?m)[ \t]+$`)
	excessNewlinesRe = regexp.MustCompile(`\n{3,}`)
)

var invisibleReplacer = strings.NewReplacer(
	"\u00a0", " ",
	"\u200b", "",
)

// NormalizeCode cleans extracted code text. When htmlFlavored is true the
// text is treated as inner markup: entities are decoded, <br> becomes a
// newline and remaining tags are stripped. The whitespace pass then expands
// tabs, unifies line endings, drops line-number prefixes, trims line ends and
// blank edge lines while keeping indentation.
//
// NormalizeCode is idempotent: NormalizeCode(NormalizeCode(s, f), f) equals
// NormalizeCode(s, f).
func NormalizeCode(text string, htmlFlavored bool) string {
	text = invisibleReplacer.Replace(text)
	if htmlFlavored {
		text = decodeMarkup(text)
	}
	return normalizeWhitespace(text)
}

// decodeMarkup turns inner HTML into plain text. Decoding repeats until the
// text stops changing so that escaped markup is fully resolved. Every
// rewrite shortens the text, so the loop terminates.
func decodeMarkup(s string) string {
	for {
		decoded := htmlEntityReplacer.Replace(s)
		decoded = lineBreakTagRe.ReplaceAllString(decoded, "\n")
		decoded = anyTagRe.ReplaceAllString(decoded, "")
		if decoded == s {
			return s
		}
		s = decoded
	}
}

func normalizeWhitespace(s string) string {
	s = strings.NewReplacer(
		"\t", "    ",
		"\r\n", "\n",
		"\r", "\n",
	).Replace(s)
	s = lineNumberRe.ReplaceAllString(s, "")
	s = trailingSpaceRe.ReplaceAllString(s, "")
	s = excessNewlinesRe.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// FormatCode renders a code block as Markdown. Blank code yields an empty
// string. A single line shorter than inlineMax becomes inline code; anything
// else becomes a fenced block tagged with the lowercased language.
func FormatCode(cb CodeBlock, inlineMax int) string {
	if strings.TrimSpace(cb.Text) == "" {
		return ""
	}
	if !strings.Contains(cb.Text, "\n") && len(cb.Text) < inlineMax {
		return " `" + strings.TrimSpace(cb.Text) + "` "
	}
	return "\n\n```" + strings.ToLower(cb.Language) + "\n" + cb.Text + "\n```\n\n"
}
