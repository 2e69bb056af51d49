package pagemd

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Section is a heading of a converted article.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

var (
	headingRe   = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	codeFenceRe = regexp.MustCompile("(?s)```.*?```")
)

// ExtractSections returns the ATX headings (H1-H6) of a Markdown document
// in order. Headings inside fenced code are ignored. Anchors are URL-safe
// and repeated titles get numeric suffixes.
func ExtractSections(markdown string) []Section {
	if markdown == "" {
		return nil
	}

	matches := headingRe.FindAllStringSubmatch(codeFenceRe.ReplaceAllString(markdown, ""), -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	seen := make(map[string]int)
	for _, m := range matches {
		title := strings.TrimSpace(m[2])
		anchor := anchorFor(title)
		if n, ok := seen[anchor]; ok {
			seen[anchor] = n + 1
			anchor += "-" + strconv.Itoa(n)
		} else {
			seen[anchor] = 1
		}
		sections = append(sections, Section{Level: len(m[1]), Title: title, Anchor: anchor})
	}
	return sections
}

// Outline renders sections as a nested Markdown list of anchor links,
// indented two spaces per level below the shallowest heading.
func Outline(sections []Section) string {
	if len(sections) == 0 {
		return ""
	}
	top := sections[0].Level
	for _, s := range sections {
		top = min(top, s.Level)
	}

	var b strings.Builder
	for _, s := range sections {
		b.WriteString(strings.Repeat("  ", s.Level-top))
		b.WriteString("- [")
		b.WriteString(s.Title)
		b.WriteString("](#")
		b.WriteString(s.Anchor)
		b.WriteString(")\n")
	}
	return b.String()
}

// anchorFor lowercases title, keeps letters and digits and joins words with
// single hyphens.
func anchorFor(title string) string {
	var sb strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen {
				sb.WriteRune('-')
				pendingHyphen = false
			}
			sb.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			pendingHyphen = sb.Len() > 0
		}
	}
	return sb.String()
}
