package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemd"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// protectedTags are never pruned as empty: they carry meaning without text.
var protectedTags = map[atom.Atom]bool{
	atom.Img:    true,
	atom.Br:     true,
	atom.Iframe: true,
}

// Sanitize returns a cleaned deep copy of root. Scripts and styles are
// dropped, then every subtree matching a platform or generic remove
// selector, then empty elements bottom-up. The original tree is untouched
// and the returned root itself is never removed. platform may be nil.
func Sanitize(root *goquery.Selection, platform, generic *pagemd.Profile) *goquery.Selection {
	clean := root.First().Clone()

	clean.Find("script, style").Remove()
	for _, p := range []*pagemd.Profile{platform, generic} {
		if p == nil {
			continue
		}
		for _, sel := range p.Remove {
			clean.Find(sel).Remove()
		}
	}

	for _, n := range clean.Nodes {
		pruneEmpty(n)
	}
	return clean
}

// pruneEmpty removes the empty element descendants of n. Children are
// resolved before their parent so that wrappers left empty go too.
func pruneEmpty(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode {
			pruneEmpty(c)
			if !protectedTags[c.DataAtom] && isEmpty(c) {
				n.RemoveChild(c)
			}
		}
		c = next
	}
}

// isEmpty reports whether n has no visible text and no image or frame.
func isEmpty(n *html.Node) bool {
	s := goquery.NewDocumentFromNode(n).Selection
	return strings.TrimSpace(s.Text()) == "" && s.Find("img, iframe").Length() == 0
}
