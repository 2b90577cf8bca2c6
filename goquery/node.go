// Package goquery implements palabras.Node and palabras.Extractor on top of
// goquery and golang.org/x/net/html.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/palabras"
	"golang.org/x/net/html"
)

// contentSelector matches the container of the article body on a
// Wiktionary page. Pages without it are read from <body>.
const contentSelector = ".mw-parser-output"

var _ palabras.Node = (*Node)(nil)

// Node adapts a selection of a single HTML node to palabras.Node.
type Node struct {
	sel *goquery.Selection
}

// Parse parses an HTML page and returns the root of its article body.
func Parse(markup string) (*Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	root := doc.Find(contentSelector).First()
	if root.Length() == 0 {
		root = doc.Find("body").First()
	}
	if root.Length() == 0 {
		root = doc.Selection
	}
	return &Node{sel: root}, nil
}

// Tag returns the element name, or "" for text, comment and document nodes.
func (n *Node) Tag() string {
	node := n.sel.Get(0)
	if node.Type != html.ElementNode {
		return ""
	}
	return node.Data
}

// HeadingLevel returns the level of an h1-h6 element. A div.mw-heading
// wrapper, as emitted by current MediaWiki versions, reports the level
// of the heading it wraps.
func (n *Node) HeadingLevel() int {
	h := n.heading()
	if h == nil {
		return 0
	}
	return headingLevel(h.Get(0))
}

// HeadingText returns the heading title without edit-section links.
func (n *Node) HeadingText() string {
	h := n.heading()
	if h == nil {
		return ""
	}

	// Older MediaWiki markup keeps the title in span.mw-headline.
	if headline := h.Find(".mw-headline").First(); headline.Length() > 0 {
		return strings.TrimSpace(headline.Text())
	}

	clone := h.Clone()
	clone.Find(".mw-editsection").Remove()
	return strings.TrimSpace(clone.Text())
}

// Children returns all child nodes, including text nodes.
func (n *Node) Children() []palabras.Node {
	contents := n.sel.Contents()
	children := make([]palabras.Node, 0, contents.Length())
	contents.Each(func(_ int, s *goquery.Selection) {
		children = append(children, &Node{sel: s})
	})
	return children
}

// Text returns the combined text content of the node and its descendants.
func (n *Node) Text() string {
	return n.sel.Text()
}

// noiseSelector matches page chrome that is not dictionary content.
const noiseSelector = ".mw-editsection, style, script"

// HTML returns the outer HTML of the node without edit links, styles
// and scripts. A node that is itself noise renders as "".
func (n *Node) HTML() (string, error) {
	if n.sel.Is(noiseSelector) {
		return "", nil
	}
	clone := n.sel.Clone()
	clone.Find(noiseSelector).Remove()
	return goquery.OuterHtml(clone)
}

// heading returns the hN selection this node stands for, or nil.
func (n *Node) heading() *goquery.Selection {
	node := n.sel.Get(0)
	if headingLevel(node) > 0 {
		return n.sel
	}
	if node.Type == html.ElementNode && node.Data == "div" && n.sel.HasClass("mw-heading") {
		if h := n.sel.ChildrenFiltered("h1, h2, h3, h4, h5, h6").First(); h.Length() > 0 {
			return h
		}
	}
	return nil
}

func headingLevel(node *html.Node) int {
	if node.Type != html.ElementNode || len(node.Data) != 2 || node.Data[0] != 'h' {
		return 0
	}
	if c := node.Data[1]; c >= '1' && c <= '6' {
		return int(c - '0')
	}
	return 0
}
