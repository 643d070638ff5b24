package dom

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/boxflow/core"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoDocumentBody is returned if a document does not have a <body> element.
var ErrNoDocumentBody = errors.New("document has no body")

// Document is an HTML document.
type Document struct {
	root *html.Node
}

// Parse reads an HTML document. The HTML parser is forgiving, so fragments
// like "<p>Hello</p>" will be completed to full documents.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse HTML document")
	}
	return &Document{root: root}, nil
}

// ParseString reads an HTML document from a string.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// FromNode wraps an existing HTML parse tree.
func FromNode(root *html.Node) *Document {
	return &Document{root: root}
}

// Root returns the document node.
func (doc *Document) Root() *html.Node {
	return doc.root
}

// HTML returns the <html> element.
func (doc *Document) HTML() *html.Node {
	return FindElement(doc.root, atom.Html)
}

// Body returns the <body> element.
func (doc *Document) Body() (*html.Node, error) {
	body := FindElement(doc.root, atom.Body)
	if body == nil {
		return nil, ErrNoDocumentBody
	}
	return body, nil
}

// StyleSheets returns the contents of all <style> elements, in document order.
func (doc *Document) StyleSheets() []string {
	var sheets []string
	Walk(doc.root, func(n *html.Node) bool {
		if IsElement(n, atom.Style) {
			sheets = append(sheets, TextContent(n))
			return false
		}
		return true
	})
	tracer().Debugf("document has %d embedded style sheets", len(sheets))
	return sheets
}

// Walk visits n and its descendents in document order. If f returns false,
// the children of a node will be skipped.
func Walk(n *html.Node, f func(*html.Node) bool) {
	if n == nil {
		return
	}
	if !f(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, f)
	}
}

// FindElement returns the first element of a given type in document order,
// starting at n.
func FindElement(n *html.Node, a atom.Atom) *html.Node {
	var found *html.Node
	Walk(n, func(c *html.Node) bool {
		if found != nil {
			return false
		}
		if IsElement(c, a) {
			found = c
			return false
		}
		return true
	})
	return found
}

// IsElement is true if n is an element of type a. If a is zero, any element
// matches.
func IsElement(n *html.Node, a atom.Atom) bool {
	return n != nil && n.Type == html.ElementNode && (a == 0 || n.DataAtom == a)
}

// IsText is true if n is a text node.
func IsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// Attr returns the value of an attribute of an element, and whether the
// attribute is present.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// TextContent returns the concatenated text of all text nodes below n.
func TextContent(n *html.Node) string {
	var b strings.Builder
	Walk(n, func(c *html.Node) bool {
		if IsText(c) {
			b.WriteString(c.Data)
		}
		return true
	})
	return b.String()
}

// ElementName returns the lower-case tag name of an element, or "" for
// other nodes.
func ElementName(n *html.Node) string {
	if !IsElement(n, 0) {
		return ""
	}
	return strings.ToLower(n.Data)
}
