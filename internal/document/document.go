// Package document adapts parsed HTML pages to the theme package: it exposes
// the root element and a single-shot ready signal.
package document

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML page.
type Document struct {
	node *html.Node
	root *Element

	mu      sync.Mutex
	ready   bool
	pending []func()
}

// Parse reads an HTML page. The parser always synthesises an <html>
// element, so every document has a root.
func Parse(r io.Reader) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	rootNode := findRoot(node)
	if rootNode == nil {
		return nil, fmt.Errorf("parse html: document has no root element")
	}

	return &Document{
		node: node,
		root: &Element{node: rootNode},
	}, nil
}

// NewDetached returns an empty document, used when no page is at hand.
func NewDetached() *Document {
	doc, err := Parse(strings.NewReader(""))
	if err != nil {
		panic(err) // the parser always accepts empty input
	}
	return doc
}

// Root returns the document root element.
func (d *Document) Root() *Element {
	return d.root
}

// OnReady registers fn to run when the document becomes ready.
// Callbacks registered after readiness run immediately.
func (d *Document) OnReady(fn func()) {
	d.mu.Lock()
	if !d.ready {
		d.pending = append(d.pending, fn)
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()
	fn()
}

// Ready marks the document ready and runs pending callbacks in
// registration order. Only the first call has any effect.
func (d *Document) Ready() {
	d.mu.Lock()
	if d.ready {
		d.mu.Unlock()
		return
	}
	d.ready = true
	pending := d.pending
	d.pending = nil
	d.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
}

// IsReady reports whether Ready has been called.
func (d *Document) IsReady() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ready
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.node)
}

func findRoot(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Html {
			return c
		}
	}
	return nil
}
