// Package htmlcode builds small HTML fragments as a node tree and renders them
// with golang.org/x/net/html, which handles attribute and text escaping.
package htmlcode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is an ordered list of top-level elements.
type Document struct {
	nodes []*html.Node
}

// Element wraps a single element node under construction.
type Element struct {
	node *html.Node
}

// Create runs fn against an empty Document and renders the result.
func Create(fn func(d *Document)) (string, error) {
	d := &Document{}
	fn(d)
	return d.String()
}

// NewElement appends a top-level element and lets fn populate it.
func (d *Document) NewElement(tag string, fn func(e *Element)) *Element {
	e := newElement(tag)
	d.nodes = append(d.nodes, e.node)
	if fn != nil {
		fn(e)
	}
	return e
}

// Render writes every top-level element to w in order.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("rendering <%s>: %w", n.Data, err)
		}
	}
	return nil
}

// String renders the document to a string.
func (d *Document) String() (string, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func newElement(tag string) *Element {
	return &Element{node: &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}
}

// Attr sets an attribute, replacing an existing one with the same key.
func (e *Element) Attr(key, val string) *Element {
	for i := range e.node.Attr {
		if e.node.Attr[i].Key == key {
			e.node.Attr[i].Val = val
			return e
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
	return e
}

// Text appends a text child. Script and style bodies are emitted raw, so a
// closing tag sequence inside them is neutralized.
func (e *Element) Text(s string) *Element {
	if e.node.DataAtom == atom.Script || e.node.DataAtom == atom.Style {
		s = strings.ReplaceAll(s, "</", `<\/`)
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	return e
}

// NewElement appends a child element and lets fn populate it.
func (e *Element) NewElement(tag string, fn func(c *Element)) *Element {
	c := newElement(tag)
	e.node.AppendChild(c.node)
	if fn != nil {
		fn(c)
	}
	return c
}
