package core

import (
	"fmt"
	"io"
	"strings"
)

// Document is the root container for a parsed outline. It owns the
// root-level nodes; every other node is owned by its parent.
type Document struct {
	// Source labels where the document came from (a path, or a synthetic
	// name for in-memory input). It is informational only.
	Source string

	children []Node
}

// NewDocument creates an empty document with the given source label.
func NewDocument(source string) *Document {
	return &Document{Source: source}
}

// Children returns the root-level nodes in document order.
func (d *Document) Children() []Node { return d.children }

// AddRootChild appends n at the top level. Root nodes have no parent.
func (d *Document) AddRootChild(n Node) {
	n.setParent(nil)
	d.children = append(d.children, n)
}

// Walk visits every node depth-first in document order.
func (d *Document) Walk(fn func(Node)) {
	for _, n := range d.children {
		walk(n, fn)
	}
}

func walk(n Node, fn func(Node)) {
	fn(n)
	for _, c := range n.Children() {
		walk(c, fn)
	}
}

// FilterByTag returns every task whose tag mapping contains name, in
// depth-first document order. Project and note lines never match, even
// when their raw text happens to contain a matching @-segment.
func (d *Document) FilterByTag(name string) []*Task {
	var tasks []*Task
	d.Walk(func(n Node) {
		if t, ok := n.(*Task); ok && t.Tags().Has(name) {
			tasks = append(tasks, t)
		}
	})
	return tasks
}

// Render writes the document in its textual notation: one line per node,
// depth-first, each line indented with the node's depth in tabs and
// terminated by a newline. An empty document renders as an empty string.
func (d *Document) Render(w io.Writer) error {
	for _, n := range d.children {
		if err := renderNode(w, n); err != nil {
			return err
		}
	}
	return nil
}

func renderNode(w io.Writer, n Node) error {
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("\t", n.Depth()), n.Text()); err != nil {
		return err
	}
	for _, c := range n.Children() {
		if err := renderNode(w, c); err != nil {
			return err
		}
	}
	return nil
}

// String renders the document to a string. See Render.
func (d *Document) String() string {
	var sb strings.Builder
	_ = d.Render(&sb)
	return sb.String()
}
