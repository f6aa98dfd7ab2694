package core

// builder assembles a flat, in-order node sequence into the document tree
// using only each node's depth and variant.
//
// The cursor tracks the most recently attached non-note node. Notes never
// become the cursor: they nest under whatever precedes them and stay leaves
// relative to future siblings.
type builder struct {
	doc  *Document
	last Node
}

// attach wires n into the tree.
//
// Untabbed nodes (and the very first node) always land at the root. A node
// deeper than the cursor, or any note, nests under the cursor. Otherwise
// the builder climbs the cursor's parent chain until it is no deeper than
// n, then attaches n one level above it, making the two siblings. The climb
// saturates at the document root, so irregular indentation still yields a
// well-formed tree.
func (b *builder) attach(n Node) {
	switch {
	case b.last == nil || n.Depth() == 0:
		b.doc.AddRootChild(n)
	case n.Depth() > b.last.Depth() || n.Kind() == KindNote:
		link(b.last, n)
	default:
		for b.last != nil && n.Depth() < b.last.Depth() {
			b.last = b.last.Parent()
		}
		if b.last == nil {
			b.doc.AddRootChild(n)
		} else if parent := b.last.Parent(); parent == nil {
			b.doc.AddRootChild(n)
		} else {
			link(parent, n)
		}
	}

	if n.Kind() != KindNote {
		b.last = n
	}
}

func link(parent, child Node) {
	parent.appendChild(child)
	child.setParent(parent)
}
