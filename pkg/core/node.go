package core

import "strings"

// Kind identifies the syntactic variant of a parsed line.
type Kind string

const (
	KindProject Kind = "project"
	KindTask    Kind = "task"
	KindNote    Kind = "note"
	// KindBlank marks lines that are empty after trimming. Blank lines are
	// classified but never materialized as nodes.
	KindBlank Kind = "blank"
)

// Node is one parsed line of an outline document.
//
// The interface is closed: only Project, Task and Note implement it.
// A node's depth and name are fixed at construction; Task tags may be
// mutated before re-rendering.
type Node interface {
	// Kind reports the variant of the node.
	Kind() Kind
	// Depth is the count of leading tab characters on the source line.
	Depth() int
	// Name is the human-readable label with tags and variant decoration
	// (the "- " prefix, the trailing colon) removed.
	Name() string
	// Text is the canonical line content without indentation. Rendering a
	// node emits Depth tab characters followed by Text.
	Text() string
	// Parent is the owning node, or nil for root-level nodes. It is a
	// non-owning back-reference used for upward traversal.
	Parent() Node
	// Children returns the owned child nodes in document order.
	Children() []Node

	setParent(Node)
	appendChild(Node)
}

// baseNode carries the fields shared by all variants.
type baseNode struct {
	depth    int
	raw      string // source line, tabs and surrounding whitespace stripped
	name     string
	parent   Node
	children []Node
}

func (b *baseNode) Depth() int         { return b.depth }
func (b *baseNode) Name() string       { return b.name }
func (b *baseNode) Parent() Node       { return b.parent }
func (b *baseNode) Children() []Node   { return b.children }
func (b *baseNode) setParent(p Node)   { b.parent = p }
func (b *baseNode) appendChild(c Node) { b.children = append(b.children, c) }

// Project is a heading line terminated by a colon, e.g. "Inbox:".
type Project struct {
	baseNode
	rawTags []string
}

func newProject(depth int, line string) *Project {
	body, segments := splitTags(line)
	name := body
	if name != "" {
		// Drop the final character of the body (the terminating colon when
		// the line carries no tags). This is intentionally positional, not
		// a colon strip, to match the notation as written.
		name = name[:len(name)-1]
	}
	p := &Project{
		baseNode: baseNode{depth: depth, raw: line, name: strings.TrimSpace(name)},
		rawTags:  rawTags(segments),
	}
	return p
}

// Kind reports KindProject.
func (p *Project) Kind() Kind { return KindProject }

// Text returns the line as stored; project lines render verbatim.
func (p *Project) Text() string { return p.raw }

// RawTags returns the trailing @-segments verbatim, including the "@".
// Project tags are not parsed into a name/value mapping.
func (p *Project) RawTags() []string { return p.rawTags }

// Task is an item line prefixed with "- ". Its tags are parsed into an
// ordered name/value mapping that may be mutated before re-rendering.
type Task struct {
	baseNode
	tags *TagSet
}

func newTask(depth int, line string) *Task {
	body, segments := splitTags(line)
	tags := &TagSet{}
	for _, seg := range segments {
		tags.put(parseTag(seg))
	}
	return &Task{
		baseNode: baseNode{
			depth: depth,
			raw:   line,
			name:  strings.TrimSpace(strings.TrimPrefix(body, "- ")),
		},
		tags: tags,
	}
}

// Kind reports KindTask.
func (t *Task) Kind() Kind { return KindTask }

// Tags returns the task's tag mapping. Mutations are reflected by Text.
func (t *Task) Tags() *TagSet { return t.tags }

// Text reassembles the task line from its name and the current tag mapping.
func (t *Task) Text() string {
	if t.tags.Len() == 0 {
		return "- " + t.name
	}
	return "- " + t.name + " " + t.tags.String()
}

// Note is any non-blank line that is neither a task nor a project. Notes
// model free-text commentary attached to the preceding node.
type Note struct {
	baseNode
	rawTags []string
}

func newNote(depth int, line string) *Note {
	body, segments := splitTags(line)
	return &Note{
		baseNode: baseNode{depth: depth, raw: line, name: strings.TrimSpace(body)},
		rawTags:  rawTags(segments),
	}
}

// Kind reports KindNote.
func (n *Note) Kind() Kind { return KindNote }

// Text returns the line as stored; note lines render verbatim.
func (n *Note) Text() string { return n.raw }

// RawTags returns the trailing @-segments verbatim, including the "@".
func (n *Note) RawTags() []string { return n.rawTags }

func rawTags(segments []string) []string {
	if len(segments) == 0 {
		return nil
	}
	tags := make([]string, len(segments))
	for i, seg := range segments {
		tags[i] = "@" + seg
	}
	return tags
}
