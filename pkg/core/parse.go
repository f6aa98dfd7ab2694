package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single input line. Outlines are hand-written text;
// a megabyte per line is far beyond anything legitimate.
const maxLineSize = 1024 * 1024

// Parse reads lines from r, front to back and exactly once, and builds the
// document tree. The source label is attached to the returned document for
// diagnostics and round-trip labeling.
//
// Parsing is deliberately lenient: irregular indentation, empty tag names
// and unmatched value syntax are absorbed into a well-formed tree, never
// rejected. The only error condition is a failing read, in which case no
// document is returned.
func Parse(r io.Reader, source string) (*Document, error) {
	doc := NewDocument(source)
	b := &builder{doc: doc}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		n := NewNode(scanner.Text())
		if n == nil {
			continue
		}
		b.attach(n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	return doc, nil
}

// ParseString parses an in-memory document.
func ParseString(s, source string) (*Document, error) {
	return Parse(strings.NewReader(s), source)
}
