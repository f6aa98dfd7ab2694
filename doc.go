// Package taskpaper parses and renders TaskPaper-style outline documents.
//
// The notation is line oriented: a line ending in a colon opens a project,
// a line starting with "- " is a task, anything else is a free-text note,
// and tab indentation encodes nesting. Tasks carry trailing @tag and
// @tag(value) annotations that parse into an ordered name/value mapping.
//
// The package is split along the same seams as the notation:
//
//   - pkg/core: the domain. Line classification, tag extraction, the tree
//     builder, Document queries and round-trip rendering.
//   - pkg/adapters/fs: documents as files under a root directory, with
//     atomic writes, glob listing and fsnotify-based change watching.
//   - internal/platform: functional options and the service factory.
//
// Parsing is deliberately lenient: the format has no formal grammar, so
// irregular indentation and malformed tags are absorbed into a well-formed
// tree rather than rejected.
//
// Usage:
//
//	doc, err := taskpaper.ParseString("Inbox:\n\t- call mom @today\n", "inbox")
//	if err != nil { ... }
//	for _, task := range doc.FilterByTag("today") {
//		fmt.Println(task.Name())
//	}
//	fmt.Print(doc.String()) // round-trips the outline
package taskpaper
