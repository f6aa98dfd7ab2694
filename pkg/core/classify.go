package core

import "strings"

// Classify inspects one raw line and reports its variant from surface
// syntax alone. The checks run in priority order: a line that is both
// task-shaped and colon-terminated is a task.
func Classify(line string) Kind {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "- "):
		return KindTask
	case strings.HasSuffix(trimmed, ":"):
		return KindProject
	case trimmed != "":
		return KindNote
	default:
		return KindBlank
	}
}

// NewNode classifies and parses one raw line into its node variant.
// Blank lines return nil.
//
// Depth is the count of leading tab characters. Space indentation is not
// recognized and leaves the node at depth 0.
func NewNode(line string) Node {
	depth := leadingTabs(line)
	trimmed := strings.TrimSpace(line)
	switch Classify(trimmed) {
	case KindTask:
		return newTask(depth, trimmed)
	case KindProject:
		return newProject(depth, trimmed)
	case KindNote:
		return newNote(depth, trimmed)
	default:
		return nil
	}
}

func leadingTabs(line string) int {
	n := 0
	for _, r := range line {
		if r != '\t' {
			break
		}
		n++
	}
	return n
}
