package core

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestParse_TreeShape(t *testing.T) {
	input := strings.Join([]string{
		"Project:",
		"\t- Task A",
		"\t\tNote under A",
		"\t- Task B",
	}, "\n")

	doc, err := ParseString(input, "test")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	roots := doc.Children()
	if len(roots) != 1 {
		t.Fatalf("root children = %d, want 1", len(roots))
	}

	project := roots[0]
	if project.Kind() != KindProject || project.Name() != "Project" {
		t.Fatalf("root = (%s, %q), want (project, Project)", project.Kind(), project.Name())
	}

	kids := project.Children()
	if len(kids) != 2 {
		t.Fatalf("project children = %d, want 2", len(kids))
	}
	if kids[0].Name() != "Task A" || kids[1].Name() != "Task B" {
		t.Errorf("project children = %q, %q; want Task A, Task B", kids[0].Name(), kids[1].Name())
	}

	// The note is deeper than Task A, so it nests under it; Task B then
	// climbs back to sibling level.
	aKids := kids[0].Children()
	if len(aKids) != 1 || aKids[0].Kind() != KindNote {
		t.Fatalf("Task A children = %v, want one note", aKids)
	}
	if aKids[0].Parent() != kids[0] {
		t.Error("note parent is not Task A")
	}
}

func TestParse_NoteNestsWithoutExtraIndent(t *testing.T) {
	// A note at the same depth as the preceding task still nests under it.
	input := "Project:\n\t- Task A\n\tnote at task depth\n\t- Task B\n"

	doc, err := ParseString(input, "test")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	project := doc.Children()[0]
	if len(project.Children()) != 2 {
		t.Fatalf("project children = %d, want 2", len(project.Children()))
	}

	taskA := project.Children()[0]
	if len(taskA.Children()) != 1 || taskA.Children()[0].Kind() != KindNote {
		t.Fatalf("Task A children = %v, want the note", taskA.Children())
	}
}

func TestParse_ClimbToAncestor(t *testing.T) {
	input := strings.Join([]string{
		"Top:",
		"\t- a",
		"\t\t- b",
		"\t\t\t- c",
		"\t- d",
	}, "\n")

	doc, err := ParseString(input, "test")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	top := doc.Children()[0]
	if len(top.Children()) != 2 {
		t.Fatalf("top children = %d, want 2 (a, d)", len(top.Children()))
	}
	if got := top.Children()[1].Name(); got != "d" {
		t.Errorf("second child of top = %q, want d", got)
	}
}

func TestParse_DepthZeroAlwaysRoot(t *testing.T) {
	input := strings.Join([]string{
		"One:",
		"\t- deep",
		"\t\t- deeper",
		"Two:",
		"back to the wall",
	}, "\n")

	doc, err := ParseString(input, "test")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	roots := doc.Children()
	if len(roots) != 3 {
		t.Fatalf("root children = %d, want 3", len(roots))
	}
	if roots[1].Name() != "Two" || roots[2].Kind() != KindNote {
		t.Errorf("roots = %q/%s, %q/%s", roots[1].Name(), roots[1].Kind(), roots[2].Name(), roots[2].Kind())
	}
	for _, r := range roots {
		if r.Parent() != nil {
			t.Errorf("root node %q has non-nil parent", r.Name())
		}
	}
}

func TestParse_IrregularIndentationClimbsToRoot(t *testing.T) {
	// The first node sits at depth 3; a later, shallower task cannot find
	// an ancestor at its depth and must land at the root.
	input := "\t\t\t- floating\n\t- shallower\n"

	doc, err := ParseString(input, "test")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	roots := doc.Children()
	if len(roots) != 2 {
		t.Fatalf("root children = %d, want 2", len(roots))
	}
	if roots[0].Name() != "floating" || roots[1].Name() != "shallower" {
		t.Errorf("roots = %q, %q", roots[0].Name(), roots[1].Name())
	}
}

func TestParse_BlankLinesSkipped(t *testing.T) {
	input := "Project:\n\n\t- task\n   \n"

	doc, err := ParseString(input, "test")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	count := 0
	doc.Walk(func(Node) { count++ })
	if count != 2 {
		t.Errorf("node count = %d, want 2", count)
	}
}

func TestParse_Empty(t *testing.T) {
	doc, err := ParseString("", "empty")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if len(doc.Children()) != 0 {
		t.Errorf("root children = %d, want 0", len(doc.Children()))
	}
	if doc.String() != "" {
		t.Errorf("String() = %q, want empty", doc.String())
	}
}

func TestParse_ReadErrorReturnsNoDocument(t *testing.T) {
	wantErr := errors.New("boom")
	r := iotest.ErrReader(wantErr)

	doc, err := Parse(r, "broken")
	if doc != nil {
		t.Errorf("doc = %v, want nil on read failure", doc)
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want wrapped %v", err, wantErr)
	}
}

func TestParse_SourceLabel(t *testing.T) {
	doc, err := ParseString("- x\n", "some/where.taskpaper")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if doc.Source != "some/where.taskpaper" {
		t.Errorf("Source = %q", doc.Source)
	}
}
