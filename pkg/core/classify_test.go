package core

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Kind
	}{
		{name: "Task", line: "- buy milk", want: KindTask},
		{name: "Project", line: "Groceries:", want: KindProject},
		{name: "Note", line: "remember the coupons", want: KindNote},
		{name: "Blank", line: "", want: KindBlank},
		{name: "Whitespace Only", line: " \t ", want: KindBlank},
		{name: "Indented Task", line: "\t\t- buy milk", want: KindTask},
		{name: "Task Wins Over Project", line: "- looks like a project:", want: KindTask},
		{name: "Colon Mid Line Is Note", line: "see: the manual", want: KindNote},
		{name: "Dash Without Space Is Note", line: "-not a task", want: KindNote},
		{name: "Bare Colon Is Project", line: ":", want: KindProject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.line); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestNewNode_Depth(t *testing.T) {
	tests := []struct {
		name string
		line string
		want int
	}{
		{name: "No Tabs", line: "- task", want: 0},
		{name: "Two Tabs", line: "\t\t- task", want: 2},
		{name: "Spaces Do Not Count", line: "    - task", want: 0},
		{name: "Tabs After Spaces Do Not Count", line: " \t- task", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNode(tt.line)
			if n == nil {
				t.Fatalf("NewNode(%q) = nil", tt.line)
			}
			if n.Depth() != tt.want {
				t.Errorf("Depth() = %d, want %d", n.Depth(), tt.want)
			}
		})
	}
}

func TestNewNode_Blank(t *testing.T) {
	if n := NewNode("   "); n != nil {
		t.Errorf("NewNode of blank line = %v, want nil", n)
	}
}
