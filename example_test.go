package taskpaper_test

import (
	"fmt"
	"log"

	"github.com/aretw0/taskpaper"
)

// Example_basic demonstrates parsing an outline and querying tasks by tag.
func Example_basic() {
	input := "Inbox:\n" +
		"\t- call mom @today\n" +
		"\t- file taxes @due(2026-04-15)\n" +
		"\tshe asked twice already\n"

	doc, err := taskpaper.ParseString(input, "inbox")
	if err != nil {
		log.Fatal(err)
	}

	for _, task := range doc.FilterByTag("today") {
		fmt.Println(task.Name())
	}

	due, _ := doc.FilterByTag("due")[0].Tags().Get("due")
	fmt.Println(due.Value)

	// Output:
	// call mom
	// 2026-04-15
}

// Example_mutate demonstrates editing a task's tags and re-rendering.
func Example_mutate() {
	doc, err := taskpaper.ParseString("- Task @tag @tagWithValue(100)\n", "scratch")
	if err != nil {
		log.Fatal(err)
	}

	task := doc.Children()[0].(*taskpaper.Task)
	task.Tags().Set("tag", "value")

	fmt.Print(doc.String())

	// Output:
	// - Task @tag(value) @tagWithValue(100)
}
