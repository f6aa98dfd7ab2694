package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/taskpaper"
)

func main() {
	projects := flag.Int("projects", 100, "Number of projects to generate")
	tasks := flag.Int("tasks", 50, "Number of tasks per project")
	keep := flag.Bool("keep", false, "Keep the generated file after running")
	flag.Parse()

	benchDir, err := os.MkdirTemp("", "taskpaper_bench_")
	if err != nil {
		panic(err)
	}
	defer func() {
		if !*keep {
			os.RemoveAll(benchDir)
		} else {
			fmt.Printf("Keeping bench dir: %s\n", benchDir)
		}
	}()

	// 1. Generate one large outline. Direct string building keeps setup
	// out of the measured path.
	fmt.Printf("Generating %d projects x %d tasks...\n", *projects, *tasks)
	startGen := time.Now()

	var sb strings.Builder
	for p := 0; p < *projects; p++ {
		fmt.Fprintf(&sb, "Project %d:\n", p)
		for t := 0; t < *tasks; t++ {
			fmt.Fprintf(&sb, "\t- task %d-%d @bench @index(%d)\n", p, t, t)
			if t%10 == 0 {
				fmt.Fprintf(&sb, "\t\tnote for task %d-%d\n", p, t)
			}
		}
	}
	input := sb.String()

	path := filepath.Join(benchDir, "bench.taskpaper")
	if err := os.WriteFile(path, []byte(input), 0644); err != nil {
		panic(err)
	}
	fmt.Printf("Generation took: %v (%d bytes)\n", time.Since(startGen), len(input))

	// 2. Parse
	fmt.Println("Running Parse...")
	startParse := time.Now()
	doc, err := taskpaper.ParseFile(path)
	if err != nil {
		panic(err)
	}
	parseDuration := time.Since(startParse)

	// 3. Query
	startFilter := time.Now()
	matches := doc.FilterByTag("bench")
	filterDuration := time.Since(startFilter)

	// 4. Render
	startRender := time.Now()
	out := doc.String()
	renderDuration := time.Since(startRender)

	fmt.Printf("--------------------------------------------------\n")
	fmt.Printf("Benchmark Result (%d projects, %d tasks each):\n", *projects, *tasks)
	fmt.Printf("  Parse:  %v\n", parseDuration)
	fmt.Printf("  Filter: %v (matched %d)\n", filterDuration, len(matches))
	fmt.Printf("  Render: %v (%d bytes)\n", renderDuration, len(out))
	fmt.Printf("--------------------------------------------------\n")
}
