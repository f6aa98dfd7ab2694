package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/taskpaper"
	"github.com/spf13/cobra"
)

var (
	listJSON bool
	listGlob string
	listTag  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents under the root, or tasks matching a tag",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := taskpaper.New(rootDir,
			taskpaper.WithMustExist(true),
			taskpaper.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to initialize taskpaper", err)
		}

		ctx := context.Background()
		names, err := service.ListDocuments(ctx, listGlob)
		if err != nil {
			fatal("Failed to list documents", err)
		}

		if listTag == "" {
			printNames(names)
			return
		}

		// With --tag, list matching tasks across every document.
		type taggedTask struct {
			Document string `json:"document"`
			Name     string `json:"name"`
			Depth    int    `json:"depth"`
		}
		var matches []taggedTask
		for _, name := range names {
			tasks, err := service.FilterByTag(ctx, name, listTag)
			if err != nil {
				fatal("Failed to filter document "+name, err)
			}
			for _, t := range tasks {
				matches = append(matches, taggedTask{Document: name, Name: t.Name(), Depth: t.Depth()})
			}
		}

		if listJSON {
			encodeJSON(matches)
			return
		}
		for _, m := range matches {
			fmt.Printf("%s: %s\n", m.Document, m.Name)
		}
	},
}

func printNames(names []string) {
	if listJSON {
		encodeJSON(names)
		return
	}
	for _, name := range names {
		fmt.Println(name)
	}
}

func encodeJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fatal("Failed to encode JSON", err)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listGlob, "glob", "", "Glob pattern relative to the root (default: every document)")
	listCmd.Flags().StringVar(&listTag, "tag", "", "List tasks carrying this tag instead of document names")
}
