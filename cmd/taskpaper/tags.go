package main

import (
	"fmt"
	"sort"

	"github.com/aretw0/taskpaper"
	"github.com/spf13/cobra"
)

var tagsJSON bool

var tagsCmd = &cobra.Command{
	Use:   "tags [file]",
	Short: "List distinct task tags in a file with usage counts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := taskpaper.ParseFile(args[0])
		if err != nil {
			fatal("Failed to parse file", err)
		}

		counts := make(map[string]int)
		doc.Walk(func(n taskpaper.Node) {
			t, ok := n.(*taskpaper.Task)
			if !ok {
				return
			}
			for _, tag := range t.Tags().All() {
				counts[tag.Name]++
			}
		})

		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Strings(names)

		if tagsJSON {
			encodeJSON(counts)
			return
		}
		for _, name := range names {
			fmt.Printf("%s\t%d\n", name, counts[name])
		}
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.Flags().BoolVar(&tagsJSON, "json", false, "Output in JSON format")
}
