package main

import (
	"fmt"

	"github.com/aretw0/taskpaper"
	"github.com/aretw0/taskpaper/pkg/adapters/fs"
	"github.com/spf13/cobra"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Re-render a file in canonical form",
	Long: `Parse an outline file and re-render it: blank lines are dropped and task
tags normalize to mapping order. Prints to stdout unless --write is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		doc, err := taskpaper.ParseFile(path)
		if err != nil {
			fatal("Failed to parse file", err)
		}

		if !fmtWrite {
			fmt.Print(doc.String())
			return
		}

		if err := fs.WriteDocument(path, doc); err != nil {
			fatal("Failed to rewrite file", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite the file in place (atomic)")
}
