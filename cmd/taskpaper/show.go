package main

import (
	"fmt"

	"github.com/aretw0/taskpaper"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Parse a file and print its tree",
	Long:  `Parse an outline file and print the source label followed by the reconstructed tree.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := taskpaper.ParseFile(args[0])
		if err != nil {
			fatal("Failed to parse file", err)
		}

		fmt.Println(doc.Source)
		fmt.Print(doc.String())
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
