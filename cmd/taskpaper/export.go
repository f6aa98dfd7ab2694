package main

import (
	"os"

	"github.com/aretw0/taskpaper"
	"github.com/aretw0/taskpaper/pkg/export"
	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export a parsed file as JSON or YAML",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := taskpaper.ParseFile(args[0])
		if err != nil {
			fatal("Failed to parse file", err)
		}

		exporter, err := export.ForFormat(exportFormat)
		if err != nil {
			fatal("Invalid format", err)
		}

		data, err := exporter.Export(doc)
		if err != nil {
			fatal("Failed to export", err)
		}
		os.Stdout.Write(data)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format (json, yaml)")
}
