package main

import (
	"fmt"

	"github.com/aretw0/taskpaper"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of taskpaper",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskpaper version %s\n", taskpaper.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
