package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/aretw0/taskpaper"
	"github.com/spf13/cobra"
)

var watchGlob string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream change events for documents under the root",
	Long:  `Watch the document root and print one line per change event until interrupted.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := taskpaper.New(rootDir,
			taskpaper.WithMustExist(true),
			taskpaper.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("Failed to initialize taskpaper", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		events, err := service.Watch(ctx, watchGlob)
		if err != nil {
			fatal("Failed to start watching", err)
		}

		slog.Info("watching", "dir", rootDir)
		for event := range events {
			fmt.Println(event)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchGlob, "glob", "", "Glob pattern relative to the root (default: every document)")
}
