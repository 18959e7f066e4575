package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jotpad/jotpad"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		store, err := jotpad.New(ctx, resolveDir(), jotpad.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to open store", err)
		}

		store.Select(args[0])
		note, ok := store.Selected()
		if !ok {
			fatal("Note not found", fmt.Errorf("no note with id %s", args[0]))
		}

		fmt.Printf("%s\n", note.DisplayTitle())
		fmt.Printf("id: %s  updated: %s\n\n", note.ID, time.UnixMilli(note.UpdatedAt).Format(time.RFC3339))
		fmt.Println(note.Content)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
