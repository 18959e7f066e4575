package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jotpad/jotpad"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long:  `Delete removes a note from the pad. Deleting an unknown id is a no-op.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		store, err := jotpad.New(ctx, resolveDir(), jotpad.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to open store", err)
		}

		store.Delete(ctx, args[0])
		fmt.Printf("Note deleted: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
