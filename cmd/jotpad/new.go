package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jotpad/jotpad"
	"github.com/spf13/cobra"
)

var (
	newTitle   string
	newContent string
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note",
	Long:  `Create a new note and select it. Title and content are optional.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		store, err := jotpad.New(ctx, resolveDir(), jotpad.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to open store", err)
		}

		id := store.Create(ctx)

		if newTitle != "" || newContent != "" {
			patch := jotpad.Patch{}
			if newTitle != "" {
				patch.Title = &newTitle
			}
			if newContent != "" {
				patch.Content = &newContent
			}
			store.Update(ctx, id, patch)
		}

		fmt.Println(id)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "Note title")
	newCmd.Flags().StringVarP(&newContent, "content", "c", "", "Note content")
}
