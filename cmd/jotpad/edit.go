package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jotpad/jotpad"
	"github.com/spf13/cobra"
)

var (
	editTitle   string
	editContent string
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note's title or content",
	Long: `Edit binds an editor session to the note, applies the given edits,
and flushes them explicitly before exiting. The debounce timer that a live
frontend would rely on never fires in a one-shot process.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("content") {
			fmt.Println("Error: at least one of --title or --content is required")
			cmd.Usage()
			return
		}

		ctx := context.Background()
		dir := resolveDir()

		store, err := jotpad.New(ctx, dir, jotpad.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to open store", err)
		}

		session := jotpad.NewSession(store, dir)
		if !session.Bind(args[0]) {
			fatal("Note not found", fmt.Errorf("no note with id %s", args[0]))
		}

		if cmd.Flags().Changed("title") {
			session.SetTitle(editTitle)
		}
		if cmd.Flags().Changed("content") {
			session.SetContent(editContent)
		}

		if err := session.Flush(ctx); err != nil {
			fatal("Failed to commit edits", err)
		}

		fmt.Printf("Note updated: %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
}
