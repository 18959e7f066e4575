package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jotpad/jotpad"
	"github.com/spf13/cobra"
)

var (
	listJSON  bool
	listQuery string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, most recently updated first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		store, err := jotpad.New(ctx, resolveDir(), jotpad.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to open store", err)
		}

		store.SetQuery(listQuery)
		notes := store.Notes()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(notes); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, note := range notes {
			updated := time.UnixMilli(note.UpdatedAt).Format("2006-01-02 15:04")
			fmt.Printf("%s  %s  %s\n", note.ID, updated, note.DisplayTitle())
		}
		fmt.Printf("%d of %d notes\n", len(notes), store.Len())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Filter notes by a case-insensitive substring")
}
