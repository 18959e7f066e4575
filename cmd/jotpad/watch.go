package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/jotpad/jotpad"
	"github.com/spf13/cobra"
)

var watchPattern string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the pad for external changes",
	Long: `Watch tails storage change events (another process rewriting the
notes blob) and reloads the collection on each one. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, err := jotpad.New(ctx, resolveDir(), jotpad.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to open store", err)
		}

		events, err := store.Watch(ctx, watchPattern)
		if err != nil {
			fatal("Failed to watch store", err)
		}

		fmt.Printf("Watching %s (pattern %q), %d notes\n", resolveDir(), watchPattern, store.Len())

		for event := range events {
			store.Reload(ctx)
			fmt.Printf("%s  %s %s  (%d notes)\n",
				time.Unix(event.Timestamp, 0).Format("15:04:05"),
				event.Type, event.Key, store.Len())
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchPattern, "pattern", "p", "*", "Glob pattern for storage keys")
}
