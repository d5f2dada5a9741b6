package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/notestore/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Print changes until interrupted",
	Long:  `Print create, modify and delete events for paths matching a glob (default: everything).`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, err := connect(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		var pattern string
		if len(args) == 1 {
			pattern = args[0]
		}
		events, err := store.Watch(ctx, pattern)
		if err != nil {
			return err
		}

		src := lifecycle.NewSource(events)
		if err := src.Start(ctx); err != nil {
			return err
		}
		name, _ := store.DirectoryName()
		if pattern == "" {
			pattern = "all files"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Watching '%s' (%s). Press Ctrl+C to stop.\n", name, pattern)

		for e := range src.Events() {
			fmt.Fprintln(cmd.OutOrStdout(), e.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
