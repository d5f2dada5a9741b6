package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the notes/ and templates/ directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := connect(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.InitDirectories(ctx); err != nil {
			return err
		}
		name, _ := store.DirectoryName()
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized '%s'.\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
