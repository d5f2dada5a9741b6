package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var existsDir bool

var existsCmd = &cobra.Command{
	Use:   "exists <path>",
	Short: "Check whether a file (or directory with --dir) exists",
	Long:  `Prints true or false. The exit status is 1 when the entry does not exist.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := connect(ctx)
		if err != nil {
			return err
		}

		var found bool
		if existsDir {
			found = store.DirectoryExists(ctx, args[0])
		} else {
			found = store.FileExists(ctx, args[0])
		}
		store.Close()

		fmt.Fprintln(cmd.OutOrStdout(), found)
		if !found {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(existsCmd)
	existsCmd.Flags().BoolVar(&existsDir, "dir", false, "Check for a directory instead of a file")
}
