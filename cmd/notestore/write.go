package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:   "write <path> [content]",
	Short: "Create or overwrite a file",
	Long:  `Write content to path, creating parent directories. Content is read from stdin when omitted.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var content string
		if len(args) == 2 {
			content = args[1]
		} else {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			content = string(data)
		}

		store, err := connect(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.WriteFile(ctx, args[0], content); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "File '%s' saved.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
}
