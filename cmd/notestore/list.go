package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/notestore/pkg/core"
)

var (
	listJSON  bool
	listMatch string
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List files and directories recursively",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := connect(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		var entries []core.DirectoryEntry
		if listMatch != "" {
			entries, err = store.Glob(ctx, listMatch)
			if err != nil {
				return err
			}
		} else {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			entries, err = store.ListFiles(ctx, dir)
			if err != nil {
				return err
			}
		}

		if listJSON {
			return writeJSON(cmd.OutOrStdout(), entries)
		}
		for _, e := range entries {
			if e.IsFile {
				fmt.Fprintln(cmd.OutOrStdout(), e.Path)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), e.Path+"/")
			}
		}
		return nil
	},
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listMatch, "match", "", "Only entries matching a glob such as 'notes/**/*.md' (whole root)")
}
