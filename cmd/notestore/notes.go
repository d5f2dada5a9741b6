package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var (
	notesJSON     bool
	templatesJSON bool
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Print every note under notes/",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := connect(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		notes, err := store.GetAllNotes(ctx)
		if err != nil {
			return err
		}
		if notesJSON {
			return writeJSON(cmd.OutOrStdout(), notes)
		}
		printKeys(cmd, notes)
		return nil
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Print every template under templates/",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := connect(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		templates, err := store.GetAllTemplates(ctx)
		if err != nil {
			return err
		}
		if templatesJSON {
			return writeJSON(cmd.OutOrStdout(), templates)
		}
		printKeys(cmd, templates)
		return nil
	},
}

// printKeys prints the keys in order with the content size.
func printKeys[M ~map[string]string](cmd *cobra.Command, m M) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", k, len(m[k]))
	}
}

func init() {
	rootCmd.AddCommand(notesCmd, templatesCmd)
	notesCmd.Flags().BoolVar(&notesJSON, "json", false, "Output in JSON format")
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Output in JSON format")
}
