package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notestore/pkg/core"
)

var statusJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active backend and capabilities",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer store.Close()

		state, _ := store.State().(core.SessionState)

		if statusJSON {
			return writeJSON(cmd.OutOrStdout(), state)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Backend:   %s\n", state.Backend)
		if name, ok := store.DirectoryName(); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "Directory: %s\n", name)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Local:     %v\n", state.Capabilities.LocalDirectoryAvailable)
		fmt.Fprintf(cmd.OutOrStdout(), "Sandbox:   %v\n", state.Capabilities.SandboxedOriginAvailable)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output in JSON format")
}
