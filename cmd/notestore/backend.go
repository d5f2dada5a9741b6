package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notestore/internal/prompt"
	"github.com/aretw0/notestore/pkg/core"
)

var pickCmd = &cobra.Command{
	Use:   "pick [dir]",
	Short: "Pick the notes directory",
	Long: `Pick a host directory as the notes root and remember it for later runs.
Without an argument you are asked for one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var picker core.Picker
		if len(args) == 1 {
			picker = prompt.Fixed(args[0])
		}
		store, err := openStore(ctx, picker)
		if err != nil {
			return err
		}
		defer store.Close()

		name, err := store.PickDirectory(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Selected directory '%s'.\n", name)
		return nil
	},
}

var sandboxCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Check the application-private sandbox",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx, nil)
		if err != nil {
			return err
		}
		defer store.Close()

		name, err := store.UseSandboxedOrigin(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Sandbox '%s' is available.\n", name)
		return nil
	},
}

var reconnectCmd = &cobra.Command{
	Use:   "reconnect",
	Short: "Reconnect to the remembered directory",
	Long:  `Restore the picked directory, asking for permission again when needed.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx, nil)
		if err != nil {
			return err
		}
		defer store.Close()

		name, ok, err := store.Reconnect(ctx)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Not connected: no directory remembered or permission not granted.")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reconnected to '%s'.\n", name)
		return nil
	},
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Forget the remembered directory",
	Long:  `Forget the picked directory. Its files are left untouched.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx, nil)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Disconnect(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Disconnected.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pickCmd, sandboxCmd, reconnectCmd, disconnectCmd)
}
