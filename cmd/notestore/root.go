package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notestore/pkg/config"
)

var (
	verbose    bool
	configPath string
	backend    string

	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notestore",
	Short: "A persistent notes filesystem over a picked directory or a private sandbox",
	Long: `notestore stores notes and templates under notes/ and templates/ in either
a directory you picked (remembered across runs, permission confirmed again
on reconnect) or an application-private sandbox.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		logger, err := newLogger(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default "+config.DefaultConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", backendAuto, "Backend to use: auto, local or sandbox")
}
