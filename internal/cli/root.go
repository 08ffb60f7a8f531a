package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "pindrop",
		Short: "CLI tool for the pindrop travel-diary API",
		Long: `pindrop is a CLI tool for interacting with the pindrop JSON API.

It supports registering and logging in, dropping map pins with a review and
star rating, and listing everyone's pins. The logged-in username is kept in
a local file and sent with pin submissions.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load stored username if not provided via flag/env
			if err := cfg.LoadUsername(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: PINDROP_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Username, "as", cfg.Username, "Username to act as (env: PINDROP_USERNAME)")
	rootCmd.PersistentFlags().StringVar(&cfg.UsernameFile, "username-file", cfg.UsernameFile, "Stored username file path (env: PINDROP_USERNAME_FILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newPinCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
