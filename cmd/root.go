package main

import (
	"go-login-api/app"

	"github.com/spf13/cobra"
)

var runApp = app.Run

// NewRootCmd builds the loginsrv command. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		port       string
	)

	serve := func(cmd *cobra.Command, args []string) error {
		return runApp(cmd.Context(), configPath, port)
	}

	rootCmd := &cobra.Command{
		Use:          "loginsrv",
		Short:        "Form login HTTP service",
		SilenceUsage: true,
		RunE:         serve,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".", "Directory containing config.yml")
	rootCmd.PersistentFlags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE:  serve,
	})

	return rootCmd
}
