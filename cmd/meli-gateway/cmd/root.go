// Package cmd implements the CLI commands for meli-gateway.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "meli-gateway",
	Short: "Backend-for-frontend gateway for MercadoLibre sellers",
	Long:  "A multi-tenant gateway that fronts the MercadoLibre API for seller tools: category discovery, listing publication, image uploads, and size-chart management, with per-shop credentials and transparent token refresh.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root exposes the command tree for documentation generators.
func Root() *cobra.Command {
	return rootCmd
}
