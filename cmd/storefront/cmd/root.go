// Package cmd implements the CLI commands for the storefront server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Catalog API for a MercadoLibre-backed instrument store",
	Long: "An API server that imports MercadoLibre listings into a local catalog, " +
		"serves filtered product pages, and keeps the marketplace OAuth tokens fresh.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
