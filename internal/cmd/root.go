package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "STEM kit storefront API server",
	Long: `Storefront serves the STEM educational kit catalog over a REST API:
product listing, search and filtering, categories, and the cart's
device-storage persistence.

Run it as a server, or use the CLI commands to inspect the seed catalog
and check the environment.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
