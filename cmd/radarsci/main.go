// Package main provides the entry point for the RadarSci command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "radarsci",
	Short: "RadarSci — a radar for scientific literature",
	Long:  "RadarSci scans curated journals on Europe PMC, scores recent papers against your keywords, and renders the strongest matches as a console report or a standalone HTML page.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
