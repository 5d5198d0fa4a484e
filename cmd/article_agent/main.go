// Package main provides the entry point for the Article Stylist CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "article_agent",
	Short: "Article Stylist content generation pipeline",
	Long:  "Article Stylist turns raw travel-news source material into Turkish articles that honor strict per-format structural rules, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
