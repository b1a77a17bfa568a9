// Package main provides the entry point for the job recommender CLI and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "job_recommender",
	Short: "Job Recommendation System",
	Long: `Job Recommendation System matches a candidate profile against a catalog of job postings
and returns the five best matches with a 0-20 score.

The catalog is read from a job_postings.json file, SQLite or PostgreSQL (CATALOG_STORE),
optionally fronted by a Redis cache (REDIS_URL). Settings come from --config, then the
environment, then built-in defaults.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
