// Package main provides the entry point for the ATS engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_engine",
	Short: "Resume parsing and ATS scoring engine",
	Long:  "ats_engine extracts structured data (contact, skills, experience, education) from resume files and computes an ATS quality score, deterministically or via an optional AI-assisted scorer with deterministic fallback.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
