// Package main provides the resume_nest command: the HTTP API server and offline resume tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_nest",
	Short: "Resume builder API server and tools",
	Long:  "Resume Nest renders resume data into four fixed A4 layouts, exports them to PDF, and stores them per account via a REST API.",
	// Errors are reported once by main.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
