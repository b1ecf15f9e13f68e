// Package main is the entry point for the guild bank API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gbank-api",
	Short: "Guild Bank API Server",
	Long:  `gbank-api ingests BankItems SavedVariables dumps and serves the aggregated guild bank over HTTP.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(parseCmd)
}
