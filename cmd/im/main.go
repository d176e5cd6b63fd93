// Package main provides the command-line interface for the IM application.
package main

import (
	"log"

	"github.com/lerenn/issue-manager/cmd/im/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "im",
		Short: "Issue Manager - Recurring issue automation",
		Long: `A CLI tool automating recurring issue series on GitHub-style trackers: ` +
			`each run creates the next issue of a series and closes, links, pins and rotates ` +
			`the previous occurrence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(createRunCmd(), createValidateCmd(), createActionCmd(), createInitCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
