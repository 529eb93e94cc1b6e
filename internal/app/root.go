// Package app contains the Cobra command tree for repocard.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/repocard/repocard/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagConfig  string
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "repocard",
	Short: "Analyze a repository and generate a structured project card",
	Long: `repocard walks a repository, extracts technical signals from its files,
optionally enriches them with GitHub metadata, and asks a reasoning engine
to describe the project. The result is a validated YAML project card.

Point it at a local checkout or a GitHub URL:
  repocard init .
  repocard remote https://github.com/owner/repo`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagNoColor {
			output.SetNoColor(true)
		} else {
			output.AutoDetect()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("repocard", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  init       Analyze a local repository and write its card")
		fmt.Println("  analyze    Analyze a repository and print the results")
		fmt.Println("  remote     Analyze a GitHub repository by URL")
		fmt.Println("  engines    List reasoning engines and their readiness")
		fmt.Println("  ratelimit  Show the GitHub API rate-limit window")
		fmt.Println("  validate   Validate an existing card file")
		fmt.Println("  history    Show recent generation runs")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/repocard/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// warnf prints a styled warning to stderr.
func warnf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, output.StyleWarning.Render("warning: "+fmt.Sprintf(format, args...)))
}

// verbosef prints only when --verbose is set.
func verbosef(format string, args ...any) {
	if flagVerbose {
		fmt.Fprintln(os.Stderr, output.StyleMuted.Render(fmt.Sprintf(format, args...)))
	}
}
