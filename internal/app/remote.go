package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repocard/repocard/internal/card"
	"github.com/repocard/repocard/internal/config"
	"github.com/repocard/repocard/internal/github"
	"github.com/repocard/repocard/internal/output"
	"github.com/repocard/repocard/internal/store"
)

var (
	remoteFlagOutput string
	remoteFlagEngine string
)

var remoteCmd = &cobra.Command{
	Use:   "remote <github-url>",
	Short: "Analyze a GitHub repository by URL",
	Long: `Remote clones the repository behind the URL into a temporary
directory, analyzes it, enriches the signals with GitHub API metadata, and
writes the card into the current directory. The clone is removed afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemote,
}

func init() {
	remoteCmd.Flags().StringVarP(&remoteFlagOutput, "output", "o", "", "Card file path (default: ./repocard.yaml)")
	remoteCmd.Flags().StringVar(&remoteFlagEngine, "engine", "", "Reasoning engine: auto, openai, anthropic, ollama, rules, mock")

	rootCmd.AddCommand(remoteCmd)
}

func runRemote(cmd *cobra.Command, args []string) error {
	url := args[0]
	if _, _, err := github.ParseOwnerRepo(url); err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	a, err := analyzeSource(cmd.Context(), cfg, url, remoteFlagEngine)
	if err != nil {
		return err
	}

	path := outputPath(a.Snapshot, cfg, remoteFlagOutput)
	if err := card.Save(a.Card, path); err != nil {
		recordRun(a, url, store.StatusFailed, path)
		return err
	}
	recordRun(a, url, store.StatusCompleted, path)

	if flagJSON {
		out := struct {
			Card    any `json:"card"`
			Metrics any `json:"metrics,omitempty"`
		}{Card: a.Card}
		if a.Metrics != nil {
			out.Metrics = a.Metrics
		}
		return renderJSON(out)
	}

	renderCard(a.Card)
	if a.Metrics != nil {
		renderMetrics(a.Metrics)
	}
	fmt.Println(output.StyleSuccess.Render(" Card written to " + path))
	return nil
}
