package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repocard/repocard/internal/config"
)

var analyzeFlagEngine string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path-or-url]",
	Short: "Analyze a repository and print the results",
	Long: `Analyze runs the full pipeline against a local path or GitHub URL
and prints the resulting card without writing anything to disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFlagEngine, "engine", "", "Reasoning engine: auto, openai, anthropic, ollama, rules, mock")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source := "."
	if len(args) == 1 {
		source = args[0]
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	a, err := analyzeSource(cmd.Context(), cfg, source, analyzeFlagEngine)
	if err != nil {
		return err
	}

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
	return nil
}
