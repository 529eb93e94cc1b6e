package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repocard/repocard/internal/card"
	"github.com/repocard/repocard/internal/config"
	"github.com/repocard/repocard/internal/output"
	"github.com/repocard/repocard/internal/store"
)

var (
	initFlagOutput string
	initFlagEngine string
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Analyze a repository and write its project card",
	Long: `Init analyzes the repository at the given path (default: current
directory), or a GitHub URL, and writes the resulting card as YAML. Local
repositories get the card next to their files; remote repositories get it
in the working directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initFlagOutput, "output", "o", "", "Card file path (default: <repo>/repocard.yaml)")
	initCmd.Flags().StringVar(&initFlagEngine, "engine", "", "Reasoning engine: auto, openai, anthropic, ollama, rules, mock")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	source := "."
	if len(args) == 1 {
		source = args[0]
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	a, err := analyzeSource(cmd.Context(), cfg, source, initFlagEngine)
	if err != nil {
		return err
	}

	path := outputPath(a.Snapshot, cfg, initFlagOutput)
	if err := card.Save(a.Card, path); err != nil {
		recordRun(a, source, store.StatusFailed, path)
		return err
	}
	recordRun(a, source, store.StatusCompleted, path)

	if flagJSON {
		return renderJSON(a.Card)
	}
	renderCard(a.Card)
	if a.Metrics != nil {
		renderMetrics(a.Metrics)
	}
	fmt.Println(output.StyleSuccess.Render(" Card written to " + path))
	return nil
}
