package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/repocard/repocard/internal/config"
	"github.com/repocard/repocard/internal/output"
	"github.com/repocard/repocard/internal/store"
)

var historyFlagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent generation runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyFlagLimit, "limit", "n", 20, "Maximum number of runs to show")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer func() { _ = db.Close() }()

	runs, err := db.ListRecentRuns(historyFlagLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if flagJSON {
		return renderJSON(runs)
	}

	if len(runs) == 0 {
		fmt.Println(output.StyleMuted.Render(" No runs recorded yet."))
		return nil
	}

	fmt.Println(output.Section("Generation History"))
	fmt.Println()

	tbl := output.NewTable("When", "Project", "Type", "Engine", "Status", "Source")
	for _, r := range runs {
		status := output.StyleSuccess.Render(r.Status)
		if r.Status != store.StatusCompleted {
			status = output.StyleError.Render(r.Status)
		}
		tbl.AddRow(
			r.CreatedAt.Local().Format(time.DateTime),
			r.ProjectName,
			r.ProjectType,
			r.Engine,
			status,
			r.Source,
		)
	}
	tbl.Print()
	fmt.Println()
	return nil
}
