package app

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/repocard/repocard/internal/config"
	"github.com/repocard/repocard/internal/github"
	"github.com/repocard/repocard/internal/output"
)

var ratelimitCmd = &cobra.Command{
	Use:   "ratelimit",
	Short: "Show the GitHub API rate-limit window",
	RunE:  runRatelimit,
}

func init() {
	rootCmd.AddCommand(ratelimitCmd)
}

func runRatelimit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	client := github.NewClient(cfg.GitHubToken)
	limit, err := client.GetRateLimit(cmd.Context())
	if err != nil {
		return err
	}

	if flagJSON {
		return renderJSON(limit)
	}

	fmt.Println(output.Section("GitHub Rate Limit"))
	fmt.Println()

	authenticated := "no (60 requests/hour)"
	if cfg.GitHubToken != "" {
		authenticated = "yes (5000 requests/hour)"
	}

	kv := func(label, value string) {
		fmt.Printf(" %s %s\n", output.StyleLabel.Render(label+":"), output.StyleValue.Render(value))
	}
	kv("Authenticated", authenticated)
	kv("Limit", fmt.Sprintf("%d", limit.Limit))
	kv("Remaining", fmt.Sprintf("%d", limit.Remaining))
	kv("Resets", limit.Reset.Local().Format(time.RFC1123))
	fmt.Println()
	return nil
}
