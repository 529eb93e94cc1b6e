package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repocard/repocard/internal/config"
	"github.com/repocard/repocard/internal/output"
	"github.com/repocard/repocard/internal/reason"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List reasoning engines and their readiness",
	Long: `Engines lists every reasoning backend and whether its credential is
configured. Readiness reflects configuration only; an unreachable server or
a revoked key still shows as ready here and degrades at generation time.`,
	RunE: runEngines,
}

func init() {
	rootCmd.AddCommand(enginesCmd)
}

func runEngines(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	availability := reason.ListAvailability(reason.Credentials{
		OpenAIKey:    cfg.OpenAIKey,
		AnthropicKey: cfg.AnthropicKey,
		OllamaHost:   cfg.OllamaHost,
	})

	if flagJSON {
		return renderJSON(availability)
	}

	fmt.Println(output.Section("Reasoning Engines"))
	fmt.Println()

	tbl := output.NewTable("Engine", "Ready", "Credential", "Notes")
	for _, a := range availability {
		ready := output.StyleError.Render("no")
		if a.Ready {
			ready = output.StyleSuccess.Render("yes")
		}
		tbl.AddRow(a.Name, ready, a.Credential, a.Note)
	}
	tbl.Print()

	fmt.Println()
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Configured engine:"),
		output.StyleValue.Render(cfg.Engine))
	fmt.Println()
	return nil
}
