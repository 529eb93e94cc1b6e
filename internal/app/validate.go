package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/repocard/repocard/internal/card"
	"github.com/repocard/repocard/internal/config"
	"github.com/repocard/repocard/internal/output"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate an existing card file",
	Long: `Validate loads a card file and checks its required fields and
enumeration values. The default file is repocard.yaml in the current
directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := config.DefaultOutputFile
	if len(args) == 1 {
		path = args[0]
	}

	c, err := card.Load(path)
	if err != nil {
		return err
	}

	if flagJSON {
		return renderJSON(c)
	}

	fmt.Println(output.StyleSuccess.Render(" " + path + " is a valid card"))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Project:"), output.StyleValue.Render(c.ProjectName))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Type:"), output.StyleValue.Render(c.ProjectType))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Status:"), output.StyleValue.Render(c.Status))
	fmt.Printf(" %s %s\n", output.StyleLabel.Render("Schema:"), output.StyleValue.Render(c.Metadata.Version))
	return nil
}
