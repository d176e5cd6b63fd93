package main

import (
	"fmt"

	"github.com/lerenn/issue-manager/cmd/im/internal/cli"
	"github.com/lerenn/issue-manager/pkg/dependencies"
	issuemanager "github.com/lerenn/issue-manager/pkg/issue-manager"
	"github.com/spf13/cobra"
)

func createValidateCmd() *cobra.Command {
	flags := &inputFlags{}

	validateCmd := &cobra.Command{
		Use:   "validate [--file <run.yaml>] [--title <title>] [flags]",
		Short: "Validate run inputs without calling the forge",
		Long: `Validate run inputs without calling the forge.

Examples:
  im validate --file .github/standup.yaml
  im validate --title "Weekly standup" --pinned --label standup`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := flags.buildInputs(cmd)
			if err != nil {
				return err
			}

			im, err := issuemanager.NewIssueManager(issuemanager.NewIssueManagerParams{
				Dependencies: dependencies.New().
					WithConfig(cli.NewConfigManager()).
					WithLogger(cli.NewLogger()),
			})
			if err != nil {
				return err
			}

			if err := im.ValidateInputs(in); err != nil {
				return err
			}

			fmt.Println("OK")
			return nil
		},
	}

	flags.register(validateCmd)

	return validateCmd
}
