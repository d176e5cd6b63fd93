package main

import (
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/lerenn/issue-manager/cmd/im/internal/cli"
	"github.com/lerenn/issue-manager/pkg/inputs"
	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/cobra"
)

func createActionCmd() *cobra.Command {
	actionCmd := &cobra.Command{
		Use:   "action",
		Short: "Run one series run as a GitHub Action",
		Long: `Run one series run with inputs read from the GitHub Actions environment.

Inputs come from the INPUT_* variables of the workflow step, the repository
from GITHUB_REPOSITORY and the token from the token input (falling back to
the configured environment variable). The number of the new issue is
published as the issue-number output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			action := githubactions.New()

			im, err := cli.NewIssueManager(cli.NewIssueManagerParams{
				Token:  action.GetInput("token"),
				Logger: cli.NewActionLogger(action),
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			result, err := im.Run(ctx, inputs.FromAction(action))
			if err != nil {
				return err
			}

			action.SetOutput("issue-number", strconv.Itoa(result.IssueNumber))
			return nil
		},
	}

	return actionCmd
}
