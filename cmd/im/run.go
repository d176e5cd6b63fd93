package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lerenn/issue-manager/cmd/im/internal/cli"
	"github.com/spf13/cobra"
)

func createRunCmd() *cobra.Command {
	flags := &inputFlags{}
	var repoOverride string

	runCmd := &cobra.Command{
		Use:   "run [--file <run.yaml>] [--title <title>] [flags]",
		Short: "Create the next issue of a series",
		Long: `Create the next issue of a recurring series and update the previous
occurrence according to the inputs. On success the number of the new issue
is printed on stdout.

Examples:
  im run --title "Weekly standup" --label standup --close-previous
  im run --file .github/standup.yaml
  im run --file .github/standup.yaml --repo acme/rotations`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := flags.buildInputs(cmd)
			if err != nil {
				return err
			}

			im, err := cli.NewIssueManager(cli.NewIssueManagerParams{
				RepositoryOverride: repoOverride,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			result, err := im.Run(ctx, in)
			if err != nil {
				return err
			}

			fmt.Println(result.IssueNumber)
			return nil
		},
	}

	flags.register(runCmd)
	runCmd.Flags().StringVar(&repoOverride, "repo", "",
		"Repository (owner/name), overriding configuration and detection")

	return runCmd
}
