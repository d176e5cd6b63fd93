package main

import (
	"github.com/lerenn/issue-manager/cmd/im/internal/cli"
	"github.com/lerenn/issue-manager/pkg/dependencies"
	issuemanager "github.com/lerenn/issue-manager/pkg/issue-manager"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var (
		repository     string
		tokenEnv       string
		force          bool
		reset          bool
		nonInteractive bool
	)

	initCmd := &cobra.Command{
		Use:   "init [--repository <owner/name>] [--token-env <var>] [--reset] [--force]",
		Short: "Initialize IM configuration",
		Long: `Initialize IM configuration with interactive prompts or direct flag values.

Flags:
  --repository       Set the default repository directly (skips interactive prompt)
  --token-env        Set the token environment variable directly (skips interactive prompt)
  --reset            Reset existing IM configuration and start fresh
  --force            Skip interactive confirmation when using --reset flag
  --non-interactive  Never prompt; keep current values where no flag is given`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			im, err := issuemanager.NewIssueManager(issuemanager.NewIssueManagerParams{
				Dependencies: dependencies.New().
					WithConfig(cli.NewConfigManager()).
					WithLogger(cli.NewLogger()),
			})
			if err != nil {
				return err
			}

			return im.Init(issuemanager.InitOpts{
				Repository:     repository,
				TokenEnv:       tokenEnv,
				Force:          force,
				Reset:          reset,
				NonInteractive: nonInteractive,
			})
		},
	}

	initCmd.Flags().StringVar(&repository, "repository", "",
		"Set the default repository directly (skips interactive prompt)")
	initCmd.Flags().StringVar(&tokenEnv, "token-env", "",
		"Set the token environment variable directly (skips interactive prompt)")
	initCmd.Flags().BoolVar(&force, "force", false, "Skip interactive confirmation when using --reset flag")
	initCmd.Flags().BoolVar(&reset, "reset", false, "Reset existing IM configuration and start fresh")
	initCmd.Flags().BoolVar(&nonInteractive, "non-interactive", false,
		"Never prompt; keep current values where no flag is given")

	return initCmd
}
