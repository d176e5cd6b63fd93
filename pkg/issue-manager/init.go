package issuemanager

import (
	"fmt"

	"github.com/lerenn/issue-manager/pkg/config"
)

// InitOpts contains optional parameters for Init.
type InitOpts struct {
	Repository     string
	TokenEnv       string
	Force          bool
	Reset          bool
	NonInteractive bool
}

// Init initializes IM configuration.
func (im *realIssueManager) Init(opts InitOpts) error {
	im.VerbosePrint("Starting IM initialization")

	// Handle reset flag
	if opts.Reset {
		if err := im.handleReset(opts.Force); err != nil {
			return err
		}
	}

	base := im.baseConfig(opts.Reset)

	repository, err := im.getRepository(opts, base.Repository)
	if err != nil {
		return err
	}

	tokenEnv, err := im.getTokenEnv(opts, base.ResolvedTokenEnv())
	if err != nil {
		return err
	}

	newConfig := base
	newConfig.Repository = repository
	newConfig.TokenEnv = tokenEnv

	if err := newConfig.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := im.deps.Config.SaveConfig(newConfig); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	im.printInitializationSuccess(newConfig)
	return nil
}

// baseConfig returns the configuration the prompts start from. A reset
// discards the existing file and starts from the defaults.
func (im *realIssueManager) baseConfig(reset bool) config.Config {
	if reset {
		return im.deps.Config.DefaultConfig()
	}

	cfg, err := im.deps.Config.GetConfigWithFallback()
	if err != nil {
		return im.deps.Config.DefaultConfig()
	}
	return cfg
}

// handleReset asks for confirmation before discarding the existing configuration.
func (im *realIssueManager) handleReset(force bool) error {
	if !force {
		confirmed, err := im.deps.Prompt.PromptForConfirmation(
			"This will reset your IM configuration. Are you sure?", false)
		if err != nil {
			return fmt.Errorf("failed to get user confirmation: %w", err)
		}
		if !confirmed {
			return ErrInitCancelled
		}
	}

	im.VerbosePrint("Resetting IM configuration")
	return nil
}

// getRepository gets the repository from flag, prompt, or existing configuration.
func (im *realIssueManager) getRepository(opts InitOpts, defaultRepository string) (string, error) {
	if opts.Repository != "" {
		return opts.Repository, nil
	}

	if opts.NonInteractive {
		// Keep the current value instead of prompting
		return defaultRepository, nil
	}

	// Interactive prompt
	return im.deps.Prompt.PromptForRepository(defaultRepository)
}

// getTokenEnv gets the token environment variable from flag, prompt, or existing configuration.
func (im *realIssueManager) getTokenEnv(opts InitOpts, defaultTokenEnv string) (string, error) {
	if opts.TokenEnv != "" {
		return opts.TokenEnv, nil
	}

	if opts.NonInteractive {
		// Keep the current value instead of prompting
		return defaultTokenEnv, nil
	}

	// Interactive prompt
	return im.deps.Prompt.PromptForTokenEnv(defaultTokenEnv)
}

// printInitializationSuccess prints the success message and configuration details.
func (im *realIssueManager) printInitializationSuccess(cfg config.Config) {
	im.VerbosePrint("IM initialization completed successfully")
	fmt.Printf("IM initialized successfully!\n")
	if cfg.Repository != "" {
		fmt.Printf("Repository: %s\n", cfg.Repository)
	}
	fmt.Printf("Token environment variable: %s\n", cfg.ResolvedTokenEnv())
	fmt.Printf("Configuration: %s\n", im.deps.Config.GetConfigPath())
}
