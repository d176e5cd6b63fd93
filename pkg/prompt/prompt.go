package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

//go:generate mockgen -source=prompt.go -destination=mockprompt.gen.go -package=prompt

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForRepository prompts the user for the default repository in
	// owner/name form. An empty answer keeps the default.
	PromptForRepository(defaultRepository string) (string, error)

	// PromptForTokenEnv prompts the user for the environment variable
	// holding the API token.
	PromptForTokenEnv(defaultTokenEnv string) (string, error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompt instance.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// PromptForRepository prompts the user for the default repository.
func (p *realPrompt) PromptForRepository(defaultRepository string) (string, error) {
	if defaultRepository == "" {
		fmt.Print("Default repository in owner/name form " +
			"(leave empty to detect it from the working directory): ")
	} else {
		fmt.Printf("Default repository in owner/name form [default: %s]: ", defaultRepository)
	}

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(input)

	// Use default if input is empty
	if input == "" {
		return defaultRepository, nil
	}

	return input, nil
}

// PromptForTokenEnv prompts the user for the environment variable holding the API token.
func (p *realPrompt) PromptForTokenEnv(defaultTokenEnv string) (string, error) {
	if defaultTokenEnv == "" {
		defaultTokenEnv = "GITHUB_TOKEN"
	}
	fmt.Printf("Environment variable holding the API token "+
		"(ex: GITHUB_TOKEN, GH_TOKEN) [default: %s]: ", defaultTokenEnv)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(input)

	// Use default if input is empty
	if input == "" {
		return defaultTokenEnv, nil
	}

	return input, nil
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Printf("%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(strings.ToLower(input))

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	// Check for yes/no responses
	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}
