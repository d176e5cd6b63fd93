//go:build unit

package prompt

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealPrompt_PromptForRepository(t *testing.T) {
	tests := []struct {
		name              string
		defaultRepository string
		input             string
		expected          string
	}{
		{
			name:              "empty input uses default",
			defaultRepository: "acme/rotations",
			input:             "\n",
			expected:          "acme/rotations",
		},
		{
			name:              "whitespace input uses default",
			defaultRepository: "acme/rotations",
			input:             "   \n",
			expected:          "acme/rotations",
		},
		{
			name:              "custom repository",
			defaultRepository: "acme/rotations",
			input:             "acme/standups\n",
			expected:          "acme/standups",
		},
		{
			name:              "custom repository with whitespace",
			defaultRepository: "acme/rotations",
			input:             "  acme/standups  \n",
			expected:          "acme/standups",
		},
		{
			name:              "empty input without default stays empty",
			defaultRepository: "",
			input:             "\n",
			expected:          "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a prompt with a string reader
			p := &realPrompt{
				reader: bufio.NewReader(strings.NewReader(tt.input)),
			}

			result, err := p.PromptForRepository(tt.defaultRepository)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRealPrompt_PromptForTokenEnv(t *testing.T) {
	tests := []struct {
		name            string
		defaultTokenEnv string
		input           string
		expected        string
	}{
		{
			name:            "empty input uses default",
			defaultTokenEnv: "GH_TOKEN",
			input:           "\n",
			expected:        "GH_TOKEN",
		},
		{
			name:            "custom variable",
			defaultTokenEnv: "GH_TOKEN",
			input:           "FORGE_TOKEN\n",
			expected:        "FORGE_TOKEN",
		},
		{
			name:            "empty default uses hardcoded default",
			defaultTokenEnv: "",
			input:           "\n",
			expected:        "GITHUB_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a prompt with a string reader
			p := &realPrompt{
				reader: bufio.NewReader(strings.NewReader(tt.input)),
			}

			result, err := p.PromptForTokenEnv(tt.defaultTokenEnv)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRealPrompt_PromptForConfirmation(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		defaultYes  bool
		input       string
		expected    bool
		expectError bool
	}{
		{
			name:       "yes input",
			message:    "Continue?",
			defaultYes: false,
			input:      "y\n",
			expected:   true,
		},
		{
			name:       "YES input",
			message:    "Continue?",
			defaultYes: false,
			input:      "YES\n",
			expected:   true,
		},
		{
			name:       "no input",
			message:    "Continue?",
			defaultYes: true,
			input:      "n\n",
			expected:   false,
		},
		{
			name:       "NO input",
			message:    "Continue?",
			defaultYes: true,
			input:      "NO\n",
			expected:   false,
		},
		{
			name:       "empty input with default yes",
			message:    "Continue?",
			defaultYes: true,
			input:      "\n",
			expected:   true,
		},
		{
			name:       "empty input with default no",
			message:    "Continue?",
			defaultYes: false,
			input:      "\n",
			expected:   false,
		},
		{
			name:        "invalid input",
			message:     "Continue?",
			defaultYes:  false,
			input:       "maybe\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a prompt with a string reader
			p := &realPrompt{
				reader: bufio.NewReader(strings.NewReader(tt.input)),
			}

			result, err := p.PromptForConfirmation(tt.message, tt.defaultYes)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidConfirmationInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
