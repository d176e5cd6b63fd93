// Package config provides configuration management functionality for the issue-manager application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultTokenEnv is the environment variable consulted for the access token
// when the configuration does not name another one.
const DefaultTokenEnv = "GITHUB_TOKEN"

// DefaultForge is the forge used when the configuration does not name one.
const DefaultForge = "github"

// Config represents the application configuration.
type Config struct {
	// Forge is the name of the forge hosting the issue series.
	Forge string `yaml:"forge,omitempty"`

	// Repository is the default repository (owner/name). It may be left
	// empty and provided per run or detected from the working directory.
	Repository string `yaml:"repository,omitempty"`

	// APIBaseURL overrides the REST endpoint, for self-hosted forges.
	APIBaseURL string `yaml:"api_base_url,omitempty"`

	// GraphQLURL overrides the GraphQL endpoint, for self-hosted forges.
	GraphQLURL string `yaml:"graphql_url,omitempty"`

	// TokenEnv is the environment variable holding the access token.
	TokenEnv string `yaml:"token_env,omitempty"`

	// App holds GitHub App credentials. When set, App authentication is
	// used instead of the token.
	App AppConfig `yaml:"app,omitempty"`
}

// AppConfig holds GitHub App credentials.
type AppConfig struct {
	ID             int64  `yaml:"id,omitempty"`
	InstallationID int64  `yaml:"installation_id,omitempty"`
	PrivateKeyPath string `yaml:"private_key_path,omitempty"`
}

// IsConfigured reports whether App credentials are present.
func (a AppConfig) IsConfigured() bool {
	return a.ID != 0 || a.InstallationID != 0 || a.PrivateKeyPath != ""
}

// isComplete reports whether every App credential is present.
func (a AppConfig) isComplete() bool {
	return a.ID != 0 && a.InstallationID != 0 && a.PrivateKeyPath != ""
}

// ResolvedTokenEnv returns TokenEnv, defaulting to DefaultTokenEnv.
func (c *Config) ResolvedTokenEnv() string {
	if c.TokenEnv == "" {
		return DefaultTokenEnv
	}
	return c.TokenEnv
}

// ResolvedForge returns Forge, defaulting to DefaultForge.
func (c *Config) ResolvedForge() string {
	if c.Forge == "" {
		return DefaultForge
	}
	return c.Forge
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Repository != "" {
		parts := strings.Split(c.Repository, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return fmt.Errorf("%w: %s", ErrInvalidRepositoryFormat, c.Repository)
		}
	}

	if c.App.IsConfigured() && !c.App.isComplete() {
		return ErrAppConfigIncomplete
	}

	return nil
}

// expandTildes expands ~ prefixes in configured paths.
func (c *Config) expandTildes() error {
	if !strings.HasPrefix(c.App.PrivateKeyPath, "~") {
		return nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to determine home directory: %w", err)
	}

	c.App.PrivateKeyPath = filepath.Join(homeDir, strings.TrimPrefix(c.App.PrivateKeyPath, "~"))

	return nil
}
