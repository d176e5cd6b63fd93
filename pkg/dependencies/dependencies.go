// Package dependencies provides a centralized dependency container for the IM application.
// This package follows Go idioms for dependency injection by grouping related dependencies
// together and providing a fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/lerenn/issue-manager/pkg/config"
	"github.com/lerenn/issue-manager/pkg/forge"
	"github.com/lerenn/issue-manager/pkg/fs"
	"github.com/lerenn/issue-manager/pkg/git"
	"github.com/lerenn/issue-manager/pkg/logger"
	"github.com/lerenn/issue-manager/pkg/prompt"
	"github.com/lerenn/issue-manager/pkg/template"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing       = errors.New("fs dependency is required but not set")
	ErrGitMissing      = errors.New("git dependency is required but not set")
	ErrConfigMissing   = errors.New("config dependency is required but not set")
	ErrLoggerMissing   = errors.New("logger dependency is required but not set")
	ErrPromptMissing   = errors.New("prompt dependency is required but not set")
	ErrForgeMissing    = errors.New("forge dependency is required but not set")
	ErrRendererMissing = errors.New("renderer dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
// This follows the Go idiom of grouping related data together.
type Dependencies struct {
	FS       fs.FS
	Git      git.Git
	Config   config.Manager
	Logger   logger.Logger
	Prompt   prompt.Prompter
	Forge    forge.Forge
	Renderer template.Renderer
}

// New creates a new Dependencies instance with sensible defaults.
// This follows Go's convention of New* functions for constructors.
func New() *Dependencies {
	return &Dependencies{
		FS:       fs.NewFS(),
		Git:      git.NewGit(),
		Logger:   logger.NewNoopLogger(),
		Prompt:   prompt.NewPrompt(),
		Renderer: template.NewRenderer(),
		// Note: Config and Forge are intentionally left nil as they require
		// specific configuration and are set via With* methods
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithForge sets the forge and returns the instance for chaining.
func (d *Dependencies) WithForge(f forge.Forge) *Dependencies {
	d.Forge = f
	return d
}

// WithRenderer sets the template renderer and returns the instance for chaining.
func (d *Dependencies) WithRenderer(r template.Renderer) *Dependencies {
	d.Renderer = r
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.Forge, ErrForgeMissing},
		{d.Renderer, ErrRendererMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
