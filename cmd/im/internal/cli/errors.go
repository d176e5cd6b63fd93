package cli

import "errors"

// Error definitions for the cli package.
var (
	// ErrNoRepository indicates no repository was given, configured or
	// detectable from the working directory.
	ErrNoRepository = errors.New("no repository configured and none could be detected")
)
