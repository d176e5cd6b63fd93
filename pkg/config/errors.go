package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrInvalidRepositoryFormat = errors.New("repository must use the owner/name format")
	ErrAppConfigIncomplete     = errors.New("app configuration requires id, installation_id and private_key_path")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("issue-manager configuration not found. Run 'im init' to initialize")
)
