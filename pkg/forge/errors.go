package forge

import "errors"

// Forge-specific errors
var (
	ErrUnsupportedForge  = errors.New("unsupported forge")
	ErrInvalidRepository = errors.New("invalid repository reference")
	ErrInvalidBaseURL    = errors.New("invalid forge API base URL")
	ErrNotFound          = errors.New("resource not found on forge")
	ErrRateLimited       = errors.New("rate limited by forge API")
	ErrUnauthorized      = errors.New("unauthorized access to forge API")
	ErrGraphQL           = errors.New("forge GraphQL request failed")
)
