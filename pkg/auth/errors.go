package auth

import "errors"

// Auth-specific error types.
var (
	ErrAppCredentialsMissing = errors.New("app id and installation id are required")
	ErrPrivateKeyDecode      = errors.New("failed to decode private key PEM block")
	ErrPrivateKeyParse       = errors.New("failed to parse private key")
	ErrPrivateKeyNotRSA      = errors.New("private key is not an RSA key")
	ErrJWTSign               = errors.New("failed to sign app JWT")
	ErrTokenExchange         = errors.New("failed to exchange app JWT for installation token")
)
