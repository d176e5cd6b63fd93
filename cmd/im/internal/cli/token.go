package cli

import (
	"fmt"
	"os"

	"github.com/lerenn/issue-manager/pkg/auth"
	"github.com/lerenn/issue-manager/pkg/config"
	"github.com/lerenn/issue-manager/pkg/fs"
	"github.com/lerenn/issue-manager/pkg/logger"
	"golang.org/x/oauth2"
)

// NewTokenSource builds the token source authenticating forge calls. An
// explicit token wins over App credentials, which win over the token
// environment variable. A nil source (no credentials at all) leaves forge
// requests unauthenticated, which is enough for public repositories.
func NewTokenSource(
	cfg config.Config, explicitToken string, filesystem fs.FS, log logger.Logger,
) (oauth2.TokenSource, error) {
	if explicitToken != "" {
		return auth.StaticTokenSource(explicitToken), nil
	}

	if cfg.App.IsConfigured() {
		pem, err := filesystem.ReadFile(cfg.App.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read app private key: %w", err)
		}

		return auth.NewAppTokenSource(auth.NewAppTokenSourceParams{
			AppID:          cfg.App.ID,
			InstallationID: cfg.App.InstallationID,
			PrivateKeyPEM:  pem,
			BaseURL:        cfg.APIBaseURL,
		})
	}

	if token := os.Getenv(cfg.ResolvedTokenEnv()); token != "" {
		return auth.StaticTokenSource(token), nil
	}

	log.Warnf("%s is not set, forge requests will be unauthenticated", cfg.ResolvedTokenEnv())
	return nil, nil
}
