package auth

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

const (
	// maxJWTDuration is the longest App JWT lifetime GitHub accepts.
	maxJWTDuration = 10 * time.Minute

	// jwtClockDrift backdates the issued-at claim to absorb clock skew
	// between this host and the forge.
	jwtClockDrift = 60 * time.Second

	// TokenRefreshBuffer renews installation tokens this long before expiry.
	TokenRefreshBuffer = 5 * time.Minute

	// exchangeTimeout bounds the installation token exchange call.
	exchangeTimeout = 30 * time.Second
)

// NewAppTokenSourceParams holds parameters for NewAppTokenSource.
type NewAppTokenSourceParams struct {
	AppID          int64
	InstallationID int64
	PrivateKeyPEM  []byte

	// BaseURL overrides the REST endpoint used for the token exchange,
	// for self-hosted forges.
	BaseURL string

	// HTTPClient overrides the HTTP client used for the token exchange.
	HTTPClient *http.Client

	// NowFunc overrides the clock, for tests.
	NowFunc func() time.Time
}

// appTokenSource mints installation tokens from GitHub App credentials.
type appTokenSource struct {
	appID          int64
	installationID int64
	privateKey     *rsa.PrivateKey
	baseURL        string
	httpClient     *http.Client
	now            func() time.Time
}

// NewAppTokenSource creates an oauth2 token source implementing the GitHub
// App flow: a short-lived RS256 JWT signed with the App private key is
// exchanged for an installation token. The source is wrapped so tokens are
// reused until shortly before their expiry.
func NewAppTokenSource(params NewAppTokenSourceParams) (oauth2.TokenSource, error) {
	if params.AppID == 0 || params.InstallationID == 0 {
		return nil, ErrAppCredentialsMissing
	}

	key, err := ParsePrivateKey(params.PrivateKeyPEM)
	if err != nil {
		return nil, err
	}

	src := &appTokenSource{
		appID:          params.AppID,
		installationID: params.InstallationID,
		privateKey:     key,
		baseURL:        params.BaseURL,
		httpClient:     params.HTTPClient,
		now:            params.NowFunc,
	}
	if src.now == nil {
		src.now = time.Now
	}

	return oauth2.ReuseTokenSourceWithExpiry(nil, src, TokenRefreshBuffer), nil
}

// Token mints a fresh installation token.
func (s *appTokenSource) Token() (*oauth2.Token, error) {
	signed, err := s.signJWT()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), exchangeTimeout)
	defer cancel()

	client := github.NewClient(s.httpClient).WithAuthToken(signed)
	if s.baseURL != "" {
		client, err = client.WithEnterpriseURLs(s.baseURL, s.baseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTokenExchange, err)
		}
	}

	token, _, err := client.Apps.CreateInstallationToken(ctx, s.installationID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}

	return &oauth2.Token{
		AccessToken: token.GetToken(),
		Expiry:      token.GetExpiresAt().Time,
	}, nil
}

// signJWT creates the App JWT. The issued-at claim sits in the past and the
// expiry stays within the ceiling GitHub enforces, drift included.
func (s *appTokenSource) signJWT() (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    strconv.FormatInt(s.appID, 10),
		IssuedAt:  jwt.NewNumericDate(now.Add(-jwtClockDrift)),
		ExpiresAt: jwt.NewNumericDate(now.Add(maxJWTDuration - jwtClockDrift)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrJWTSign, err)
	}

	return signed, nil
}
