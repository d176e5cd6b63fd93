// Package auth provides oauth2 token sources for forge authentication.
package auth

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"golang.org/x/oauth2"
)

// StaticTokenSource returns a token source serving a fixed access token,
// e.g. a classic personal access token or an Actions-provided token.
func StaticTokenSource(token string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
}

// ParsePrivateKey parses a PEM encoded RSA private key in PKCS#1 or PKCS#8
// form. GitHub App keys are issued as PKCS#1; converted keys are accepted too.
func ParsePrivateKey(pemBytes []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, ErrPrivateKeyDecode
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPrivateKeyParse, err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrPrivateKeyNotRSA
	}

	return key, nil
}
