// Package identity verifies identity-provider tokens and manages provider sessions.
package identity

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrVerifierNotConfigured is returned when no public key was supplied
	ErrVerifierNotConfigured = errors.New("JWT public key not configured")
	// ErrMissingSubject is returned for a token without a subject
	ErrMissingSubject = errors.New("token has no subject")
)

// Claims are the token claims the service relies on. Subject is the
// identity-provider user id (the users.clerk_id column).
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid,omitempty"`
}

// Verifier validates bearer tokens
//
//go:generate mockgen -source=verifier.go -destination=../mocks/verifier.go -package=mocks -mock_names=Verifier=MockVerifier
type Verifier interface {
	// Verify checks the signature and time claims of a token and returns its claims
	Verify(token string) (*Claims, error)
}

// VerifierConfig holds token validation settings
type VerifierConfig struct {
	// PublicKeyPEM is the RSA public key in PEM format (PKIX or PKCS1)
	PublicKeyPEM string
	// Issuer, when set, must match the iss claim
	Issuer string
	// Leeway tolerates clock skew on exp and nbf
	Leeway time.Duration
}

type rsaVerifier struct {
	key    *rsa.PublicKey
	parser *jwt.Parser
}

// NewVerifier parses the public key once and returns an RS256 verifier
func NewVerifier(cfg VerifierConfig) (Verifier, error) {
	if cfg.PublicKeyPEM == "" {
		return nil, ErrVerifierNotConfigured
	}

	key, err := ParseRSAPublicKey(cfg.PublicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg(), jwt.SigningMethodRS384.Alg(), jwt.SigningMethodRS512.Alg()}),
		jwt.WithLeeway(cfg.Leeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	return &rsaVerifier{key: key, parser: jwt.NewParser(opts...)}, nil
}

// Verify validates a token and returns its claims
func (v *rsaVerifier) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}

// ParseRSAPublicKey parses an RSA public key from PEM format
func ParseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
