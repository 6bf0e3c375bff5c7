package middleware

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/launchpad/internal/api/shared/errors"
	"github.com/feral-file/launchpad/internal/identity"
	"github.com/feral-file/launchpad/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_TYPE_KEY    contextKey = "auth_type"
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"

	AUTH_TYPE_JWT    = "jwt"
	AUTH_TYPE_APIKEY = "apikey"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	Verifier identity.Verifier
	APIKeys  []string
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success     bool
	AuthType    string // "jwt" or "apikey"
	Claims      *identity.Claims
	AuthSubject string
	Error       error
}

// Authenticate validates the Authorization header and returns the authentication result
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	result := AuthResult{
		Success: false,
	}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	// Parse the authorization header
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	authType := strings.ToLower(parts[0])
	credentials := strings.TrimSpace(parts[1])

	switch authType {
	case "bearer":
		if cfg.Verifier == nil {
			result.Error = identity.ErrVerifierNotConfigured
			return result
		}
		claims, err := cfg.Verifier.Verify(credentials)
		if err != nil {
			result.Error = err
			return result
		}
		result.Success = true
		result.AuthType = AUTH_TYPE_JWT
		result.Claims = claims
		result.AuthSubject = claims.Subject

	case "apikey":
		if err := validateAPIKey(credentials, cfg.APIKeys); err != nil {
			result.Error = err
			return result
		}
		result.Success = true
		result.AuthType = AUTH_TYPE_APIKEY

	default:
		result.Error = fmt.Errorf("unsupported authorization type: %s", authType)
		return result
	}

	return result
}

// Auth returns a gin middleware that requires either a bearer token or an API key
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := Authenticate(c.GetHeader("Authorization"), cfg)
		if !result.Success {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiErr)
			return
		}

		setAuth(c, result)
		c.Next()
	}
}

// OptionalAuth authenticates the caller when an Authorization header is present.
// Requests without one continue anonymously; invalid credentials are still rejected.
func OptionalAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		result := Authenticate(header, cfg)
		if !result.Success {
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiErr)
			return
		}

		setAuth(c, result)
		c.Next()
	}
}

// RequireAPIKey rejects requests that were not authenticated with an API key.
// It must run after Auth.
func RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if AuthType(c) != AUTH_TYPE_APIKEY {
			c.AbortWithStatusJSON(http.StatusForbidden, apierrors.NewForbiddenError("API key required"))
			return
		}
		c.Next()
	}
}

// RequireSubject rejects requests that carry no user token.
// It must run after Auth.
func RequireSubject() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Subject(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("User token required"))
			return
		}
		c.Next()
	}
}

func setAuth(c *gin.Context, result AuthResult) {
	c.Set(string(AUTH_TYPE_KEY), result.AuthType)
	if result.Claims != nil {
		c.Set(string(JWT_CLAIMS_KEY), result.Claims)
	}
	if result.AuthSubject != "" {
		c.Set(string(AUTH_SUBJECT_KEY), result.AuthSubject)
		c.Request = c.Request.WithContext(logger.WithSubject(c.Request.Context(), result.AuthSubject))
	}

	logger.DebugCtx(c.Request.Context(), "Authentication successful",
		zap.String("auth_type", result.AuthType),
		zap.String("path", c.Request.URL.Path),
	)
}

// AuthType returns how the request was authenticated, empty for anonymous requests
func AuthType(c *gin.Context) string {
	return c.GetString(string(AUTH_TYPE_KEY))
}

// Subject returns the identity subject of the request, empty unless a bearer token was verified
func Subject(c *gin.Context) string {
	return c.GetString(string(AUTH_SUBJECT_KEY))
}

// validateAPIKey compares the key against every configured key in constant time
func validateAPIKey(apiKey string, validKeys []string) error {
	configured := false
	for _, key := range validKeys {
		if key == "" {
			continue
		}
		configured = true
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
			return nil
		}
	}

	if !configured {
		return errors.New("no API keys configured")
	}
	return errors.New("invalid API key")
}
