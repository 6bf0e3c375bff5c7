package identity

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/launchpad/internal/adapter"
	"github.com/feral-file/launchpad/internal/logger"
)

// SessionRevoker ends every active identity-provider session of a user
//
//go:generate mockgen -source=revoker.go -destination=../mocks/revoker.go -package=mocks -mock_names=SessionRevoker=MockSessionRevoker
type SessionRevoker interface {
	// RevokeSessions revokes the active sessions of the identity subject
	RevokeSessions(ctx context.Context, subject string) error
}

// RevokerConfig holds the identity-provider backend API settings
type RevokerConfig struct {
	// APIURL is the backend API base, e.g. https://api.clerk.com/v1
	APIURL string
	// SecretKey authenticates the service against the backend API
	SecretKey string
}

type session struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type httpRevoker struct {
	client  adapter.HTTPClient
	baseURL string
	headers map[string]string
}

// NewSessionRevoker creates a revoker calling the identity-provider backend API
func NewSessionRevoker(client adapter.HTTPClient, cfg RevokerConfig) SessionRevoker {
	return &httpRevoker{
		client:  client,
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		headers: map[string]string{
			"Authorization": "Bearer " + cfg.SecretKey,
			"Accept":        "application/json",
		},
	}
}

// RevokeSessions lists the active sessions of subject and revokes each one
func (r *httpRevoker) RevokeSessions(ctx context.Context, subject string) error {
	query := url.Values{}
	query.Set("user_id", subject)
	query.Set("status", "active")

	var sessions []session
	if err := r.client.Get(ctx, r.baseURL+"/sessions?"+query.Encode(), r.headers, &sessions); err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	var errs []error
	for _, s := range sessions {
		endpoint := fmt.Sprintf("%s/sessions/%s/revoke", r.baseURL, url.PathEscape(s.ID))
		if err := r.client.Post(ctx, endpoint, r.headers, nil, nil); err != nil {
			errs = append(errs, fmt.Errorf("failed to revoke session %s: %w", s.ID, err))
		}
	}
	return errors.Join(errs...)
}

type retryingRevoker struct {
	next     SessionRevoker
	attempts int
}

// WithRetry retries a revoker up to attempts times in total with no delay
// between attempts
func WithRetry(next SessionRevoker, attempts int) SessionRevoker {
	if attempts < 1 {
		attempts = 1
	}
	return &retryingRevoker{next: next, attempts: attempts}
}

func (r *retryingRevoker) RevokeSessions(ctx context.Context, subject string) error {
	attempt := 0
	operation := func() error {
		attempt++
		err := r.next.RevokeSessions(ctx, subject)
		if err != nil {
			logger.WarnCtx(ctx, "Session revocation attempt failed",
				zap.Int("attempt", attempt),
				zap.Int("maxAttempts", r.attempts),
				zap.Error(err),
			)
		}
		return err
	}

	b := backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(r.attempts-1)) //nolint:gosec,G115
	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("session revocation failed after %d attempts: %w", attempt, err)
	}
	return nil
}

type noopRevoker struct{}

// NewNoopRevoker returns a revoker that does nothing, for deployments without
// backend API credentials
func NewNoopRevoker() SessionRevoker {
	return noopRevoker{}
}

func (noopRevoker) RevokeSessions(context.Context, string) error {
	return nil
}
