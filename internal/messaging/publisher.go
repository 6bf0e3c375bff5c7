package messaging

import (
	"context"

	"github.com/feral-file/launchpad/internal/domain"
)

// Publisher defines the interface for publishing service events to a message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEngagement publishes a recorded view, upvote or website visit batch
	PublishEngagement(ctx context.Context, event *domain.EngagementEvent) error
	// PublishLeadCaptured publishes newly stored deck or demo leads
	PublishLeadCaptured(ctx context.Context, event *domain.LeadCapturedEvent) error
	// Close closes the connection
	Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event.
// It is used when no broker is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishEngagement(context.Context, *domain.EngagementEvent) error {
	return nil
}

func (noopPublisher) PublishLeadCaptured(context.Context, *domain.LeadCapturedEvent) error {
	return nil
}

func (noopPublisher) Close() {}
