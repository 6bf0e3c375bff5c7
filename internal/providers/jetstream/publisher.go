package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/launchpad/internal/adapter"
	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/logger"
	"github.com/feral-file/launchpad/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	// EnsureStream creates or updates the stream to capture every service subject
	EnsureStream bool
}

type publisher struct {
	nc   adapter.NatsConn
	js   adapter.JetStream
	json adapter.JSON
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	if cfg.EnsureStream {
		err := js.CreateOrUpdateStream(ctx, natsjs.StreamConfig{
			Name:     cfg.StreamName,
			Subjects: []string{domain.EVENT_SUBJECT_PREFIX + ".>"},
		})
		if err != nil {
			nc.Close()
			return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.StreamName, err)
		}
	}

	return &publisher{
		nc:   nc,
		js:   js,
		json: jsonAdapter,
	}, nil
}

// PublishEngagement publishes an engagement batch to NATS JetStream
func (p *publisher) PublishEngagement(ctx context.Context, event *domain.EngagementEvent) error {
	return p.publish(ctx, EngagementSubject(event.Kind), event.EventID, event)
}

// PublishLeadCaptured publishes a lead capture to NATS JetStream
func (p *publisher) PublishLeadCaptured(ctx context.Context, event *domain.LeadCapturedEvent) error {
	return p.publish(ctx, LeadSubject(event.Asset), event.EventID, event)
}

func (p *publisher) publish(ctx context.Context, subject string, msgID string, event interface{}) error {
	logger.DebugCtx(ctx, "Publishing NATS event", zap.String("subject", subject), zap.Any("event", event))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// The message id lets the stream drop duplicates of a retried publish
	_, err = p.js.Publish(ctx, subject, data, natsjs.WithMsgID(msgID))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// EngagementSubject returns the subject of an engagement kind.
// Format: launchpad.startups.{viewed|upvoted|visited}
func EngagementSubject(kind domain.EngagementKind) string {
	return fmt.Sprintf("%s.startups.%s", domain.EVENT_SUBJECT_PREFIX, kind.Subject())
}

// LeadSubject returns the subject of a lead capture.
// Format: launchpad.leads.{deck|demo}
func LeadSubject(asset domain.Asset) string {
	return fmt.Sprintf("%s.leads.%s", domain.EVENT_SUBJECT_PREFIX, asset)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
