package jetstream_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/mocks"
	"github.com/feral-file/launchpad/internal/providers/jetstream"
)

type fixture struct {
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	js     *mocks.MockJetStream
	json   *mocks.MockJSON
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	return &fixture{
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
		json:   mocks.NewMockJSON(ctrl),
	}
}

func testConfig() jetstream.Config {
	return jetstream.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "LAUNCHPAD_EVENTS",
		MaxReconnects:  10,
		ReconnectWait:  2 * time.Second,
		ConnectionName: "launchpad-test",
	}
}

func TestSubjects(t *testing.T) {
	assert.Equal(t, "launchpad.startups.viewed", jetstream.EngagementSubject(domain.EngagementViews))
	assert.Equal(t, "launchpad.startups.upvoted", jetstream.EngagementSubject(domain.EngagementUpvotes))
	assert.Equal(t, "launchpad.startups.visited", jetstream.EngagementSubject(domain.EngagementWebsiteVisits))
	assert.Equal(t, "launchpad.leads.deck", jetstream.LeadSubject(domain.AssetDeck))
	assert.Equal(t, "launchpad.leads.demo", jetstream.LeadSubject(domain.AssetDemo))
}

func TestNewPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("connection failure", func(t *testing.T) {
		f := newFixture(t)
		f.natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(nil, nil, errors.New("refused"))

		_, err := jetstream.NewPublisher(ctx, testConfig(), f.natsJS, f.json)
		assert.Error(t, err)
	})

	t.Run("ensures the stream", func(t *testing.T) {
		f := newFixture(t)
		cfg := testConfig()
		cfg.EnsureStream = true

		f.natsJS.EXPECT().Connect(cfg.URL, gomock.Any()).Return(f.conn, f.js, nil)
		f.js.EXPECT().CreateOrUpdateStream(ctx, natsjs.StreamConfig{
			Name:     "LAUNCHPAD_EVENTS",
			Subjects: []string{"launchpad.>"},
		}).Return(nil)
		f.conn.EXPECT().Close()

		pub, err := jetstream.NewPublisher(ctx, cfg, f.natsJS, f.json)
		require.NoError(t, err)
		pub.Close()
	})

	t.Run("stream failure closes the connection", func(t *testing.T) {
		f := newFixture(t)
		cfg := testConfig()
		cfg.EnsureStream = true

		f.natsJS.EXPECT().Connect(cfg.URL, gomock.Any()).Return(f.conn, f.js, nil)
		f.js.EXPECT().CreateOrUpdateStream(ctx, gomock.Any()).Return(errors.New("no jetstream"))
		f.conn.EXPECT().Close()

		_, err := jetstream.NewPublisher(ctx, cfg, f.natsJS, f.json)
		assert.Error(t, err)
	})
}

func TestPublishEngagement(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(f.conn, f.js, nil)

	pub, err := jetstream.NewPublisher(ctx, testConfig(), f.natsJS, f.json)
	require.NoError(t, err)

	event := &domain.EngagementEvent{
		EventID:   "evt-1",
		Kind:      domain.EngagementUpvotes,
		StartupID: "s-1",
		Count:     2,
		Total:     7,
	}
	payload := []byte(`{"event_id":"evt-1"}`)

	f.json.EXPECT().Marshal(event).Return(payload, nil)
	f.js.EXPECT().Publish(ctx, "launchpad.startups.upvoted", payload, gomock.Any()).Return(&natsjs.PubAck{Stream: "LAUNCHPAD_EVENTS"}, nil)
	require.NoError(t, pub.PublishEngagement(ctx, event))

	f.json.EXPECT().Marshal(event).Return(payload, nil)
	f.js.EXPECT().Publish(ctx, gomock.Any(), payload, gomock.Any()).Return(nil, errors.New("timeout"))
	assert.Error(t, pub.PublishEngagement(ctx, event))

	f.json.EXPECT().Marshal(event).Return(nil, errors.New("bad value"))
	assert.Error(t, pub.PublishEngagement(ctx, event))
}

func TestPublishLeadCaptured(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(f.conn, f.js, nil)

	pub, err := jetstream.NewPublisher(ctx, testConfig(), f.natsJS, f.json)
	require.NoError(t, err)

	event := &domain.LeadCapturedEvent{EventID: "evt-2", Asset: domain.AssetDemo, StartupID: "s-1", Added: 1}

	f.json.EXPECT().Marshal(event).Return([]byte("{}"), nil)
	f.js.EXPECT().Publish(ctx, "launchpad.leads.demo", []byte("{}"), gomock.Any()).Return(&natsjs.PubAck{}, nil)
	assert.NoError(t, pub.PublishLeadCaptured(ctx, event))
}
