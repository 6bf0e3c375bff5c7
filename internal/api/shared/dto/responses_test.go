package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/store/schema"
)

func testStartup() *schema.Startup {
	return &schema.Startup{
		ID:               "startup-1",
		Name:             "Acme",
		DeckURL:          "https://files/deck.pdf",
		DeckStorageID:    "file:deck.pdf",
		ShowDeck:         true,
		LockDeck:         true,
		DeckPasswordHash: "$2a$10$hash",
		DemoURL:          "https://stream/demo.m3u8",
		DemoStorageID:    "cf-stream:demo",
		ShowDemo:         true,
		DeckHistory:      []domain.Lead{{ViewerTitle: "Partner"}},
		Metrics:          []domain.Metric{{ID: domain.DUMMY_METRIC_ID}},
	}
}

func TestNewStartupResponse_Public(t *testing.T) {
	resp := NewStartupResponse(testStartup(), false)

	// locked deck withholds its url
	assert.Empty(t, resp.Deck.URL)
	assert.True(t, resp.Deck.Locked)
	assert.True(t, resp.Deck.HasPassword)
	assert.Empty(t, resp.Deck.StorageID)

	// shown and unlocked demo exposes its url
	assert.Equal(t, "https://stream/demo.m3u8", resp.Demo.URL)

	assert.Nil(t, resp.DeckHistory)
	assert.Nil(t, resp.Metrics)
}

func TestNewStartupResponse_HiddenAsset(t *testing.T) {
	s := testStartup()
	s.ShowDemo = false

	resp := NewStartupResponse(s, false)
	assert.Empty(t, resp.Demo.URL)
	assert.False(t, resp.Demo.Shown)
}

func TestNewStartupResponse_Owner(t *testing.T) {
	resp := NewStartupResponse(testStartup(), true)

	assert.Equal(t, "https://files/deck.pdf", resp.Deck.URL)
	assert.Equal(t, "file:deck.pdf", resp.Deck.StorageID)
	assert.Len(t, resp.DeckHistory, 1)
	assert.Len(t, resp.Metrics, 1)
}

func TestCreateStartupRequest_Validate(t *testing.T) {
	published := domain.StartupStatusPublished
	invalid := domain.StartupStatus("archived")

	tests := []struct {
		name    string
		req     CreateStartupRequest
		wantErr bool
	}{
		{"valid", CreateStartupRequest{Name: "Acme", RoutingName: "acme", Status: &published}, false},
		{"missing name", CreateStartupRequest{RoutingName: "acme"}, true},
		{"missing routing name", CreateStartupRequest{Name: "Acme"}, true},
		{"invalid status", CreateStartupRequest{Name: "Acme", RoutingName: "acme", Status: &invalid}, true},
		{"shared storage id", CreateStartupRequest{Name: "Acme", RoutingName: "acme", LogoStorageID: "cf-image:1", ImageStorageID: "cf-image:1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateStartupRequest_ToSchema(t *testing.T) {
	req := CreateStartupRequest{Name: "Acme", RoutingName: "acme", DeckURL: "d", ShowDeck: true}
	s := req.ToSchema("id-1", "owner-1")

	assert.Equal(t, "id-1", s.ID)
	assert.Equal(t, "owner-1", s.ListingOwner)
	assert.Equal(t, domain.StartupStatusDraft, s.Status)
	assert.False(t, s.Approved)
	assert.True(t, s.ShowDeck)
	assert.Equal(t, int64(0), s.Views)
}

func TestAddMetricsRequest_Validate(t *testing.T) {
	assert.Error(t, (&AddMetricsRequest{}).Validate())
	assert.Error(t, (&AddMetricsRequest{Metrics: []MetricInput{{ID: domain.DUMMY_METRIC_ID}}}).Validate())
	assert.NoError(t, (&AddMetricsRequest{Metrics: []MetricInput{{Period: "2024-Q1"}}}).Validate())
	assert.Error(t, (&AddMetricsRequest{Metrics: []MetricInput{{ID: "m1", Period: "2024-Q1"}, {ID: "m1", Period: "2024-Q2"}}}).Validate())
	assert.NoError(t, (&AddMetricsRequest{Metrics: []MetricInput{{Period: "2024-Q1"}, {Period: "2024-Q2"}}}).Validate())
}

func TestListStartupsRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ListStartupsRequest{}).Validate())
	assert.NoError(t, (&ListStartupsRequest{Sort: "upvotes"}).Validate())
	assert.Error(t, (&ListStartupsRequest{Sort: "oldest"}).Validate())
}
