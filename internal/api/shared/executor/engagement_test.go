package executor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/feral-file/launchpad/internal/api/shared/errors"
	"github.com/feral-file/launchpad/internal/domain"
)

func TestRecordEngagement_AppendsAndPublishes(t *testing.T) {
	f := newFixture(t)

	startup := newStartup()
	earlier := fixedNow.Add(-time.Hour)
	startup.UpvotesHistory = []domain.Event{{Timestamp: earlier, UserID: "u0"}}
	startup.Upvotes = 1
	f.expectUpdate(startup)

	f.publisher.EXPECT().PublishEngagement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.EngagementEvent) error {
			assert.Equal(t, domain.EngagementUpvotes, event.Kind)
			assert.Equal(t, startup.ID, event.StartupID)
			assert.Equal(t, 2, event.Count)
			assert.Equal(t, int64(3), event.Total)
			assert.NotEmpty(t, event.EventID)
			return nil
		})

	events := []domain.Event{{UserID: "u1"}, {Timestamp: earlier, IPAddress: "10.0.0.1"}}
	resp, err := f.exec.RecordEngagement(context.Background(), startup.ID, domain.EngagementUpvotes, events)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Recorded)
	assert.Equal(t, int64(3), resp.Total)

	// existing entries stay first, new ones keep their order
	require.Len(t, startup.UpvotesHistory, 3)
	assert.Equal(t, "u0", startup.UpvotesHistory[0].UserID)
	assert.Equal(t, "u1", startup.UpvotesHistory[1].UserID)
	assert.Equal(t, fixedNow, startup.UpvotesHistory[1].Timestamp)
	assert.Equal(t, earlier, startup.UpvotesHistory[2].Timestamp)
	assert.Empty(t, startup.ViewsHistory)
}

func TestRecordEngagement_EmptyBatchIsNoop(t *testing.T) {
	f := newFixture(t)

	startup := newStartup()
	startup.Views = 4
	f.expectUpdate(startup)
	f.publisher.EXPECT().PublishEngagement(gomock.Any(), gomock.Any()).Times(0)

	resp, err := f.exec.RecordEngagement(context.Background(), startup.ID, domain.EngagementViews, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Recorded)
	assert.Equal(t, int64(4), resp.Total)
}

func TestRecordEngagement_PublishFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)

	startup := newStartup()
	f.expectUpdate(startup)
	f.publisher.EXPECT().PublishEngagement(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	resp, err := f.exec.RecordEngagement(context.Background(), startup.ID, domain.EngagementWebsiteVisits, []domain.Event{{}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
}

func TestRecordEngagement_UnknownStartup(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().UpdateStartup(gomock.Any(), "missing", gomock.Any()).Return(nil, domain.ErrStartupNotFound)

	_, err := f.exec.RecordEngagement(context.Background(), "missing", domain.EngagementViews, []domain.Event{{}})
	requireAPIError(t, err, apierrors.ErrCodeNotFound)
}

func TestRecordEngagement_InvalidKind(t *testing.T) {
	f := newFixture(t)

	_, err := f.exec.RecordEngagement(context.Background(), "startup-1", domain.EngagementKind("likes"), []domain.Event{{}})
	requireAPIError(t, err, apierrors.ErrCodeBadRequest)
}
