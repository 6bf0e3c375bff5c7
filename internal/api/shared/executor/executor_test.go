package executor_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/feral-file/launchpad/internal/api/shared/dto"
	apierrors "github.com/feral-file/launchpad/internal/api/shared/errors"
	"github.com/feral-file/launchpad/internal/api/shared/executor"
	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/mocks"
	"github.com/feral-file/launchpad/internal/store"
	"github.com/feral-file/launchpad/internal/store/schema"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store     *mocks.MockStore
	blobs     *mocks.MockBlobStore
	publisher *mocks.MockPublisher
	revoker   *mocks.MockSessionRevoker
	exec      executor.Executor
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(fixedNow).AnyTimes()

	f := &fixture{
		store:     mocks.NewMockStore(ctrl),
		blobs:     mocks.NewMockBlobStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		revoker:   mocks.NewMockSessionRevoker(ctrl),
	}
	f.exec = executor.NewExecutor(executor.Deps{
		Store:              f.store,
		Blobs:              f.blobs,
		Publisher:          f.publisher,
		Revoker:            f.revoker,
		Clock:              clock,
		ReleaseConcurrency: 2,
	})
	return f
}

var (
	ownerCaller = executor.Caller{Subject: "clerk-owner"}
	otherCaller = executor.Caller{Subject: "clerk-other"}
	owner       = &schema.User{ID: "user-owner", ClerkID: "clerk-owner", Occupation: domain.OccupationFounder}
	other       = &schema.User{ID: "user-other", ClerkID: "clerk-other", Occupation: domain.OccupationInvestor}
)

func init() {
	domain.PasswordHashCost = bcrypt.MinCost
}

func (f *fixture) expectUser(u *schema.User) {
	f.store.EXPECT().GetUserByClerkID(gomock.Any(), u.ClerkID).Return(u, nil).AnyTimes()
}

// expectUpdate runs the mutator against startup the way the store does
func (f *fixture) expectUpdate(startup *schema.Startup) {
	f.store.EXPECT().UpdateStartup(gomock.Any(), startup.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, mutate store.StartupMutator) (*schema.Startup, error) {
			if err := mutate(startup); err != nil {
				if errors.Is(err, store.ErrNoop) {
					return startup, nil
				}
				return nil, err
			}
			return startup, nil
		})
}

func newStartup() *schema.Startup {
	return &schema.Startup{
		ID:                   "startup-1",
		RoutingName:          "acme",
		ListingOwner:         owner.ID,
		Name:                 "Acme",
		Status:               domain.StartupStatusPublished,
		Approved:             true,
		ViewsHistory:         []domain.Event{},
		UpvotesHistory:       []domain.Event{},
		WebsiteVisitsHistory: []domain.Event{},
		DeckHistory:          []domain.Lead{},
		DemoHistory:          []domain.Lead{},
		Metrics:              []domain.Metric{domain.NewDummyMetric(fixedNow)},
	}
}

func requireAPIError(t *testing.T, err error, code apierrors.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	var apiErr *apierrors.APIError
	require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
	assert.Equal(t, code, apiErr.Code)
}

func strPtr(s string) *string { return &s }

func TestCreateStartup(t *testing.T) {
	f := newFixture(t)
	f.expectUser(owner)

	var created *schema.Startup
	f.store.EXPECT().CreateStartup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *schema.Startup) error {
			created = s
			return nil
		})

	resp, err := f.exec.CreateStartup(context.Background(), ownerCaller, &dto.CreateStartupRequest{Name: "Acme", RoutingName: "acme"})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, owner.ID, created.ListingOwner)
	assert.False(t, created.Approved)
	assert.Equal(t, domain.StartupStatusDraft, created.Status)
	assert.Zero(t, created.Views+created.Upvotes+created.WebsiteVisits)
	require.Len(t, created.Metrics, 1)
	assert.True(t, created.Metrics[0].IsDummy())
	assert.NotNil(t, created.ViewsHistory)
	assert.NotNil(t, created.DeckHistory)

	assert.Equal(t, created.ID, resp.ID)
	assert.Len(t, resp.Metrics, 1)
}

func TestCreateStartup_ResolvesFileURLs(t *testing.T) {
	f := newFixture(t)
	f.expectUser(owner)
	f.blobs.EXPECT().ResolveURL(gomock.Any(), "file:deck.pdf").Return("https://files/deck.pdf", nil)

	var created *schema.Startup
	f.store.EXPECT().CreateStartup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *schema.Startup) error {
			created = s
			return nil
		})

	_, err := f.exec.CreateStartup(context.Background(), ownerCaller, &dto.CreateStartupRequest{
		Name:          "Acme",
		RoutingName:   "acme",
		DeckURL:       "https://elsewhere/deck.pdf",
		DeckStorageID: "file:deck.pdf",
		WebsiteURL:    "https://acme.io",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "https://files/deck.pdf", created.DeckURL)
}

func TestCreateStartup_StorageIDHeldByAnotherStartup(t *testing.T) {
	f := newFixture(t)
	f.expectUser(owner)
	f.blobs.EXPECT().ResolveURL(gomock.Any(), "file:deck.pdf").Return("https://files/deck.pdf", nil)
	f.store.EXPECT().CreateStartup(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: held by startup victim", domain.ErrStorageRefInUse))

	_, err := f.exec.CreateStartup(context.Background(), ownerCaller, &dto.CreateStartupRequest{
		Name:          "Acme",
		RoutingName:   "acme",
		DeckStorageID: "file:deck.pdf",
	})
	requireAPIError(t, err, apierrors.ErrCodeConflict)
}

func TestCreateStartup_UnregisteredCaller(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().GetUserByClerkID(gomock.Any(), "clerk-ghost").Return(nil, nil)

	_, err := f.exec.CreateStartup(context.Background(), executor.Caller{Subject: "clerk-ghost"}, &dto.CreateStartupRequest{Name: "Acme", RoutingName: "acme"})
	requireAPIError(t, err, apierrors.ErrCodeForbidden)
}

func TestCreateStartup_InvestorCannotList(t *testing.T) {
	f := newFixture(t)
	f.expectUser(other)

	_, err := f.exec.CreateStartup(context.Background(), otherCaller, &dto.CreateStartupRequest{Name: "Acme", RoutingName: "acme"})
	requireAPIError(t, err, apierrors.ErrCodeForbidden)
}

func TestGetStartup_Visibility(t *testing.T) {
	f := newFixture(t)
	f.expectUser(owner)
	f.expectUser(other)

	draft := newStartup()
	draft.Status = domain.StartupStatusDraft
	f.store.EXPECT().GetStartupByID(gomock.Any(), draft.ID).Return(draft, nil).Times(2)

	resp, err := f.exec.GetStartup(context.Background(), otherCaller, draft.ID)
	require.NoError(t, err)
	assert.Nil(t, resp)

	resp, err = f.exec.GetStartup(context.Background(), ownerCaller, draft.ID)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotNil(t, resp.Metrics)
}

func TestGetStartup_NotFound(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().GetStartupByID(gomock.Any(), "missing").Return(nil, nil)

	resp, err := f.exec.GetStartup(context.Background(), executor.Caller{}, "missing")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestListStartups_SearchAndSort(t *testing.T) {
	f := newFixture(t)

	a := newStartup()
	a.ID, a.Name, a.Upvotes = "a", "Solar Grid", 1
	b := newStartup()
	b.ID, b.Name, b.Tagline, b.Upvotes = "b", "Windy", "grid storage", 5
	c := newStartup()
	c.ID, c.Name, c.Upvotes = "c", "Unrelated", 9

	f.store.EXPECT().ListStartups(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter store.StartupFilter) ([]*schema.Startup, error) {
			require.NotNil(t, filter.Approved)
			assert.True(t, *filter.Approved)
			require.NotNil(t, filter.Status)
			assert.Equal(t, domain.StartupStatusPublished, *filter.Status)
			assert.Equal(t, "Energy", filter.Sector)
			return []*schema.Startup{a, b, c}, nil
		})

	resp, err := f.exec.ListStartups(context.Background(), dto.ListStartupsRequest{SearchTerm: "rid", Sector: "Energy", Sort: "upvotes"})
	require.NoError(t, err)
	require.Len(t, resp.Startups, 2)
	assert.Equal(t, "b", resp.Startups[0].ID)
	assert.Equal(t, "a", resp.Startups[1].ID)
	assert.Nil(t, resp.Startups[0].Metrics)
}

func TestListStartups_SearchIsCaseSensitive(t *testing.T) {
	f := newFixture(t)

	s := newStartup()
	s.Name = "Solar Grid"
	f.store.EXPECT().ListStartups(gomock.Any(), gomock.Any()).Return([]*schema.Startup{s}, nil)

	resp, err := f.exec.ListStartups(context.Background(), dto.ListStartupsRequest{SearchTerm: "solar"})
	require.NoError(t, err)
	assert.Empty(t, resp.Startups)
}

func TestListUserStartups_PublicView(t *testing.T) {
	f := newFixture(t)
	f.expectUser(other)

	f.store.EXPECT().ListStartups(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter store.StartupFilter) ([]*schema.Startup, error) {
			assert.Equal(t, owner.ID, filter.ListingOwner)
			assert.NotNil(t, filter.Approved)
			return []*schema.Startup{newStartup()}, nil
		})

	resp, err := f.exec.ListUserStartups(context.Background(), otherCaller, owner.ID)
	require.NoError(t, err)
	require.Len(t, resp.Startups, 1)
	assert.Nil(t, resp.Startups[0].Metrics)
}

func TestUpdateStartup_ReleasesReplacedFile(t *testing.T) {
	f := newFixture(t)
	f.expectUser(owner)

	startup := newStartup()
	startup.DeckURL, startup.DeckStorageID = "https://files/old.pdf", "file:old.pdf"
	f.expectUpdate(startup)
	f.blobs.EXPECT().ResolveURL(gomock.Any(), "file:new.pdf").Return("https://files/new.pdf", nil)
	f.blobs.EXPECT().Release(gomock.Any(), "file:old.pdf").Return(nil).Times(1)

	resp, err := f.exec.UpdateStartup(context.Background(), ownerCaller, startup.ID, &dto.UpdateStartupRequest{
		DeckURL:       strPtr("https://files/new.pdf"),
		DeckStorageID: strPtr("file:new.pdf"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://files/new.pdf", resp.Deck.URL)
	assert.Equal(t, "file:new.pdf", startup.DeckStorageID)
}

func TestUpdateStartup_SameURLReleasesNothing(t *testing.T) {
	f := newFixture(t)
	f.expectUser(owner)

	startup := newStartup()
	startup.DeckURL, startup.DeckStorageID = "https://files/deck.pdf", "file:deck.pdf"
	f.expectUpdate(startup)
	f.blobs.EXPECT().Release(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.exec.UpdateStartup(context.Background(), ownerCaller, startup.ID, &dto.UpdateStartupRequest{
		DeckURL: strPtr("https://files/deck.pdf"),
		Name:    strPtr("Acme Inc"),
	})
	require.NoError(t, err)
	assert.Equal(t, "file:deck.pdf", startup.DeckStorageID)
	assert.Equal(t, "Acme Inc", startup.Name)
}

func TestUpdateStartup_RejectsSharedStorageID(t *testing.T) {
	f := newFixture(t)
	f.expectUser(owner)

	startup := newStartup()
	startup.LogoURL, startup.LogoStorageID = "https://img/logo", "cf-image:logo"
	f.expectUpdate(startup)
	f.blobs.EXPECT().ResolveURL(gomock.Any(), "cf-image:logo").Return("https://img/logo", nil)

	_, err := f.exec.UpdateStartup(context.Background(), ownerCaller, startup.ID, &dto.UpdateStartupRequest{
		ImageURL:       strPtr("https://img/logo"),
		ImageStorageID: strPtr("cf-image:logo"),
	})
	requireAPIError(t, err, apierrors.ErrCodeValidationFailed)
}

func TestUpdateStartup_StorageIDOnlyPatch(t *testing.T) {
	f := newFixture(t)
	f.expectUser(owner)

	startup := newStartup()
	startup.DeckURL, startup.DeckStorageID = "https://files/deck.pdf", "file:old.pdf"
	f.expectUpdate(startup)
	f.blobs.EXPECT().ResolveURL(gomock.Any(), "file:new.pdf").Return("https://files/new.pdf", nil)
	f.blobs.EXPECT().Release(gomock.Any(), "file:old.pdf").Return(nil).Times(1)

	resp, err := f.exec.UpdateStartup(context.Background(), ownerCaller, startup.ID, &dto.UpdateStartupRequest{
		DeckStorageID: strPtr("file:new.pdf"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://files/new.pdf", resp.Deck.URL)
	assert.Equal(t, "file:new.pdf", startup.DeckStorageID)
}

func TestUpdateStartup_ClientURLIgnoredForStoredFile(t *testing.T) {
	f := newFixture(t)
	f.expectUser(owner)

	startup := newStartup()
	f.expectUpdate(startup)
	f.blobs.EXPECT().ResolveURL(gomock.Any(), "cf-image:logo").Return("https://img/logo", nil)

	resp, err := f.exec.UpdateStartup(context.Background(), ownerCaller, startup.ID, &dto.UpdateStartupRequest{
		LogoURL:       strPtr("https://elsewhere/logo.png"),
		LogoStorageID: strPtr("cf-image:logo"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://img/logo", resp.LogoURL)
}

func TestUpdateStartup_UnknownStorageID(t *testing.T) {
	f := newFixture(t)
	f.blobs.EXPECT().ResolveURL(gomock.Any(), "nope:x").Return("", domain.ErrUnknownStorageRef)
	f.store.EXPECT().UpdateStartup(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.exec.UpdateStartup(context.Background(), ownerCaller, "startup-1", &dto.UpdateStartupRequest{
		DeckStorageID: strPtr("nope:x"),
	})
	requireAPIError(t, err, apierrors.ErrCodeValidationFailed)
}

func TestUpdateStartup_StorageIDHeldByAnotherStartup(t *testing.T) {
	f := newFixture(t)
	f.expectUser(owner)

	startup := newStartup()
	startup.LogoURL, startup.LogoStorageID = "https://img/mine", "cf-image:mine"
	f.blobs.EXPECT().ResolveURL(gomock.Any(), "file:victim-deck.pdf").Return("https://files/victim-deck.pdf", nil)
	f.store.EXPECT().UpdateStartup(gomock.Any(), startup.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, mutate store.StartupMutator) (*schema.Startup, error) {
			if err := mutate(startup); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: held by startup victim", domain.ErrStorageRefInUse)
		})
	f.blobs.EXPECT().Release(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.exec.UpdateStartup(context.Background(), ownerCaller, startup.ID, &dto.UpdateStartupRequest{
		LogoStorageID: strPtr("file:victim-deck.pdf"),
	})
	requireAPIError(t, err, apierrors.ErrCodeConflict)
}

func TestUpdateStartup_NotOwner(t *testing.T) {
	f := newFixture(t)
	f.expectUser(other)

	startup := newStartup()
	f.expectUpdate(startup)

	_, err := f.exec.UpdateStartup(context.Background(), otherCaller, startup.ID, &dto.UpdateStartupRequest{Name: strPtr("Mine")})
	requireAPIError(t, err, apierrors.ErrCodeForbidden)
}

func TestUpdateStartup_NotFound(t *testing.T) {
	f := newFixture(t)
	f.expectUser(owner)
	f.store.EXPECT().UpdateStartup(gomock.Any(), "missing", gomock.Any()).Return(nil, domain.ErrStartupNotFound)

	_, err := f.exec.UpdateStartup(context.Background(), ownerCaller, "missing", &dto.UpdateStartupRequest{})
	requireAPIError(t, err, apierrors.ErrCodeNotFound)
}

func TestDeleteStartup_ReleasesEveryFile(t *testing.T) {
	f := newFixture(t)
	f.expectUser(owner)

	startup := newStartup()
	startup.LogoStorageID = "cf-image:logo"
	startup.ImageStorageID = "cf-image:image"
	startup.DeckStorageID = "file:deck.pdf"
	startup.DemoStorageID = "cf-stream:demo"

	f.store.EXPECT().GetStartupByID(gomock.Any(), startup.ID).Return(startup, nil)
	f.store.EXPECT().DeleteStartup(gomock.Any(), startup.ID).Return(startup, nil)

	// one failure does not stop the other releases
	f.blobs.EXPECT().Release(gomock.Any(), "cf-image:logo").Return(errors.New("boom"))
	f.blobs.EXPECT().Release(gomock.Any(), "cf-image:image").Return(nil)
	f.blobs.EXPECT().Release(gomock.Any(), "file:deck.pdf").Return(nil)
	f.blobs.EXPECT().Release(gomock.Any(), "cf-stream:demo").Return(nil)

	err := f.exec.DeleteStartup(context.Background(), ownerCaller, startup.ID)
	require.NoError(t, err)
}

func TestDeleteStartup_NotOwner(t *testing.T) {
	f := newFixture(t)
	f.expectUser(other)
	f.store.EXPECT().GetStartupByID(gomock.Any(), "startup-1").Return(newStartup(), nil)

	err := f.exec.DeleteStartup(context.Background(), otherCaller, "startup-1")
	requireAPIError(t, err, apierrors.ErrCodeForbidden)
}

func TestDeleteStartup_NotFound(t *testing.T) {
	f := newFixture(t)
	f.expectUser(owner)
	f.store.EXPECT().GetStartupByID(gomock.Any(), "missing").Return(nil, nil)

	err := f.exec.DeleteStartup(context.Background(), ownerCaller, "missing")
	requireAPIError(t, err, apierrors.ErrCodeNotFound)
}

func TestSetApproval(t *testing.T) {
	f := newFixture(t)

	startup := newStartup()
	startup.Approved = false
	f.expectUpdate(startup)

	resp, err := f.exec.SetApproval(context.Background(), startup.ID, true)
	require.NoError(t, err)
	assert.True(t, resp.Approved)
}

func TestReconcileCounters(t *testing.T) {
	f := newFixture(t)

	startup := newStartup()
	startup.ViewsHistory = []domain.Event{{Timestamp: fixedNow}, {Timestamp: fixedNow}}
	startup.Views = 5
	f.expectUpdate(startup)

	resp, err := f.exec.ReconcileCounters(context.Background(), startup.ID)
	require.NoError(t, err)
	assert.True(t, resp.Drifted)
	assert.Equal(t, int64(2), resp.Views)
}
