package store

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestUser creates a user with a unique identity subject
func buildTestUser() *schema.User {
	id := uuid.NewString()
	return &schema.User{
		ID:         id,
		ClerkID:    "user_" + id,
		Email:      id + "@example.com",
		FirstName:  "Ada",
		Occupation: domain.OccupationFounder,

		EmailNotifications: true,
	}
}

// buildTestStartup creates an approved, published startup owned by owner
func buildTestStartup(owner string, name string, createdAt time.Time) *schema.Startup {
	return &schema.Startup{
		ID:           uuid.NewString(),
		RoutingName:  name,
		ListingOwner: owner,
		Name:         name,
		Tagline:      name + " tagline",
		Sector:       "Fintech",
		Category:     "SaaS",
		Industry:     "Banking",
		Status:       domain.StartupStatusPublished,
		Approved:     true,
		Metrics:      []domain.Metric{domain.NewDummyMetric(createdAt)},
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}

func mustCreateUser(t *testing.T, store Store) *schema.User {
	user := buildTestUser()
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

// =============================================================================
// Test: Startups
// =============================================================================

func testCreateAndGetStartup(t *testing.T, store Store) {
	ctx := context.Background()
	owner := mustCreateUser(t, store)

	t.Run("round trips jsonb columns", func(t *testing.T) {
		ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		startup := buildTestStartup(owner.ID, "acme", ts)
		startup.ViewsHistory = []domain.Event{{Timestamp: ts, UserID: "u1"}}
		startup.Views = 1
		email := "a@b.co"
		startup.DeckHistory = []domain.Lead{{EmailAddress: &email}}

		require.NoError(t, store.CreateStartup(ctx, startup))

		got, err := store.GetStartupByID(ctx, startup.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "acme", got.Name)
		assert.Equal(t, int64(1), got.Views)
		require.Len(t, got.ViewsHistory, 1)
		assert.Equal(t, "u1", got.ViewsHistory[0].UserID)
		assert.True(t, ts.Equal(got.ViewsHistory[0].Timestamp))
		require.Len(t, got.DeckHistory, 1)
		assert.Equal(t, email, *got.DeckHistory[0].EmailAddress)
		require.Len(t, got.Metrics, 1)
		assert.True(t, got.Metrics[0].IsDummy())
	})

	t.Run("missing startup returns nil", func(t *testing.T) {
		got, err := store.GetStartupByID(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("routing name resolves to newest listing", func(t *testing.T) {
		older := buildTestStartup(owner.ID, "dup-slug", time.Now().Add(-time.Hour))
		newer := buildTestStartup(owner.ID, "dup-slug", time.Now())
		require.NoError(t, store.CreateStartup(ctx, older))
		require.NoError(t, store.CreateStartup(ctx, newer))

		got, err := store.GetStartupByRoutingName(ctx, "dup-slug")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, newer.ID, got.ID)

		got, err = store.GetStartupByRoutingName(ctx, "no-such-slug")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testListStartups(t *testing.T, store Store) {
	ctx := context.Background()
	owner := mustCreateUser(t, store)
	other := mustCreateUser(t, store)
	base := time.Now().Add(-time.Hour)

	first := buildTestStartup(owner.ID, "first", base)
	second := buildTestStartup(owner.ID, "second", base.Add(time.Minute))
	second.Sector = "Health"
	draft := buildTestStartup(owner.ID, "draft", base.Add(2*time.Minute))
	draft.Status = domain.StartupStatusDraft
	pending := buildTestStartup(other.ID, "pending", base.Add(3*time.Minute))
	pending.Approved = false
	featured := buildTestStartup(other.ID, "featured", base.Add(4*time.Minute))
	featured.Featured = true

	for _, s := range []*schema.Startup{first, second, draft, pending, featured} {
		require.NoError(t, store.CreateStartup(ctx, s))
	}

	published := domain.StartupStatusPublished
	ids := func(startups []*schema.Startup) []string {
		out := make([]string, 0, len(startups))
		for _, s := range startups {
			out = append(out, s.ID)
		}
		return out
	}

	t.Run("approved and published, newest first", func(t *testing.T) {
		got, err := store.ListStartups(ctx, StartupFilter{Approved: boolPtr(true), Status: &published})
		require.NoError(t, err)
		assert.Equal(t, []string{featured.ID, second.ID, first.ID}, ids(got))
	})

	t.Run("equality filters combine", func(t *testing.T) {
		got, err := store.ListStartups(ctx, StartupFilter{
			Approved: boolPtr(true),
			Status:   &published,
			Sector:   "Fintech",
			Category: "SaaS",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{featured.ID, first.ID}, ids(got))
	})

	t.Run("by owner includes unapproved and drafts", func(t *testing.T) {
		got, err := store.ListStartups(ctx, StartupFilter{ListingOwner: owner.ID})
		require.NoError(t, err)
		assert.Equal(t, []string{draft.ID, second.ID, first.ID}, ids(got))
	})

	t.Run("featured", func(t *testing.T) {
		got, err := store.ListStartups(ctx, StartupFilter{Featured: boolPtr(true)})
		require.NoError(t, err)
		assert.Equal(t, []string{featured.ID}, ids(got))
	})
}

func testUpdateStartup(t *testing.T, store Store) {
	ctx := context.Background()
	owner := mustCreateUser(t, store)
	startup := buildTestStartup(owner.ID, "mutable", time.Now())
	require.NoError(t, store.CreateStartup(ctx, startup))

	t.Run("mutation is persisted", func(t *testing.T) {
		updated, err := store.UpdateStartup(ctx, startup.ID, func(s *schema.Startup) error {
			s.AppendEngagement(domain.EngagementUpvotes, []domain.Event{{Timestamp: time.Now()}, {Timestamp: time.Now()}})
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), updated.Upvotes)

		got, err := store.GetStartupByID(ctx, startup.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Upvotes)
		assert.Len(t, got.UpvotesHistory, 2)
	})

	t.Run("noop skips the write", func(t *testing.T) {
		updated, err := store.UpdateStartup(ctx, startup.ID, func(s *schema.Startup) error {
			s.Name = "should not persist"
			return ErrNoop
		})
		require.NoError(t, err)
		require.NotNil(t, updated)

		got, err := store.GetStartupByID(ctx, startup.ID)
		require.NoError(t, err)
		assert.Equal(t, "mutable", got.Name)
	})

	t.Run("mutator error aborts", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := store.UpdateStartup(ctx, startup.ID, func(s *schema.Startup) error {
			s.Name = "aborted"
			return boom
		})
		require.ErrorIs(t, err, boom)

		got, err := store.GetStartupByID(ctx, startup.ID)
		require.NoError(t, err)
		assert.Equal(t, "mutable", got.Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		var called atomic.Bool
		_, err := store.UpdateStartup(ctx, uuid.NewString(), func(s *schema.Startup) error {
			called.Store(true)
			return nil
		})
		require.ErrorIs(t, err, domain.ErrStartupNotFound)
		assert.False(t, called.Load())
	})
}

func testStorageRefOwnership(t *testing.T, store Store) {
	ctx := context.Background()
	owner := mustCreateUser(t, store)

	victim := buildTestStartup(owner.ID, "victim", time.Now())
	victim.DeckURL, victim.DeckStorageID = "https://files/deck.pdf", "file:"+uuid.NewString()
	require.NoError(t, store.CreateStartup(ctx, victim))

	attacker := buildTestStartup(owner.ID, "attacker", time.Now())
	require.NoError(t, store.CreateStartup(ctx, attacker))

	t.Run("update cannot take another startup's storage id", func(t *testing.T) {
		_, err := store.UpdateStartup(ctx, attacker.ID, func(s *schema.Startup) error {
			s.LogoURL, s.LogoStorageID = victim.DeckURL, victim.DeckStorageID
			return nil
		})
		require.ErrorIs(t, err, domain.ErrStorageRefInUse)

		got, err := store.GetStartupByID(ctx, attacker.ID)
		require.NoError(t, err)
		assert.Empty(t, got.LogoStorageID)
	})

	t.Run("create cannot take another startup's storage id", func(t *testing.T) {
		copycat := buildTestStartup(owner.ID, "copycat", time.Now())
		copycat.DeckURL, copycat.DeckStorageID = victim.DeckURL, victim.DeckStorageID
		require.ErrorIs(t, store.CreateStartup(ctx, copycat), domain.ErrStorageRefInUse)
	})

	t.Run("a startup keeps its own storage ids across updates", func(t *testing.T) {
		updated, err := store.UpdateStartup(ctx, victim.ID, func(s *schema.Startup) error {
			s.Name = "victim renamed"
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, victim.DeckStorageID, updated.DeckStorageID)
	})
}

func testDeleteStartup(t *testing.T, store Store) {
	ctx := context.Background()
	owner := mustCreateUser(t, store)
	startup := buildTestStartup(owner.ID, "doomed", time.Now())
	startup.DeckStorageID = "file:deck.pdf"
	require.NoError(t, store.CreateStartup(ctx, startup))

	deleted, err := store.DeleteStartup(ctx, startup.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "file:deck.pdf", deleted.DeckStorageID)

	got, err := store.GetStartupByID(ctx, startup.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = store.DeleteStartup(ctx, startup.ID)
	require.ErrorIs(t, err, domain.ErrStartupNotFound)
}

// =============================================================================
// Test: Users
// =============================================================================

func testUsers(t *testing.T, store Store) {
	ctx := context.Background()
	user := mustCreateUser(t, store)

	t.Run("lookup by clerk id", func(t *testing.T) {
		got, err := store.GetUserByClerkID(ctx, user.ClerkID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.ID)
		assert.True(t, got.EmailNotifications)

		got, err = store.GetUserByClerkID(ctx, "user_missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("patch leaves unset fields", func(t *testing.T) {
		investor := domain.OccupationInvestor
		updated, err := store.UpdateUser(ctx, user.ID, schema.UserPatch{
			Occupation:   &investor,
			CheckSize:    strPtr("$50k"),
			WeeklyDigest: boolPtr(true),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.OccupationInvestor, updated.Occupation)
		assert.Equal(t, "$50k", updated.CheckSize)
		assert.True(t, updated.WeeklyDigest)
		assert.Equal(t, "Ada", updated.FirstName)

		_, err = store.UpdateUser(ctx, uuid.NewString(), schema.UserPatch{})
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("delete cascades to startups", func(t *testing.T) {
		startup := buildTestStartup(user.ID, "owned", time.Now())
		require.NoError(t, store.CreateStartup(ctx, startup))

		require.NoError(t, store.DeleteUser(ctx, user.ID))

		got, err := store.GetStartupByID(ctx, startup.ID)
		require.NoError(t, err)
		assert.Nil(t, got)

		require.ErrorIs(t, store.DeleteUser(ctx, user.ID), domain.ErrUserNotFound)
	})
}

// =============================================================================
// Test: Taxonomy
// =============================================================================

func testTaxonomy(t *testing.T, store Store) {
	ctx := context.Background()

	for _, kind := range []domain.TaxonomyKind{domain.TaxonomySector, domain.TaxonomyCategory, domain.TaxonomyIndustry} {
		t.Run(string(kind), func(t *testing.T) {
			beta := &schema.Taxonomy{ID: uuid.NewString(), Name: "Beta " + string(kind)}
			alpha := &schema.Taxonomy{ID: uuid.NewString(), Name: "Alpha " + string(kind), Description: "first"}
			require.NoError(t, store.CreateTaxonomy(ctx, kind, beta))
			require.NoError(t, store.CreateTaxonomy(ctx, kind, alpha))

			entries, err := store.ListTaxonomy(ctx, kind)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(entries), 2)

			names := make([]string, 0, len(entries))
			for _, e := range entries {
				names = append(names, e.Name)
			}
			assert.Contains(t, names, alpha.Name)
			assert.Less(t, indexOf(names, alpha.Name), indexOf(names, beta.Name))

			got, err := store.GetTaxonomyByName(ctx, kind, alpha.Name)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, "first", got.Description)

			updated, err := store.UpdateTaxonomy(ctx, kind, alpha.ID, TaxonomyUpdate{Description: strPtr("renamed")})
			require.NoError(t, err)
			assert.Equal(t, alpha.Name, updated.Name)
			assert.Equal(t, "renamed", updated.Description)

			_, err = store.UpdateTaxonomy(ctx, kind, uuid.NewString(), TaxonomyUpdate{Name: strPtr("x")})
			require.ErrorIs(t, err, domain.ErrTaxonomyNotFound)

			_, err = store.UpdateTaxonomy(ctx, kind, beta.ID, TaxonomyUpdate{Name: strPtr(alpha.Name)})
			require.ErrorIs(t, err, domain.ErrTaxonomyNameTaken)

			err = store.CreateTaxonomy(ctx, kind, &schema.Taxonomy{ID: uuid.NewString(), Name: beta.Name})
			require.ErrorIs(t, err, domain.ErrTaxonomyNameTaken)

			require.NoError(t, store.DeleteTaxonomy(ctx, kind, alpha.ID))
			require.ErrorIs(t, store.DeleteTaxonomy(ctx, kind, alpha.ID), domain.ErrTaxonomyNotFound)

			got, err = store.GetTaxonomyByName(ctx, kind, alpha.Name)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}

// =============================================================================
// Test: Resources
// =============================================================================

func testResources(t *testing.T, store Store) {
	ctx := context.Background()

	older := &schema.Resource{ID: uuid.NewString(), Title: "Pitch guide", URL: "https://example.com/a", CreatedAt: time.Now().Add(-time.Minute)}
	newer := &schema.Resource{ID: uuid.NewString(), Title: "Cap tables", URL: "https://example.com/b", CreatedAt: time.Now()}
	require.NoError(t, store.CreateResource(ctx, older))
	require.NoError(t, store.CreateResource(ctx, newer))

	resources, err := store.ListResources(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(resources), 2)
	assert.Equal(t, newer.ID, resources[0].ID)

	require.NoError(t, store.DeleteResource(ctx, older.ID))
	require.ErrorIs(t, store.DeleteResource(ctx, older.ID), domain.ErrResourceNotFound)
}

func testPing(t *testing.T, store Store) {
	require.NoError(t, store.Ping(context.Background()))
}

// =============================================================================
// Test Runner
// =============================================================================

// RunStoreTests runs every store test against the implementation produced by initDB
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Ping", testPing},
		{"CreateAndGetStartup", testCreateAndGetStartup},
		{"ListStartups", testListStartups},
		{"UpdateStartup", testUpdateStartup},
		{"DeleteStartup", testDeleteStartup},
		{"StorageRefOwnership", testStorageRefOwnership},
		{"Users", testUsers},
		{"Taxonomy", testTaxonomy},
		{"Resources", testResources},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
