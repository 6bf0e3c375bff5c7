package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Ping checks the database connection
func (s *pgStore) Ping(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// =============================================================================
// Startups
// =============================================================================

// CreateStartup inserts a new startup. Storage ids held by another startup are
// rejected with domain.ErrStorageRefInUse.
func (s *pgStore) CreateStartup(ctx context.Context, startup *schema.Startup) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureStorageRefsFree(tx, startup.ID, startup.StorageIDs()); err != nil {
			return err
		}

		if err := tx.Create(startup).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %v", domain.ErrStorageRefInUse, err)
			}
			return fmt.Errorf("failed to create startup: %w", err)
		}
		return nil
	})
}

// GetStartupByID retrieves a startup by id
func (s *pgStore) GetStartupByID(ctx context.Context, id string) (*schema.Startup, error) {
	var startup schema.Startup
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&startup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get startup: %w", err)
	}
	return &startup, nil
}

// GetStartupByRoutingName retrieves a startup by its slug. Slugs are not unique
// in the table, so the newest listing wins.
func (s *pgStore) GetStartupByRoutingName(ctx context.Context, routingName string) (*schema.Startup, error) {
	var startup schema.Startup
	err := s.db.WithContext(ctx).
		Where("routing_name = ?", routingName).
		Order("created_at DESC").
		Order("id DESC").
		First(&startup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get startup by routing name: %w", err)
	}
	return &startup, nil
}

// ListStartups returns the startups matching every set filter, newest first
func (s *pgStore) ListStartups(ctx context.Context, filter StartupFilter) ([]*schema.Startup, error) {
	query := s.db.WithContext(ctx).Model(&schema.Startup{})

	if filter.Approved != nil {
		query = query.Where("approved = ?", *filter.Approved)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ListingOwner != "" {
		query = query.Where("listing_owner = ?", filter.ListingOwner)
	}
	if filter.Sector != "" {
		query = query.Where("sector = ?", filter.Sector)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Industry != "" {
		query = query.Where("industry = ?", filter.Industry)
	}

	var startups []*schema.Startup
	err := query.Order("created_at DESC").Order("id DESC").Find(&startups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list startups: %w", err)
	}
	return startups, nil
}

// UpdateStartup runs mutate against a row locked with SELECT ... FOR UPDATE and
// saves the whole record in the same transaction. Concurrent updates of one
// startup are serialized by the row lock.
func (s *pgStore) UpdateStartup(ctx context.Context, id string, mutate StartupMutator) (*schema.Startup, error) {
	var startup schema.Startup
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&startup).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrStartupNotFound
			}
			return fmt.Errorf("failed to lock startup: %w", err)
		}

		if err := mutate(&startup); err != nil {
			return err
		}

		if err := ensureStorageRefsFree(tx, startup.ID, startup.StorageIDs()); err != nil {
			return err
		}

		if err := tx.Save(&startup).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %v", domain.ErrStorageRefInUse, err)
			}
			return fmt.Errorf("failed to save startup: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoop) {
			return &startup, nil
		}
		return nil, err
	}

	return &startup, nil
}

// ensureStorageRefsFree fails when any of storageIDs is held by a startup
// other than id. The partial unique indexes only cover a single column, so
// cross-slot reuse is caught here.
func ensureStorageRefsFree(tx *gorm.DB, id string, storageIDs []string) error {
	var refs []string
	for _, ref := range storageIDs {
		if ref != "" {
			refs = append(refs, ref)
		}
	}
	if len(refs) == 0 {
		return nil
	}

	var holder schema.Startup
	err := tx.Select("id").
		Where("id <> ?", id).
		Where("(logo_storage_id IN ? OR image_storage_id IN ? OR deck_storage_id IN ? OR demo_storage_id IN ?)", refs, refs, refs, refs).
		Take(&holder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check storage references: %w", err)
	}
	return fmt.Errorf("%w: held by startup %s", domain.ErrStorageRefInUse, holder.ID)
}

// isUniqueViolation reports whether err is a postgres unique_violation
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// DeleteStartup removes a startup and returns the deleted row
func (s *pgStore) DeleteStartup(ctx context.Context, id string) (*schema.Startup, error) {
	var deleted []schema.Startup
	err := s.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&deleted).Error
	if err != nil {
		return nil, fmt.Errorf("failed to delete startup: %w", err)
	}
	if len(deleted) == 0 {
		return nil, domain.ErrStartupNotFound
	}
	return &deleted[0], nil
}

// =============================================================================
// Users
// =============================================================================

// CreateUser inserts a new user
func (s *pgStore) CreateUser(ctx context.Context, user *schema.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by id
func (s *pgStore) GetUserByID(ctx context.Context, id string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByClerkID retrieves a user by identity-provider subject
func (s *pgStore) GetUserByClerkID(ctx context.Context, clerkID string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("clerk_id = ?", clerkID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by clerk id: %w", err)
	}
	return &user, nil
}

// UpdateUser applies a patch to a user
func (s *pgStore) UpdateUser(ctx context.Context, id string, patch schema.UserPatch) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("failed to lock user: %w", err)
		}

		patch.Apply(&user)

		if err := tx.Save(&user).Error; err != nil {
			return fmt.Errorf("failed to save user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user; startups owned by the user cascade
func (s *pgStore) DeleteUser(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.User{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// =============================================================================
// Taxonomy
// =============================================================================

// CreateTaxonomy inserts an entry into the table of the given kind. The insert
// runs in its own transaction so a name collision leaves an outer one usable.
func (s *pgStore) CreateTaxonomy(ctx context.Context, kind domain.TaxonomyKind, entry *schema.Taxonomy) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(kind.Table()).Create(entry).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s %q", domain.ErrTaxonomyNameTaken, kind, entry.Name)
			}
			return fmt.Errorf("failed to create %s: %w", kind, err)
		}
		return nil
	})
}

// UpdateTaxonomy edits an entry of the given kind
func (s *pgStore) UpdateTaxonomy(ctx context.Context, kind domain.TaxonomyKind, id string, update TaxonomyUpdate) (*schema.Taxonomy, error) {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}

	var entry schema.Taxonomy
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			result := tx.Table(kind.Table()).Where("id = ?", id).Updates(updates)
			if result.Error != nil {
				if isUniqueViolation(result.Error) {
					return fmt.Errorf("%w: %s %q", domain.ErrTaxonomyNameTaken, kind, *update.Name)
				}
				return fmt.Errorf("failed to update %s: %w", kind, result.Error)
			}
		}

		err := tx.Table(kind.Table()).Where("id = ?", id).First(&entry).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTaxonomyNotFound
			}
			return fmt.Errorf("failed to get %s: %w", kind, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteTaxonomy removes an entry of the given kind
func (s *pgStore) DeleteTaxonomy(ctx context.Context, kind domain.TaxonomyKind, id string) error {
	result := s.db.WithContext(ctx).Table(kind.Table()).Where("id = ?", id).Delete(&schema.Taxonomy{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTaxonomyNotFound
	}
	return nil
}

// GetTaxonomyByName retrieves an entry of the given kind by name
func (s *pgStore) GetTaxonomyByName(ctx context.Context, kind domain.TaxonomyKind, name string) (*schema.Taxonomy, error) {
	var entry schema.Taxonomy
	err := s.db.WithContext(ctx).Table(kind.Table()).Where("name = ?", name).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get %s by name: %w", kind, err)
	}
	return &entry, nil
}

// ListTaxonomy returns every entry of the given kind ordered by name
func (s *pgStore) ListTaxonomy(ctx context.Context, kind domain.TaxonomyKind) ([]schema.Taxonomy, error) {
	var entries []schema.Taxonomy
	err := s.db.WithContext(ctx).Table(kind.Table()).Order("name ASC").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	return entries, nil
}

// =============================================================================
// Resources
// =============================================================================

// CreateResource inserts a resource link
func (s *pgStore) CreateResource(ctx context.Context, resource *schema.Resource) error {
	if err := s.db.WithContext(ctx).Create(resource).Error; err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

// ListResources returns resources, newest first
func (s *pgStore) ListResources(ctx context.Context) ([]schema.Resource, error) {
	var resources []schema.Resource
	err := s.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&resources).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	return resources, nil
}

// DeleteResource removes a resource
func (s *pgStore) DeleteResource(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Resource{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete resource: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrResourceNotFound
	}
	return nil
}
