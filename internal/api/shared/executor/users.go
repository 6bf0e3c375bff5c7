package executor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/launchpad/internal/api/shared/dto"
	apierrors "github.com/feral-file/launchpad/internal/api/shared/errors"
	"github.com/feral-file/launchpad/internal/logger"
	"github.com/feral-file/launchpad/internal/store"
	"github.com/feral-file/launchpad/internal/store/schema"
)

func (e *executor) CreateUser(ctx context.Context, subject string, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := e.store.GetUserByClerkID(ctx, subject)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if existing != nil {
		return dto.NewUserResponse(existing), nil
	}

	now := e.clock.Now()
	user := &schema.User{
		ID:                 uuid.NewString(),
		ClerkID:            subject,
		Email:              req.Email,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		ImageURL:           req.ImageURL,
		Occupation:         req.Occupation,
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := e.store.CreateUser(ctx, user); err != nil {
		// a concurrent registration of the same subject wins
		existing, getErr := e.store.GetUserByClerkID(ctx, subject)
		if getErr == nil && existing != nil {
			return dto.NewUserResponse(existing), nil
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create user: %v", err))
	}

	logger.InfoCtx(ctx, "User registered", zap.String("user_id", user.ID))

	return dto.NewUserResponse(user), nil
}

func (e *executor) GetUser(ctx context.Context, subject string) (*dto.UserResponse, error) {
	user, err := e.store.GetUserByClerkID(ctx, subject)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return nil, nil
	}

	return dto.NewUserResponse(user), nil
}

func (e *executor) GetUserByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := e.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return nil, nil
	}

	return dto.NewUserResponse(user), nil
}

func (e *executor) UpdateUser(ctx context.Context, subject string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := e.store.GetUserByClerkID(ctx, subject)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return nil, apierrors.NewNotFoundError("User not found")
	}

	updated, err := e.store.UpdateUser(ctx, user.ID, req.ToPatch())
	if err != nil {
		return nil, apierrors.FromDomain(err, "Failed to update user")
	}

	return dto.NewUserResponse(updated), nil
}

func (e *executor) DeleteUser(ctx context.Context, subject string) error {
	user, err := e.store.GetUserByClerkID(ctx, subject)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to get user: %v", err))
	}
	if user == nil {
		return apierrors.NewNotFoundError("User not found")
	}

	if err := e.revoker.RevokeSessions(ctx, subject); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to revoke sessions: %w", err), zap.String("user_id", user.ID))
		return apierrors.NewServiceError("Failed to revoke user sessions", err.Error())
	}

	owned, err := e.store.ListStartups(ctx, store.StartupFilter{ListingOwner: user.ID})
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to list user startups: %v", err))
	}

	if err := e.store.DeleteUser(ctx, user.ID); err != nil {
		return apierrors.FromDomain(err, "Failed to delete user")
	}

	var storageIDs []string
	for _, s := range owned {
		storageIDs = append(storageIDs, s.StorageIDs()...)
	}
	if err := e.releaseBlobs(ctx, storageIDs...); err != nil {
		logger.WarnCtx(ctx, "User deleted with unreleased blobs",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
	}

	logger.InfoCtx(ctx, "User deleted",
		zap.String("user_id", user.ID),
		zap.Int("startups", len(owned)),
	)
	return nil
}
