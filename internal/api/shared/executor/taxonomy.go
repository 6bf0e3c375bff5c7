package executor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/feral-file/launchpad/internal/api/shared/dto"
	apierrors "github.com/feral-file/launchpad/internal/api/shared/errors"
	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/store"
	"github.com/feral-file/launchpad/internal/store/schema"
)

func (e *executor) SaveTaxonomy(ctx context.Context, kind domain.TaxonomyKind, req *dto.SaveTaxonomyRequest) (*dto.TaxonomyResponse, error) {
	existing, err := e.store.GetTaxonomyByName(ctx, kind, req.Name)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get %s: %v", kind, err))
	}

	if existing != nil {
		if existing.Description == req.Description {
			return dto.NewTaxonomyResponse(kind, existing), nil
		}

		updated, err := e.store.UpdateTaxonomy(ctx, kind, existing.ID, store.TaxonomyUpdate{Description: &req.Description})
		if err != nil {
			return nil, apierrors.FromDomain(err, fmt.Sprintf("Failed to update %s", kind))
		}
		return dto.NewTaxonomyResponse(kind, updated), nil
	}

	entry := &schema.Taxonomy{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   e.clock.Now(),
	}
	if err := e.store.CreateTaxonomy(ctx, kind, entry); err != nil {
		return nil, apierrors.FromDomain(err, fmt.Sprintf("Failed to create %s", kind))
	}

	return dto.NewTaxonomyResponse(kind, entry), nil
}

func (e *executor) UpdateTaxonomy(ctx context.Context, kind domain.TaxonomyKind, id string, req *dto.UpdateTaxonomyRequest) (*dto.TaxonomyResponse, error) {
	updated, err := e.store.UpdateTaxonomy(ctx, kind, id, store.TaxonomyUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, apierrors.FromDomain(err, fmt.Sprintf("Failed to update %s", kind))
	}

	return dto.NewTaxonomyResponse(kind, updated), nil
}

func (e *executor) DeleteTaxonomy(ctx context.Context, kind domain.TaxonomyKind, id string) error {
	if err := e.store.DeleteTaxonomy(ctx, kind, id); err != nil {
		return apierrors.FromDomain(err, fmt.Sprintf("Failed to delete %s", kind))
	}
	return nil
}

func (e *executor) GetTaxonomyByName(ctx context.Context, kind domain.TaxonomyKind, name string) (*dto.TaxonomyResponse, error) {
	entry, err := e.store.GetTaxonomyByName(ctx, kind, name)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get %s: %v", kind, err))
	}
	if entry == nil {
		return nil, nil
	}

	return dto.NewTaxonomyResponse(kind, entry), nil
}

func (e *executor) ListTaxonomy(ctx context.Context, kind domain.TaxonomyKind) (*dto.TaxonomyListResponse, error) {
	entries, err := e.store.ListTaxonomy(ctx, kind)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list %s: %v", kind, err))
	}

	resp := &dto.TaxonomyListResponse{Kind: kind, Entries: make([]dto.TaxonomyResponse, len(entries))}
	for i := range entries {
		resp.Entries[i] = *dto.NewTaxonomyResponse(kind, &entries[i])
	}
	return resp, nil
}
