package executor

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/feral-file/launchpad/internal/api/shared/dto"
	apierrors "github.com/feral-file/launchpad/internal/api/shared/errors"
	"github.com/feral-file/launchpad/internal/store/schema"
)

func (e *executor) CreateResource(ctx context.Context, req *dto.CreateResourceRequest) (*dto.ResourceResponse, error) {
	resource := &schema.Resource{
		ID:          uuid.NewString(),
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Kind:        req.Kind,
		CreatedAt:   e.clock.Now(),
	}
	if err := e.store.CreateResource(ctx, resource); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to create resource: %v", err))
	}

	return dto.NewResourceResponse(resource), nil
}

func (e *executor) ListResources(ctx context.Context) (*dto.ResourceListResponse, error) {
	resources, err := e.store.ListResources(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list resources: %v", err))
	}

	resp := &dto.ResourceListResponse{Resources: make([]dto.ResourceResponse, len(resources))}
	for i := range resources {
		resp.Resources[i] = *dto.NewResourceResponse(&resources[i])
	}
	return resp, nil
}

func (e *executor) DeleteResource(ctx context.Context, id string) error {
	if err := e.store.DeleteResource(ctx, id); err != nil {
		return apierrors.FromDomain(err, "Failed to delete resource")
	}
	return nil
}
