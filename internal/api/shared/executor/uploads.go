package executor

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/launchpad/internal/api/shared/dto"
	apierrors "github.com/feral-file/launchpad/internal/api/shared/errors"
	"github.com/feral-file/launchpad/internal/logger"
)

func (e *executor) Upload(ctx context.Context, filename string, data []byte) (*dto.UploadResponse, error) {
	obj, err := e.blobs.Upload(ctx, filename, data)
	if err != nil {
		apiErr := apierrors.FromDomain(err, "Failed to upload file")
		if apiErr.Code == apierrors.ErrCodeDatabaseError {
			return nil, apierrors.NewServiceError("Failed to upload file", err.Error())
		}
		return nil, apiErr
	}

	logger.InfoCtx(ctx, "File uploaded",
		zap.String("storage_id", obj.StorageID),
		zap.String("content_type", obj.ContentType),
		zap.Int64("size", obj.Size),
	)

	return dto.NewUploadResponse(obj), nil
}
