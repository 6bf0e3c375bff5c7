// Package blob stores uploaded files and resolves storage references to public URLs.
//
// A storage id is "<scheme>:<ref>", where the scheme names the backend that
// holds the file. Uploads are routed to a backend by their detected MIME type.
package blob

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/logger"
)

// Object describes a stored file
type Object struct {
	StorageID   string `json:"storageId"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Store defines the blob storage operations used by the service
//
//go:generate mockgen -source=blob.go -destination=../mocks/blob.go -package=mocks -mock_names=Store=MockBlobStore
type Store interface {
	// Upload stores data and returns its storage id and public URL
	Upload(ctx context.Context, filename string, data []byte) (*Object, error)
	// ResolveURL returns the public URL of a storage id
	ResolveURL(ctx context.Context, storageID string) (string, error)
	// Release deletes the file behind a storage id. An empty id is a no-op.
	Release(ctx context.Context, storageID string) error
}

// Backend holds files of the MIME types it accepts
type Backend interface {
	// Scheme is the storage id prefix owned by the backend
	Scheme() string
	// Accepts reports whether the backend can hold files of the given type
	Accepts(mime *mimetype.MIME) bool
	// Put stores data and returns the backend reference and public URL
	Put(ctx context.Context, filename string, mime *mimetype.MIME, data []byte) (ref string, url string, err error)
	// URL returns the public URL of a reference
	URL(ctx context.Context, ref string) (string, error)
	// Delete removes a reference
	Delete(ctx context.Context, ref string) error
}

type router struct {
	backends []Backend
	maxSize  int64
}

// NewStore creates a store that routes uploads to the first backend accepting
// the detected MIME type. maxSize <= 0 disables the size limit.
func NewStore(maxSize int64, backends ...Backend) Store {
	return &router{backends: backends, maxSize: maxSize}
}

// FormatStorageID joins a backend scheme and reference
func FormatStorageID(scheme, ref string) string {
	return scheme + ":" + ref
}

// ParseStorageID splits a storage id into scheme and reference
func ParseStorageID(storageID string) (scheme string, ref string, err error) {
	scheme, ref, ok := strings.Cut(storageID, ":")
	if !ok || scheme == "" || ref == "" {
		return "", "", fmt.Errorf("%w: %q", domain.ErrUnknownStorageRef, storageID)
	}
	return scheme, ref, nil
}

// Upload detects the content type of data and stores it in the matching backend
func (r *router) Upload(ctx context.Context, filename string, data []byte) (*Object, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", domain.ErrUnsupportedMediaType)
	}
	if r.maxSize > 0 && int64(len(data)) > r.maxSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrUnsupportedMediaType, r.maxSize)
	}

	mime := mimetype.Detect(data)
	for _, b := range r.backends {
		if !b.Accepts(mime) {
			continue
		}

		ref, url, err := b.Put(ctx, filename, mime, data)
		if err != nil {
			return nil, fmt.Errorf("failed to upload to %s: %w", b.Scheme(), err)
		}

		logger.InfoCtx(ctx, "Stored upload",
			zap.String("backend", b.Scheme()),
			zap.String("ref", ref),
			zap.String("contentType", mime.String()),
			zap.Int("size", len(data)),
		)

		return &Object{
			StorageID:   FormatStorageID(b.Scheme(), ref),
			URL:         url,
			ContentType: mime.String(),
			Size:        int64(len(data)),
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedMediaType, mime.String())
}

// ResolveURL returns the public URL of a storage id
func (r *router) ResolveURL(ctx context.Context, storageID string) (string, error) {
	b, ref, err := r.backendFor(storageID)
	if err != nil {
		return "", err
	}
	return b.URL(ctx, ref)
}

// Release deletes the file behind a storage id
func (r *router) Release(ctx context.Context, storageID string) error {
	if storageID == "" {
		return nil
	}

	b, ref, err := r.backendFor(storageID)
	if err != nil {
		return err
	}

	if err := b.Delete(ctx, ref); err != nil {
		return fmt.Errorf("failed to release %s: %w", storageID, err)
	}
	return nil
}

func (r *router) backendFor(storageID string) (Backend, string, error) {
	scheme, ref, err := ParseStorageID(storageID)
	if err != nil {
		return nil, "", err
	}
	for _, b := range r.backends {
		if b.Scheme() == scheme {
			return b, ref, nil
		}
	}
	return nil, "", fmt.Errorf("%w: %q", domain.ErrUnknownStorageRef, storageID)
}

// matchesAny reports whether mime equals or falls under any of the patterns.
// A pattern ending in "/" matches every subtype, e.g. "image/".
func matchesAny(mime *mimetype.MIME, patterns []string) bool {
	for m := mime; m != nil; m = m.Parent() {
		for _, p := range patterns {
			if strings.HasSuffix(p, "/") {
				if strings.HasPrefix(m.String(), p) {
					return true
				}
				continue
			}
			if m.Is(p) {
				return true
			}
		}
	}
	return false
}
