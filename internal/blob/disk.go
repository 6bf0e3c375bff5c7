package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/oklog/ulid/v2"

	"github.com/feral-file/launchpad/internal/adapter"
	"github.com/feral-file/launchpad/internal/domain"
)

const SchemeFile = "file"

// DefaultDocumentTypes are the types held on disk when no list is configured
var DefaultDocumentTypes = []string{
	"application/pdf",
	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"application/vnd.apple.keynote",
}

// DiskConfig holds configuration for the local document store
type DiskConfig struct {
	// Dir is the directory files are written to
	Dir string
	// PublicURL is the URL prefix the directory is served under
	PublicURL string
	// AllowedTypes lists accepted MIME types; an entry ending in "/" accepts a whole family
	AllowedTypes []string
}

type disk struct {
	fs      adapter.FileSystem
	dir     string
	baseURL string
	allowed []string
}

// NewDisk creates a backend writing files to a local directory
func NewDisk(fsys adapter.FileSystem, cfg DiskConfig) (Backend, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("disk storage directory is required")
	}
	if err := fsys.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	allowed := cfg.AllowedTypes
	if len(allowed) == 0 {
		allowed = DefaultDocumentTypes
	}

	return &disk{
		fs:      fsys,
		dir:     cfg.Dir,
		baseURL: strings.TrimRight(cfg.PublicURL, "/"),
		allowed: allowed,
	}, nil
}

func (d *disk) Scheme() string {
	return SchemeFile
}

func (d *disk) Accepts(mime *mimetype.MIME) bool {
	return matchesAny(mime, d.allowed)
}

func (d *disk) Put(ctx context.Context, filename string, mime *mimetype.MIME, data []byte) (string, string, error) {
	ref := strings.ToLower(ulid.Make().String()) + mime.Extension()

	f, err := d.fs.Create(filepath.Join(d.dir, ref))
	if err != nil {
		return "", "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = d.fs.Remove(filepath.Join(d.dir, ref))
		return "", "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", "", fmt.Errorf("failed to close file: %w", err)
	}

	return ref, d.publicURL(ref), nil
}

func (d *disk) URL(ctx context.Context, ref string) (string, error) {
	if err := validRef(ref); err != nil {
		return "", err
	}
	if _, err := d.fs.Stat(filepath.Join(d.dir, ref)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrUnknownStorageRef, ref)
		}
		return "", fmt.Errorf("failed to stat file: %w", err)
	}
	return d.publicURL(ref), nil
}

func (d *disk) Delete(ctx context.Context, ref string) error {
	if err := validRef(ref); err != nil {
		return err
	}
	err := d.fs.Remove(filepath.Join(d.dir, ref))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (d *disk) publicURL(ref string) string {
	return d.baseURL + "/" + url.PathEscape(ref)
}

// validRef rejects references that would escape the storage directory
func validRef(ref string) error {
	if ref == "" || ref != filepath.Base(ref) || ref == "." || ref == ".." {
		return fmt.Errorf("%w: %q", domain.ErrUnknownStorageRef, ref)
	}
	return nil
}
