package blob

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/cloudflare/cloudflare-go"
	"github.com/gabriel-vasile/mimetype"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/launchpad/internal/adapter"
	"github.com/feral-file/launchpad/internal/logger"
)

const (
	SchemeCloudflareImage  = "cf-image"
	SchemeCloudflareStream = "cf-stream"

	defaultImageVariant = "public"
)

// CloudflareConfig holds configuration for Cloudflare Images and Stream
type CloudflareConfig struct {
	// AccountID is the Cloudflare account id
	AccountID string
	// ImageVariant is the Images variant whose URL is returned, "public" when empty
	ImageVariant string
}

type cloudflareImages struct {
	client  adapter.CloudflareClient
	rc      *cloudflare.ResourceContainer
	variant string
}

// NewCloudflareImages creates a backend storing images in Cloudflare Images
func NewCloudflareImages(client adapter.CloudflareClient, cfg CloudflareConfig) Backend {
	variant := cfg.ImageVariant
	if variant == "" {
		variant = defaultImageVariant
	}
	return &cloudflareImages{
		client:  client,
		variant: variant,
		rc: &cloudflare.ResourceContainer{
			Level:      cloudflare.AccountRouteLevel,
			Identifier: cfg.AccountID,
		},
	}
}

func (c *cloudflareImages) Scheme() string {
	return SchemeCloudflareImage
}

func (c *cloudflareImages) Accepts(mime *mimetype.MIME) bool {
	return matchesAny(mime, []string{"image/"})
}

func (c *cloudflareImages) Put(ctx context.Context, filename string, mime *mimetype.MIME, data []byte) (string, string, error) {
	image, err := c.client.UploadImage(ctx, c.rc, cloudflare.UploadImageParams{
		File: io.NopCloser(bytes.NewReader(data)),
		Name: withExtension(filename, mime),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload image: %w", err)
	}

	return image.ID, pickVariant(image.Variants, c.variant), nil
}

func (c *cloudflareImages) URL(ctx context.Context, ref string) (string, error) {
	image, err := c.client.GetImage(ctx, c.rc, ref)
	if err != nil {
		return "", fmt.Errorf("failed to get image: %w", err)
	}
	return pickVariant(image.Variants, c.variant), nil
}

func (c *cloudflareImages) Delete(ctx context.Context, ref string) error {
	return c.client.DeleteImage(ctx, c.rc, ref)
}

// pickVariant returns the variant URL ending in /<name>, or the first variant
func pickVariant(variants []string, name string) string {
	for _, v := range variants {
		if path.Base(v) == name {
			return v
		}
	}
	if len(variants) > 0 {
		return variants[0]
	}
	return ""
}

type cloudflareStream struct {
	client    adapter.CloudflareClient
	fs        adapter.FileSystem
	accountID string
}

// NewCloudflareStream creates a backend storing videos in Cloudflare Stream.
// The SDK uploads from a path, so the payload is staged in a temp file.
func NewCloudflareStream(client adapter.CloudflareClient, fs adapter.FileSystem, cfg CloudflareConfig) Backend {
	return &cloudflareStream{
		client:    client,
		fs:        fs,
		accountID: cfg.AccountID,
	}
}

func (c *cloudflareStream) Scheme() string {
	return SchemeCloudflareStream
}

func (c *cloudflareStream) Accepts(mime *mimetype.MIME) bool {
	return matchesAny(mime, []string{"video/"})
}

func (c *cloudflareStream) Put(ctx context.Context, filename string, mime *mimetype.MIME, data []byte) (string, string, error) {
	tempFile := filepath.Join(c.fs.TempDir(), fmt.Sprintf("launchpad-video-%s%s", ulid.Make().String(), mime.Extension()))

	f, err := c.fs.Create(tempFile)
	if err != nil {
		return "", "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err := c.fs.Remove(tempFile); err != nil {
			logger.WarnCtx(ctx, "Failed to remove temp file", zap.String("file", tempFile), zap.Error(err))
		}
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return "", "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", "", fmt.Errorf("failed to close temp file: %w", err)
	}

	video, err := c.client.UploadVideoFromFile(ctx, cloudflare.StreamUploadFileParameters{
		AccountID: c.accountID,
		FilePath:  tempFile,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload video: %w", err)
	}

	logger.InfoCtx(ctx, "Uploaded video to Cloudflare Stream",
		zap.String("videoID", video.UID),
		zap.String("filename", filename),
	)

	return video.UID, playbackURL(video), nil
}

func (c *cloudflareStream) URL(ctx context.Context, ref string) (string, error) {
	video, err := c.client.GetVideo(ctx, cloudflare.StreamParameters{
		AccountID: c.accountID,
		VideoID:   ref,
	})
	if err != nil {
		return "", fmt.Errorf("failed to get video: %w", err)
	}
	return playbackURL(video), nil
}

func (c *cloudflareStream) Delete(ctx context.Context, ref string) error {
	return c.client.DeleteVideo(ctx, cloudflare.StreamParameters{
		AccountID: c.accountID,
		VideoID:   ref,
	})
}

// playbackURL prefers the HLS manifest and falls back to the preview page
func playbackURL(video cloudflare.StreamVideo) string {
	if video.Playback.HLS != "" {
		return video.Playback.HLS
	}
	return video.Preview
}

// withExtension appends the detected extension when filename has none
func withExtension(filename string, mime *mimetype.MIME) string {
	filename = filepath.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." || filename == "/" {
		filename = "upload"
	}
	if filepath.Ext(filename) == "" {
		filename += mime.Extension()
	}
	return filename
}
