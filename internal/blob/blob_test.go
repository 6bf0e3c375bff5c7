package blob_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gabriel-vasile/mimetype"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/launchpad/internal/adapter"
	"github.com/feral-file/launchpad/internal/blob"
	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/mocks"
)

var (
	pdfData = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	pngData = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
)

func newDisk(t *testing.T) (blob.Backend, string) {
	dir := t.TempDir()
	backend, err := blob.NewDisk(adapter.NewFileSystem(), blob.DiskConfig{
		Dir:       dir,
		PublicURL: "https://files.example.com/",
	})
	require.NoError(t, err)
	return backend, dir
}

func TestParseStorageID(t *testing.T) {
	tests := []struct {
		id     string
		scheme string
		ref    string
		valid  bool
	}{
		{"file:abc.pdf", "file", "abc.pdf", true},
		{"cf-image:1234", "cf-image", "1234", true},
		{"cf-stream:a:b", "cf-stream", "a:b", true},
		{"abc.pdf", "", "", false},
		{":abc", "", "", false},
		{"file:", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			scheme, ref, err := blob.ParseStorageID(tt.id)
			if !tt.valid {
				assert.ErrorIs(t, err, domain.ErrUnknownStorageRef)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.scheme, scheme)
			assert.Equal(t, tt.ref, ref)
			assert.Equal(t, tt.id, blob.FormatStorageID(scheme, ref))
		})
	}
}

func TestNewDisk_RequiresDir(t *testing.T) {
	_, err := blob.NewDisk(adapter.NewFileSystem(), blob.DiskConfig{})
	assert.Error(t, err)
}

func TestUpload_DocumentToDisk(t *testing.T) {
	disk, dir := newDisk(t)
	store := blob.NewStore(0, disk)
	ctx := context.Background()

	obj, err := store.Upload(ctx, "deck.pdf", pdfData)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(obj.StorageID, "file:"))
	assert.Equal(t, "application/pdf", obj.ContentType)
	assert.Equal(t, int64(len(pdfData)), obj.Size)

	_, ref, err := blob.ParseStorageID(obj.StorageID)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".pdf"))
	assert.Equal(t, "https://files.example.com/"+ref, obj.URL)

	written, err := os.ReadFile(filepath.Join(dir, ref))
	require.NoError(t, err)
	assert.Equal(t, pdfData, written)

	url, err := store.ResolveURL(ctx, obj.StorageID)
	require.NoError(t, err)
	assert.Equal(t, obj.URL, url)

	require.NoError(t, store.Release(ctx, obj.StorageID))
	_, err = os.Stat(filepath.Join(dir, ref))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// Releasing twice is not an error
	assert.NoError(t, store.Release(ctx, obj.StorageID))

	_, err = store.ResolveURL(ctx, obj.StorageID)
	assert.ErrorIs(t, err, domain.ErrUnknownStorageRef)
}

func TestUpload_Rejections(t *testing.T) {
	disk, _ := newDisk(t)
	store := blob.NewStore(int64(len(pdfData)), disk)
	ctx := context.Background()

	_, err := store.Upload(ctx, "empty.pdf", nil)
	assert.ErrorIs(t, err, domain.ErrUnsupportedMediaType)

	_, err = store.Upload(ctx, "big.pdf", append(pdfData, ' '))
	assert.ErrorIs(t, err, domain.ErrUnsupportedMediaType)

	// No backend accepts images
	_, err = store.Upload(ctx, "logo.png", pngData)
	assert.ErrorIs(t, err, domain.ErrUnsupportedMediaType)
}

func TestUpload_RoutesByMIME(t *testing.T) {
	ctrl := gomock.NewController(t)
	disk, _ := newDisk(t)
	images := mocks.NewMockBackend(ctrl)
	images.EXPECT().Scheme().Return("img").AnyTimes()
	images.EXPECT().Accepts(gomock.Any()).DoAndReturn(func(m *mimetype.MIME) bool {
		return strings.HasPrefix(m.String(), "image/")
	}).AnyTimes()
	images.EXPECT().Put(gomock.Any(), "logo.png", gomock.Any(), pngData).
		Return("42", "https://img.example.com/42/public", nil)

	store := blob.NewStore(0, disk, images)

	obj, err := store.Upload(context.Background(), "logo.png", pngData)
	require.NoError(t, err)
	assert.Equal(t, "img:42", obj.StorageID)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, "https://img.example.com/42/public", obj.URL)

	obj, err = store.Upload(context.Background(), "deck.pdf", pdfData)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(obj.StorageID, "file:"))
}

func TestUpload_BackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().Scheme().Return("img").AnyTimes()
	backend.EXPECT().Accepts(gomock.Any()).Return(true)
	backend.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", "", errors.New("quota exceeded"))

	_, err := blob.NewStore(0, backend).Upload(context.Background(), "logo.png", pngData)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	backend.EXPECT().Scheme().Return("img").AnyTimes()
	store := blob.NewStore(0, backend)
	ctx := context.Background()

	t.Run("empty id is a no-op", func(t *testing.T) {
		assert.NoError(t, store.Release(ctx, ""))
	})

	t.Run("unknown scheme", func(t *testing.T) {
		assert.ErrorIs(t, store.Release(ctx, "s3:bucket/key"), domain.ErrUnknownStorageRef)
	})

	t.Run("malformed id", func(t *testing.T) {
		assert.ErrorIs(t, store.Release(ctx, "no-scheme"), domain.ErrUnknownStorageRef)
	})

	t.Run("backend failure is wrapped", func(t *testing.T) {
		backend.EXPECT().Delete(gomock.Any(), "42").Return(errors.New("timeout"))
		err := store.Release(ctx, "img:42")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "img:42")
	})

	t.Run("deletes by reference", func(t *testing.T) {
		backend.EXPECT().Delete(gomock.Any(), "43").Return(nil)
		assert.NoError(t, store.Release(ctx, "img:43"))
	})
}

func TestDisk_RejectsEscapingReferences(t *testing.T) {
	disk, _ := newDisk(t)
	store := blob.NewStore(0, disk)
	ctx := context.Background()

	for _, id := range []string{"file:../secret", "file:a/b.pdf", "file:.."} {
		assert.ErrorIs(t, store.Release(ctx, id), domain.ErrUnknownStorageRef, id)
		_, err := store.ResolveURL(ctx, id)
		assert.ErrorIs(t, err, domain.ErrUnknownStorageRef, id)
	}
}
