package blob_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/cloudflare/cloudflare-go"
	"github.com/gabriel-vasile/mimetype"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/launchpad/internal/adapter"
	"github.com/feral-file/launchpad/internal/blob"
	"github.com/feral-file/launchpad/internal/mocks"
)

var mp4Data = []byte("\x00\x00\x00\x18ftypmp42\x00\x00\x00\x00mp42isom\x00\x00\x00\x08free")

func TestCloudflareImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockCloudflareClient(ctrl)
	backend := blob.NewCloudflareImages(client, blob.CloudflareConfig{AccountID: "acc"})
	ctx := context.Background()

	assert.Equal(t, blob.SchemeCloudflareImage, backend.Scheme())
	assert.True(t, backend.Accepts(mimetype.Detect(pngData)))
	assert.False(t, backend.Accepts(mimetype.Detect(pdfData)))

	variants := []string{
		"https://imagedelivery.net/hash/42/thumbnail",
		"https://imagedelivery.net/hash/42/public",
	}

	client.EXPECT().
		UploadImage(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rc *cloudflare.ResourceContainer, params cloudflare.UploadImageParams) (cloudflare.Image, error) {
			assert.Equal(t, "acc", rc.Identifier)
			assert.Equal(t, "logo.png", params.Name)
			return cloudflare.Image{ID: "42", Variants: variants}, nil
		})

	ref, url, err := backend.Put(ctx, "logo", mimetype.Detect(pngData), pngData)
	require.NoError(t, err)
	assert.Equal(t, "42", ref)
	assert.Equal(t, "https://imagedelivery.net/hash/42/public", url)

	client.EXPECT().GetImage(ctx, gomock.Any(), "42").Return(cloudflare.Image{ID: "42", Variants: variants[:1]}, nil)
	url, err = backend.URL(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, variants[0], url)

	client.EXPECT().DeleteImage(ctx, gomock.Any(), "42").Return(nil)
	assert.NoError(t, backend.Delete(ctx, "42"))
}

func TestCloudflareImages_UploadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockCloudflareClient(ctrl)
	backend := blob.NewCloudflareImages(client, blob.CloudflareConfig{AccountID: "acc"})

	client.EXPECT().UploadImage(gomock.Any(), gomock.Any(), gomock.Any()).Return(cloudflare.Image{}, errors.New("unauthorized"))

	_, _, err := backend.Put(context.Background(), "logo.png", mimetype.Detect(pngData), pngData)
	assert.Error(t, err)
}

func TestCloudflareStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockCloudflareClient(ctrl)
	backend := blob.NewCloudflareStream(client, adapter.NewFileSystem(), blob.CloudflareConfig{AccountID: "acc"})
	ctx := context.Background()

	mime := mimetype.Detect(mp4Data)
	require.True(t, backend.Accepts(mime), mime.String())
	assert.False(t, backend.Accepts(mimetype.Detect(pngData)))

	var staged string
	client.EXPECT().
		UploadVideoFromFile(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params cloudflare.StreamUploadFileParameters) (cloudflare.StreamVideo, error) {
			assert.Equal(t, "acc", params.AccountID)
			staged = params.FilePath
			data, err := os.ReadFile(params.FilePath)
			require.NoError(t, err)
			assert.Equal(t, mp4Data, data)
			return cloudflare.StreamVideo{
				UID:      "vid-1",
				Preview:  "https://watch.example.com/vid-1",
				Playback: cloudflare.StreamVideoPlayback{HLS: "https://stream.example.com/vid-1/manifest/video.m3u8"},
			}, nil
		})

	ref, url, err := backend.Put(ctx, "demo.mp4", mime, mp4Data)
	require.NoError(t, err)
	assert.Equal(t, "vid-1", ref)
	assert.Equal(t, "https://stream.example.com/vid-1/manifest/video.m3u8", url)

	// The staged upload is removed afterwards
	_, err = os.Stat(staged)
	assert.True(t, os.IsNotExist(err))

	client.EXPECT().
		GetVideo(ctx, cloudflare.StreamParameters{AccountID: "acc", VideoID: "vid-1"}).
		Return(cloudflare.StreamVideo{UID: "vid-1", Preview: "https://watch.example.com/vid-1"}, nil)
	url, err = backend.URL(ctx, "vid-1")
	require.NoError(t, err)
	assert.Equal(t, "https://watch.example.com/vid-1", url)

	client.EXPECT().DeleteVideo(ctx, cloudflare.StreamParameters{AccountID: "acc", VideoID: "vid-1"}).Return(nil)
	assert.NoError(t, backend.Delete(ctx, "vid-1"))
}
