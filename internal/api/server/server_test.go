package server_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/launchpad/internal/api/middleware"
	"github.com/feral-file/launchpad/internal/api/server"
	"github.com/feral-file/launchpad/internal/api/shared/executor"
	"github.com/feral-file/launchpad/internal/messaging"
	"github.com/feral-file/launchpad/internal/mocks"
	"github.com/feral-file/launchpad/internal/ratelimit"
)

func newServer(t *testing.T, filesDir string) (*server.Server, *mocks.MockStore) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Now()).AnyTimes()

	srv := server.New(server.Config{
		FilesDir:    filesDir,
		FilesPrefix: "/files",
	}, executor.Deps{
		Store:     st,
		Blobs:     mocks.NewMockBlobStore(ctrl),
		Publisher: messaging.NewNoopPublisher(),
		Revoker:   mocks.NewMockSessionRevoker(ctrl),
		Clock:     clock,
	}, middleware.AuthConfig{APIKeys: []string{"admin-key"}})

	return srv, st
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	srv, st := newServer(t, "")
	st.EXPECT().Ping(gomock.Any()).Return(nil)
	router := srv.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.REQUEST_ID_HEADER))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "launchpad_http_requests_total")
}

func TestRouter_ServesFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deck.pdf"), []byte("%PDF-1.4"), 0600))

	srv, _ := newServer(t, dir)
	router := srv.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files/deck.pdf", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4", w.Body.String())
}

func TestRouter_UnknownRoute(t *testing.T) {
	srv, _ := newServer(t, "")

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nothing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_ThrottlesAnonymousWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	now := time.Now()
	clock.EXPECT().Now().Return(now).AnyTimes()

	srv := server.New(server.Config{
		RateLimit: ratelimit.Config{RequestsPerSecond: 1, Burst: 1},
	}, executor.Deps{
		Store:     mocks.NewMockStore(ctrl),
		Blobs:     mocks.NewMockBlobStore(ctrl),
		Publisher: messaging.NewNoopPublisher(),
		Revoker:   mocks.NewMockSessionRevoker(ctrl),
		Clock:     clock,
	}, middleware.AuthConfig{})
	router := srv.Router()

	post := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/startups/s-1/views", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		return w.Code
	}

	// Malformed bodies are rejected before reaching the store
	assert.Equal(t, http.StatusBadRequest, post())
	assert.Equal(t, http.StatusTooManyRequests, post())
}
