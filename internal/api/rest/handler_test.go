package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/launchpad/internal/api/middleware"
	"github.com/feral-file/launchpad/internal/api/rest"
	"github.com/feral-file/launchpad/internal/api/shared/dto"
	apierrors "github.com/feral-file/launchpad/internal/api/shared/errors"
	"github.com/feral-file/launchpad/internal/api/shared/executor"
	"github.com/feral-file/launchpad/internal/domain"
	"github.com/feral-file/launchpad/internal/identity"
	"github.com/feral-file/launchpad/internal/mocks"
)

const (
	testAPIKey  = "admin-key"
	testToken   = "founder-token"
	testSubject = "user_founder"
	testStartup = "0b7f0a6e-3c55-4a0e-9d43-2f1f0d1a8c11"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type routerFixture struct {
	router *gin.Engine
	exec   *mocks.MockAPIExecutor
	pinger *mocks.MockPinger
}

func newRouter(t *testing.T) *routerFixture {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)
	pinger := mocks.NewMockPinger(ctrl)
	verifier := mocks.NewMockVerifier(ctrl)
	verifier.EXPECT().Verify(testToken).Return(&identity.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: testSubject},
	}, nil).AnyTimes()

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(exec, pinger), middleware.AuthConfig{
		Verifier: verifier,
		APIKeys:  []string{testAPIKey},
	})

	return &routerFixture{router: router, exec: exec, pinger: pinger}
}

func (f *routerFixture) do(method, path, auth string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) apierrors.ErrorCode {
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr.Code
}

func TestHealthCheck(t *testing.T) {
	f := newRouter(t)

	f.pinger.EXPECT().Ping(gomock.Any()).Return(nil)
	w := f.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")

	f.pinger.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	w = f.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unhealthy")
}

func TestGetStartup_NotFound(t *testing.T) {
	f := newRouter(t)
	f.exec.EXPECT().GetStartup(gomock.Any(), executor.Caller{}, testStartup).Return(nil, nil)

	w := f.do(http.MethodGet, "/api/v1/startups/"+testStartup, "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apierrors.ErrCodeNotFound, errorCode(t, w))
}

func TestGetStartup_OwnerToken(t *testing.T) {
	f := newRouter(t)
	f.exec.EXPECT().
		GetStartup(gomock.Any(), executor.Caller{Subject: testSubject}, testStartup).
		Return(&dto.StartupResponse{ID: testStartup, Name: "Acme"}, nil)

	w := f.do(http.MethodGet, "/api/v1/startups/"+testStartup, "Bearer "+testToken, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.StartupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Acme", resp.Name)
}

func TestGetStartupBySlug(t *testing.T) {
	f := newRouter(t)
	f.exec.EXPECT().
		GetStartupByRoutingName(gomock.Any(), executor.Caller{}, "acme").
		Return(&dto.StartupResponse{ID: testStartup, RoutingName: "acme"}, nil)

	w := f.do(http.MethodGet, "/api/v1/startups/slug/acme", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateStartup(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		f := newRouter(t)
		w := f.do(http.MethodPost, "/api/v1/startups", "", map[string]any{"name": "Acme"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("api key has no subject", func(t *testing.T) {
		f := newRouter(t)
		w := f.do(http.MethodPost, "/api/v1/startups", "ApiKey "+testAPIKey, map[string]any{"name": "Acme"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		f := newRouter(t)
		w := f.do(http.MethodPost, "/api/v1/startups", "Bearer "+testToken, map[string]any{"name": "Acme"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, apierrors.ErrCodeValidationFailed, errorCode(t, w))
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newRouter(t)
		w := f.do(http.MethodPost, "/api/v1/startups", "Bearer "+testToken, "{")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		f := newRouter(t)
		f.exec.EXPECT().
			CreateStartup(gomock.Any(), executor.Caller{Subject: testSubject}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ executor.Caller, req *dto.CreateStartupRequest) (*dto.StartupResponse, error) {
				assert.Equal(t, "acme", req.RoutingName)
				return &dto.StartupResponse{ID: testStartup, Name: req.Name, RoutingName: req.RoutingName}, nil
			})

		w := f.do(http.MethodPost, "/api/v1/startups", "Bearer "+testToken,
			map[string]any{"name": "Acme", "routingName": "acme"})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("forbidden occupation", func(t *testing.T) {
		f := newRouter(t)
		f.exec.EXPECT().
			CreateStartup(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, apierrors.NewForbiddenError("only founders can list startups"))

		w := f.do(http.MethodPost, "/api/v1/startups", "Bearer "+testToken,
			map[string]any{"name": "Acme", "routingName": "acme"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestListStartups(t *testing.T) {
	t.Run("defaults to newest", func(t *testing.T) {
		f := newRouter(t)
		f.exec.EXPECT().
			ListStartups(gomock.Any(), dto.ListStartupsRequest{SearchTerm: "Acme", Sector: "fintech", Sort: "newest"}).
			Return(&dto.StartupListResponse{Startups: []*dto.StartupResponse{}}, nil)

		w := f.do(http.MethodGet, "/api/v1/startups?q=Acme&sector=fintech", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects unknown sort", func(t *testing.T) {
		f := newRouter(t)
		w := f.do(http.MethodGet, "/api/v1/startups?sort=oldest", "", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestModerationRequiresAPIKey(t *testing.T) {
	f := newRouter(t)

	w := f.do(http.MethodPut, "/api/v1/startups/"+testStartup+"/approval", "Bearer "+testToken, map[string]any{"value": true})
	assert.Equal(t, http.StatusForbidden, w.Code)

	f.exec.EXPECT().SetApproval(gomock.Any(), testStartup, true).
		Return(&dto.StartupResponse{ID: testStartup, Approved: true}, nil)
	w = f.do(http.MethodPut, "/api/v1/startups/"+testStartup+"/approval", "ApiKey "+testAPIKey, map[string]any{"value": true})
	assert.Equal(t, http.StatusOK, w.Code)

	f.exec.EXPECT().SetFeatured(gomock.Any(), testStartup, false).
		Return(&dto.StartupResponse{ID: testStartup}, nil)
	w = f.do(http.MethodPut, "/api/v1/startups/"+testStartup+"/featured", "ApiKey "+testAPIKey, map[string]any{"value": false})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecordEngagement(t *testing.T) {
	t.Run("empty body records one view from the client", func(t *testing.T) {
		f := newRouter(t)
		f.exec.EXPECT().
			RecordEngagement(gomock.Any(), testStartup, domain.EngagementViews, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, kind domain.EngagementKind, events []domain.Event) (*dto.EngagementResponse, error) {
				require.Len(t, events, 1)
				assert.Equal(t, "192.0.2.1", events[0].IPAddress)
				return &dto.EngagementResponse{Kind: kind, Recorded: 1, Total: 1}, nil
			})

		w := f.do(http.MethodPost, "/api/v1/startups/"+testStartup+"/views", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("explicit empty batch is passed through", func(t *testing.T) {
		f := newRouter(t)
		f.exec.EXPECT().
			RecordEngagement(gomock.Any(), testStartup, domain.EngagementUpvotes, gomock.Len(0)).
			Return(&dto.EngagementResponse{Kind: domain.EngagementUpvotes, Total: 4}, nil)

		w := f.do(http.MethodPost, "/api/v1/startups/"+testStartup+"/upvotes", "", map[string]any{"events": []any{}})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("visits map to website visits", func(t *testing.T) {
		f := newRouter(t)
		f.exec.EXPECT().
			RecordEngagement(gomock.Any(), testStartup, domain.EngagementWebsiteVisits, gomock.Len(2)).
			Return(&dto.EngagementResponse{Kind: domain.EngagementWebsiteVisits, Recorded: 2, Total: 2}, nil)

		w := f.do(http.MethodPost, "/api/v1/startups/"+testStartup+"/visits", "",
			map[string]any{"events": []map[string]any{{"userId": "u1"}, {"userId": "u2"}}})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown startup", func(t *testing.T) {
		f := newRouter(t)
		f.exec.EXPECT().
			RecordEngagement(gomock.Any(), testStartup, domain.EngagementViews, gomock.Any()).
			Return(nil, apierrors.FromDomain(domain.ErrStartupNotFound, "Failed to record engagement"))

		w := f.do(http.MethodPost, "/api/v1/startups/"+testStartup+"/views", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCaptureLeads_FillsClientIP(t *testing.T) {
	f := newRouter(t)
	f.exec.EXPECT().
		CaptureLeads(gomock.Any(), testStartup, domain.AssetDeck, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, asset domain.Asset, leads []domain.Lead) (*dto.LeadCaptureResponse, error) {
			require.Len(t, leads, 2)
			assert.Equal(t, "192.0.2.1", leads[0].IPAddress)
			assert.Equal(t, "203.0.113.7", leads[1].IPAddress)
			return &dto.LeadCaptureResponse{Asset: asset, Added: 2, Total: 2}, nil
		})

	w := f.do(http.MethodPost, "/api/v1/startups/"+testStartup+"/assets/deck/leads", "", map[string]any{
		"leads": []map[string]any{
			{"emailAddress": "a@example.com"},
			{"emailAddress": "b@example.com", "ipAddress": "203.0.113.7"},
		},
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAccessAsset(t *testing.T) {
	t.Run("unknown asset", func(t *testing.T) {
		f := newRouter(t)
		w := f.do(http.MethodPost, "/api/v1/startups/"+testStartup+"/assets/video/access", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newRouter(t)
		f.exec.EXPECT().
			AccessAsset(gomock.Any(), testStartup, domain.AssetDemo, gomock.Any(), "192.0.2.1").
			Return(nil, apierrors.FromDomain(domain.ErrInvalidPassword, "Failed to access asset"))

		w := f.do(http.MethodPost, "/api/v1/startups/"+testStartup+"/assets/demo/access", "", map[string]any{"password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("hidden asset", func(t *testing.T) {
		f := newRouter(t)
		f.exec.EXPECT().
			AccessAsset(gomock.Any(), testStartup, domain.AssetDeck, gomock.Any(), gomock.Any()).
			Return(nil, apierrors.FromDomain(domain.ErrAssetHidden, "Failed to access asset"))

		w := f.do(http.MethodPost, "/api/v1/startups/"+testStartup+"/assets/deck/access", "", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("granted", func(t *testing.T) {
		f := newRouter(t)
		f.exec.EXPECT().
			AccessAsset(gomock.Any(), testStartup, domain.AssetDeck, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, asset domain.Asset, req *dto.AccessAssetRequest, _ string) (*dto.AssetAccessResponse, error) {
				assert.Equal(t, "s3cret", req.Password)
				require.NotNil(t, req.Lead)
				return &dto.AssetAccessResponse{Asset: asset, URL: "https://cdn.example.com/deck.pdf"}, nil
			})

		w := f.do(http.MethodPost, "/api/v1/startups/"+testStartup+"/assets/deck/access", "",
			map[string]any{"password": "s3cret", "lead": map[string]any{"emailAddress": "vc@example.com"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "deck.pdf")
	})
}

func TestAssetGateRequiresAuthentication(t *testing.T) {
	f := newRouter(t)

	w := f.do(http.MethodPut, "/api/v1/startups/"+testStartup+"/assets/deck/lock", "", map[string]any{"locked": true})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	f.exec.EXPECT().
		SetAssetLock(gomock.Any(), executor.Caller{Subject: testSubject}, testStartup, domain.AssetDeck, true).
		Return(nil, apierrors.FromDomain(domain.ErrForbidden, "Failed to set asset lock"))
	w = f.do(http.MethodPut, "/api/v1/startups/"+testStartup+"/assets/deck/lock", "Bearer "+testToken, map[string]any{"locked": true})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateMetric(t *testing.T) {
	f := newRouter(t)
	f.exec.EXPECT().
		UpdateMetric(gomock.Any(), executor.Caller{Subject: testSubject}, testStartup, "01HZX", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ executor.Caller, _, _ string, patch domain.MetricPatch) (*dto.MetricsResponse, error) {
			require.NotNil(t, patch.ActiveUsers)
			assert.Equal(t, "1200", *patch.ActiveUsers)
			assert.Nil(t, patch.Period)
			return &dto.MetricsResponse{}, nil
		})

	w := f.do(http.MethodPatch, "/api/v1/startups/"+testStartup+"/metrics/01HZX", "Bearer "+testToken,
		map[string]any{"activeUsers": "1200"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpload(t *testing.T) {
	f := newRouter(t)
	content := []byte("%PDF-1.4 pitch deck")
	f.exec.EXPECT().
		Upload(gomock.Any(), "deck.pdf", content).
		Return(&dto.UploadResponse{StorageID: "blob-1", URL: "https://cdn.example.com/blob-1", ContentType: "application/pdf"}, nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "deck.pdf")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+testToken)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "blob-1")
}

func TestUpload_MissingFile(t *testing.T) {
	f := newRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", strings.NewReader("not multipart"))
	req.Header.Set("Authorization", "Bearer "+testToken)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCurrentUser(t *testing.T) {
	t.Run("not registered", func(t *testing.T) {
		f := newRouter(t)
		f.exec.EXPECT().GetUser(gomock.Any(), testSubject).Return(nil, nil)

		w := f.do(http.MethodGet, "/api/v1/users/me", "Bearer "+testToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		f := newRouter(t)
		f.exec.EXPECT().DeleteUser(gomock.Any(), testSubject).Return(nil)

		w := f.do(http.MethodDelete, "/api/v1/users/me", "Bearer "+testToken, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("session revocation failure", func(t *testing.T) {
		f := newRouter(t)
		f.exec.EXPECT().DeleteUser(gomock.Any(), testSubject).
			Return(apierrors.NewServiceError("Failed to revoke sessions"))

		w := f.do(http.MethodDelete, "/api/v1/users/me", "Bearer "+testToken, nil)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestTaxonomy(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		f := newRouter(t)
		w := f.do(http.MethodGet, "/api/v1/taxonomy/planets", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("plural route name", func(t *testing.T) {
		f := newRouter(t)
		f.exec.EXPECT().ListTaxonomy(gomock.Any(), domain.TaxonomyIndustry).
			Return(&dto.TaxonomyListResponse{Kind: domain.TaxonomyIndustry}, nil)

		w := f.do(http.MethodGet, "/api/v1/taxonomy/industries", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("writes require api key", func(t *testing.T) {
		f := newRouter(t)
		w := f.do(http.MethodPost, "/api/v1/taxonomy/sector", "Bearer "+testToken, map[string]any{"name": "Fintech"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing entry", func(t *testing.T) {
		f := newRouter(t)
		f.exec.EXPECT().GetTaxonomyByName(gomock.Any(), domain.TaxonomySector, "Fintech").Return(nil, nil)

		w := f.do(http.MethodGet, "/api/v1/taxonomy/sector/Fintech", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteResource(t *testing.T) {
	f := newRouter(t)
	f.exec.EXPECT().DeleteResource(gomock.Any(), "res-1").Return(nil)

	w := f.do(http.MethodDelete, "/api/v1/resources/res-1", "ApiKey "+testAPIKey, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
