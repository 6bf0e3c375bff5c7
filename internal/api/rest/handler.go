package rest

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/launchpad/internal/api/middleware"
	"github.com/feral-file/launchpad/internal/api/shared/constants"
	"github.com/feral-file/launchpad/internal/api/shared/dto"
	"github.com/feral-file/launchpad/internal/api/shared/executor"
	"github.com/feral-file/launchpad/internal/domain"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateStartup lists a new startup for the authenticated user
	// POST /api/v1/startups
	CreateStartup(c *gin.Context)

	// ListStartups returns the public directory
	// GET /api/v1/startups?q=<term>&sector=<sector>&category=<category>&industry=<industry>&sort=<newest|upvotes>
	ListStartups(c *gin.Context)

	// ListFeaturedStartups returns the featured startups
	// GET /api/v1/startups/featured
	ListFeaturedStartups(c *gin.Context)

	// GetStartup retrieves a startup by id; the owner receives the dashboard view
	// GET /api/v1/startups/:id
	GetStartup(c *gin.Context)

	// GetStartupBySlug retrieves a startup by routing name
	// GET /api/v1/startups/slug/:slug
	GetStartupBySlug(c *gin.Context)

	// UpdateStartup edits a startup (owner only)
	// PATCH /api/v1/startups/:id
	UpdateStartup(c *gin.Context)

	// DeleteStartup removes a startup and its files (owner only)
	// DELETE /api/v1/startups/:id
	DeleteStartup(c *gin.Context)

	// SetApproval sets the moderation flag (API key only)
	// PUT /api/v1/startups/:id/approval
	SetApproval(c *gin.Context)

	// SetFeatured sets the featured flag (API key only)
	// PUT /api/v1/startups/:id/featured
	SetFeatured(c *gin.Context)

	// ReconcileCounters resets engagement counters to their history lengths (API key only)
	// POST /api/v1/startups/:id/reconcile
	ReconcileCounters(c *gin.Context)

	// RecordViews appends view events; an empty body records one view from the client
	// POST /api/v1/startups/:id/views
	RecordViews(c *gin.Context)

	// RecordUpvotes appends upvote events
	// POST /api/v1/startups/:id/upvotes
	RecordUpvotes(c *gin.Context)

	// RecordVisits appends website visit events
	// POST /api/v1/startups/:id/visits
	RecordVisits(c *gin.Context)

	// CaptureLeads merges viewer leads into a deck or demo history
	// POST /api/v1/startups/:id/assets/:asset/leads
	CaptureLeads(c *gin.Context)

	// AccessAsset opens a deck or demo with an optional password and lead
	// POST /api/v1/startups/:id/assets/:asset/access
	AccessAsset(c *gin.Context)

	// SetAssetPassword sets or clears an asset password (owner only)
	// PUT /api/v1/startups/:id/assets/:asset/password
	SetAssetPassword(c *gin.Context)

	// SetAssetLock locks or unlocks an asset (owner only)
	// PUT /api/v1/startups/:id/assets/:asset/lock
	SetAssetLock(c *gin.Context)

	// SetAssetVisibility shows or hides an asset (owner only)
	// PUT /api/v1/startups/:id/assets/:asset/visibility
	SetAssetVisibility(c *gin.Context)

	// DeleteAsset removes an asset file (owner only)
	// DELETE /api/v1/startups/:id/assets/:asset
	DeleteAsset(c *gin.Context)

	// AddMetrics merges metric reports by period (owner only)
	// POST /api/v1/startups/:id/metrics
	AddMetrics(c *gin.Context)

	// UpdateMetric patches one metric report (owner only)
	// PATCH /api/v1/startups/:id/metrics/:metricId
	UpdateMetric(c *gin.Context)

	// DeleteMetric removes one metric report (owner only)
	// DELETE /api/v1/startups/:id/metrics/:metricId
	DeleteMetric(c *gin.Context)

	// Upload stores a multipart file field named "file"
	// POST /api/v1/uploads
	Upload(c *gin.Context)

	// CreateUser registers the authenticated user
	// POST /api/v1/users
	CreateUser(c *gin.Context)

	// GetCurrentUser returns the authenticated user
	// GET /api/v1/users/me
	GetCurrentUser(c *gin.Context)

	// UpdateCurrentUser edits the authenticated user
	// PATCH /api/v1/users/me
	UpdateCurrentUser(c *gin.Context)

	// DeleteCurrentUser revokes sessions and deletes the authenticated user
	// DELETE /api/v1/users/me
	DeleteCurrentUser(c *gin.Context)

	// GetUser returns a user profile
	// GET /api/v1/users/:id
	GetUser(c *gin.Context)

	// ListUserStartups returns the startups of a user
	// GET /api/v1/users/:id/startups
	ListUserStartups(c *gin.Context)

	// ListTaxonomy returns the sectors, categories or industries
	// GET /api/v1/taxonomy/:kind
	ListTaxonomy(c *gin.Context)

	// GetTaxonomyByName returns one taxonomy entry
	// GET /api/v1/taxonomy/:kind/:name
	GetTaxonomyByName(c *gin.Context)

	// SaveTaxonomy creates or updates an entry by name (API key only)
	// POST /api/v1/taxonomy/:kind
	SaveTaxonomy(c *gin.Context)

	// UpdateTaxonomy edits an entry (API key only)
	// PUT /api/v1/taxonomy/:kind/:id
	UpdateTaxonomy(c *gin.Context)

	// DeleteTaxonomy removes an entry (API key only)
	// DELETE /api/v1/taxonomy/:kind/:id
	DeleteTaxonomy(c *gin.Context)

	// ListResources returns the resource links
	// GET /api/v1/resources
	ListResources(c *gin.Context)

	// CreateResource adds a resource link (API key only)
	// POST /api/v1/resources
	CreateResource(c *gin.Context)

	// DeleteResource removes a resource link (API key only)
	// DELETE /api/v1/resources/:id
	DeleteResource(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
	pinger   Pinger
}

// Pinger reports whether the backing database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor, pinger Pinger) Handler {
	return &handler{
		executor: exec,
		pinger:   pinger,
	}
}

// callerFrom builds the executor caller from the authentication middleware state
func callerFrom(c *gin.Context) executor.Caller {
	return executor.Caller{
		Subject: middleware.Subject(c),
		Admin:   middleware.AuthType(c) == middleware.AUTH_TYPE_APIKEY,
	}
}

// bindJSON decodes the request body into req and runs its validation
func bindJSON(c *gin.Context, req interface{ Validate() error }) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return false
	}
	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return false
	}
	return true
}

func assetParam(c *gin.Context) (domain.Asset, bool) {
	asset, err := domain.ParseAsset(c.Param("asset"))
	if err != nil {
		respondBadRequest(c, "Invalid asset", "must be deck or demo")
		return "", false
	}
	return asset, true
}

func taxonomyKindParam(c *gin.Context) (domain.TaxonomyKind, bool) {
	kind, err := domain.ParseTaxonomyKind(c.Param("kind"))
	if err != nil {
		respondBadRequest(c, "Invalid taxonomy kind", "must be sector, category or industry")
		return "", false
	}
	return kind, true
}

func (h *handler) CreateStartup(c *gin.Context) {
	var req dto.CreateStartupRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.CreateStartup(c.Request.Context(), callerFrom(c), &req)
	if err != nil {
		respondError(c, err, "Failed to create startup")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *handler) ListStartups(c *gin.Context) {
	req, err := ParseListStartupsQuery(c)
	if err != nil {
		respondValidation(c, err)
		return
	}

	resp, err := h.executor.ListStartups(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to list startups")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListFeaturedStartups(c *gin.Context) {
	resp, err := h.executor.ListFeaturedStartups(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list featured startups")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetStartup(c *gin.Context) {
	resp, err := h.executor.GetStartup(c.Request.Context(), callerFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get startup")
		return
	}

	if resp == nil {
		respondNotFound(c, "Startup not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetStartupBySlug(c *gin.Context) {
	resp, err := h.executor.GetStartupByRoutingName(c.Request.Context(), callerFrom(c), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to get startup")
		return
	}

	if resp == nil {
		respondNotFound(c, "Startup not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) UpdateStartup(c *gin.Context) {
	var req dto.UpdateStartupRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.UpdateStartup(c.Request.Context(), callerFrom(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Failed to update startup")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) DeleteStartup(c *gin.Context) {
	if err := h.executor.DeleteStartup(c.Request.Context(), callerFrom(c), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete startup")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) SetApproval(c *gin.Context) {
	var req dto.SetFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.SetApproval(c.Request.Context(), c.Param("id"), req.Value)
	if err != nil {
		respondError(c, err, "Failed to set approval")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) SetFeatured(c *gin.Context) {
	var req dto.SetFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.SetFeatured(c.Request.Context(), c.Param("id"), req.Value)
	if err != nil {
		respondError(c, err, "Failed to set featured")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ReconcileCounters(c *gin.Context) {
	resp, err := h.executor.ReconcileCounters(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to reconcile counters")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) RecordViews(c *gin.Context) {
	h.recordEngagement(c, domain.EngagementViews)
}

func (h *handler) RecordUpvotes(c *gin.Context) {
	h.recordEngagement(c, domain.EngagementUpvotes)
}

func (h *handler) RecordVisits(c *gin.Context) {
	h.recordEngagement(c, domain.EngagementWebsiteVisits)
}

// recordEngagement accepts an explicit event batch, or records a single event
// from the client when the body is empty
func (h *handler) recordEngagement(c *gin.Context, kind domain.EngagementKind) {
	var req dto.EngagementRequest
	err := c.ShouldBindJSON(&req)
	switch {
	case errors.Is(err, io.EOF):
		req.Events = []domain.Event{{IPAddress: c.ClientIP()}}
	case err != nil:
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		respondValidation(c, err)
		return
	}

	resp, err := h.executor.RecordEngagement(c.Request.Context(), c.Param("id"), kind, req.Events)
	if err != nil {
		respondError(c, err, "Failed to record engagement")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) CaptureLeads(c *gin.Context) {
	asset, ok := assetParam(c)
	if !ok {
		return
	}

	var req dto.CaptureLeadsRequest
	if !bindJSON(c, &req) {
		return
	}

	for i := range req.Leads {
		if req.Leads[i].IPAddress == "" {
			req.Leads[i].IPAddress = c.ClientIP()
		}
	}

	resp, err := h.executor.CaptureLeads(c.Request.Context(), c.Param("id"), asset, req.Leads)
	if err != nil {
		respondError(c, err, "Failed to capture leads")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) AccessAsset(c *gin.Context) {
	asset, ok := assetParam(c)
	if !ok {
		return
	}

	var req dto.AccessAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.AccessAsset(c.Request.Context(), c.Param("id"), asset, &req, c.ClientIP())
	if err != nil {
		respondError(c, err, "Failed to access asset")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) SetAssetPassword(c *gin.Context) {
	asset, ok := assetParam(c)
	if !ok {
		return
	}

	var req dto.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.SetAssetPassword(c.Request.Context(), callerFrom(c), c.Param("id"), asset, req.Password)
	if err != nil {
		respondError(c, err, "Failed to set asset password")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) SetAssetLock(c *gin.Context) {
	asset, ok := assetParam(c)
	if !ok {
		return
	}

	var req dto.SetLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.SetAssetLock(c.Request.Context(), callerFrom(c), c.Param("id"), asset, req.Locked)
	if err != nil {
		respondError(c, err, "Failed to set asset lock")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) SetAssetVisibility(c *gin.Context) {
	asset, ok := assetParam(c)
	if !ok {
		return
	}

	var req dto.SetVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.SetAssetVisibility(c.Request.Context(), callerFrom(c), c.Param("id"), asset, req.Shown)
	if err != nil {
		respondError(c, err, "Failed to set asset visibility")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) DeleteAsset(c *gin.Context) {
	asset, ok := assetParam(c)
	if !ok {
		return
	}

	resp, err := h.executor.DeleteAsset(c.Request.Context(), callerFrom(c), c.Param("id"), asset)
	if err != nil {
		respondError(c, err, "Failed to delete asset")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) AddMetrics(c *gin.Context) {
	var req dto.AddMetricsRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.AddMetrics(c.Request.Context(), callerFrom(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Failed to add metrics")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) UpdateMetric(c *gin.Context) {
	var patch domain.MetricPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.UpdateMetric(c.Request.Context(), callerFrom(c), c.Param("id"), c.Param("metricId"), patch)
	if err != nil {
		respondError(c, err, "Failed to update metric")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) DeleteMetric(c *gin.Context) {
	resp, err := h.executor.DeleteMetric(c.Request.Context(), callerFrom(c), c.Param("id"), c.Param("metricId"))
	if err != nil {
		respondError(c, err, "Failed to delete metric")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, constants.MAX_UPLOAD_SIZE+(1<<20))

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respondBadRequest(c, "A multipart file field named file is required", err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, constants.MAX_UPLOAD_SIZE+1))
	if err != nil {
		respondBadRequest(c, "Failed to read uploaded file", err.Error())
		return
	}

	resp, err := h.executor.Upload(c.Request.Context(), header.Filename, data)
	if err != nil {
		respondError(c, err, "Failed to upload file")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *handler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.CreateUser(c.Request.Context(), middleware.Subject(c), &req)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetCurrentUser(c *gin.Context) {
	resp, err := h.executor.GetUser(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		respondError(c, err, "Failed to get user")
		return
	}

	if resp == nil {
		respondNotFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) UpdateCurrentUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.UpdateUser(c.Request.Context(), middleware.Subject(c), &req)
	if err != nil {
		respondError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) DeleteCurrentUser(c *gin.Context) {
	if err := h.executor.DeleteUser(c.Request.Context(), middleware.Subject(c)); err != nil {
		respondError(c, err, "Failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) GetUser(c *gin.Context) {
	resp, err := h.executor.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get user")
		return
	}

	if resp == nil {
		respondNotFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListUserStartups(c *gin.Context) {
	resp, err := h.executor.ListUserStartups(c.Request.Context(), callerFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list user startups")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListTaxonomy(c *gin.Context) {
	kind, ok := taxonomyKindParam(c)
	if !ok {
		return
	}

	resp, err := h.executor.ListTaxonomy(c.Request.Context(), kind)
	if err != nil {
		respondError(c, err, "Failed to list taxonomy")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetTaxonomyByName(c *gin.Context) {
	kind, ok := taxonomyKindParam(c)
	if !ok {
		return
	}

	resp, err := h.executor.GetTaxonomyByName(c.Request.Context(), kind, c.Param("name"))
	if err != nil {
		respondError(c, err, "Failed to get taxonomy entry")
		return
	}

	if resp == nil {
		respondNotFound(c, "Taxonomy entry not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) SaveTaxonomy(c *gin.Context) {
	kind, ok := taxonomyKindParam(c)
	if !ok {
		return
	}

	var req dto.SaveTaxonomyRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.SaveTaxonomy(c.Request.Context(), kind, &req)
	if err != nil {
		respondError(c, err, "Failed to save taxonomy entry")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) UpdateTaxonomy(c *gin.Context) {
	kind, ok := taxonomyKindParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTaxonomyRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.UpdateTaxonomy(c.Request.Context(), kind, c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Failed to update taxonomy entry")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) DeleteTaxonomy(c *gin.Context) {
	kind, ok := taxonomyKindParam(c)
	if !ok {
		return
	}

	if err := h.executor.DeleteTaxonomy(c.Request.Context(), kind, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete taxonomy entry")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) ListResources(c *gin.Context) {
	resp, err := h.executor.ListResources(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list resources")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) CreateResource(c *gin.Context) {
	var req dto.CreateResourceRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.executor.CreateResource(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create resource")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *handler) DeleteResource(c *gin.Context) {
	if err := h.executor.DeleteResource(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete resource")
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	if h.pinger != nil {
		if err := h.pinger.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "launchpad-api",
	})
}
