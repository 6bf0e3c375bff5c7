package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/launchpad/internal/api/middleware"
)

// SetupRoutes configures all REST API routes. The throttle handlers run in
// front of the anonymous write routes.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, throttle ...gin.HandlerFunc) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	auth := middleware.Auth(authCfg)
	optionalAuth := middleware.OptionalAuth(authCfg)
	admin := []gin.HandlerFunc{auth, middleware.RequireAPIKey()}
	open := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, throttle...), h)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Startup directory (public read access, owners see the dashboard view)
		v1.GET("/startups", handler.ListStartups)
		v1.GET("/startups/featured", handler.ListFeaturedStartups)
		v1.GET("/startups/slug/:slug", optionalAuth, handler.GetStartupBySlug)
		v1.GET("/startups/:id", optionalAuth, handler.GetStartup)

		// Startup management (requires authentication)
		v1.POST("/startups", auth, middleware.RequireSubject(), handler.CreateStartup)
		v1.PATCH("/startups/:id", auth, handler.UpdateStartup)
		v1.DELETE("/startups/:id", auth, handler.DeleteStartup)

		// Moderation (requires API key authentication only)
		v1.PUT("/startups/:id/approval", append(admin, handler.SetApproval)...)
		v1.PUT("/startups/:id/featured", append(admin, handler.SetFeatured)...)
		v1.POST("/startups/:id/reconcile", append(admin, handler.ReconcileCounters)...)

		// Engagement (open, no authentication required)
		v1.POST("/startups/:id/views", open(handler.RecordViews)...)
		v1.POST("/startups/:id/upvotes", open(handler.RecordUpvotes)...)
		v1.POST("/startups/:id/visits", open(handler.RecordVisits)...)

		// Deck and demo access (open, no authentication required)
		v1.POST("/startups/:id/assets/:asset/leads", open(handler.CaptureLeads)...)
		v1.POST("/startups/:id/assets/:asset/access", open(handler.AccessAsset)...)

		// Deck and demo gate (requires authentication)
		v1.PUT("/startups/:id/assets/:asset/password", auth, handler.SetAssetPassword)
		v1.PUT("/startups/:id/assets/:asset/lock", auth, handler.SetAssetLock)
		v1.PUT("/startups/:id/assets/:asset/visibility", auth, handler.SetAssetVisibility)
		v1.DELETE("/startups/:id/assets/:asset", auth, handler.DeleteAsset)

		// Metric reports (requires authentication)
		v1.POST("/startups/:id/metrics", auth, handler.AddMetrics)
		v1.PATCH("/startups/:id/metrics/:metricId", auth, handler.UpdateMetric)
		v1.DELETE("/startups/:id/metrics/:metricId", auth, handler.DeleteMetric)

		// File uploads (requires authentication)
		v1.POST("/uploads", auth, handler.Upload)

		// Users
		v1.POST("/users", auth, middleware.RequireSubject(), handler.CreateUser)
		v1.GET("/users/me", auth, middleware.RequireSubject(), handler.GetCurrentUser)
		v1.PATCH("/users/me", auth, middleware.RequireSubject(), handler.UpdateCurrentUser)
		v1.DELETE("/users/me", auth, middleware.RequireSubject(), handler.DeleteCurrentUser)
		v1.GET("/users/:id", handler.GetUser)
		v1.GET("/users/:id/startups", optionalAuth, handler.ListUserStartups)

		// Taxonomy (public read access, writes require API key authentication)
		v1.GET("/taxonomy/:kind", handler.ListTaxonomy)
		v1.GET("/taxonomy/:kind/:name", handler.GetTaxonomyByName)
		v1.POST("/taxonomy/:kind", append(admin, handler.SaveTaxonomy)...)
		v1.PUT("/taxonomy/:kind/:id", append(admin, handler.UpdateTaxonomy)...)
		v1.DELETE("/taxonomy/:kind/:id", append(admin, handler.DeleteTaxonomy)...)

		// Resources (public read access, writes require API key authentication)
		v1.GET("/resources", handler.ListResources)
		v1.POST("/resources", append(admin, handler.CreateResource)...)
		v1.DELETE("/resources/:id", append(admin, handler.DeleteResource)...)
	}
}
