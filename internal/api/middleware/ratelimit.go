package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/launchpad/internal/api/shared/errors"
	"github.com/feral-file/launchpad/internal/logger"
	"github.com/feral-file/launchpad/internal/metrics"
	"github.com/feral-file/launchpad/internal/ratelimit"
)

// RateLimit rejects a client with 429 once its token bucket is empty.
// Clients are keyed by IP address.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}

		metrics.RateLimited.WithLabelValues(c.FullPath()).Inc()
		logger.DebugCtx(c.Request.Context(), "Request rate limited",
			zap.String("client_ip", c.ClientIP()),
			zap.String("path", c.Request.URL.Path),
		)

		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, apierrors.NewTooManyRequestsError("Too many requests"))
	}
}
