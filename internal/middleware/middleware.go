package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/metrics"
)

// HeaderRequestID carries the request id across service boundaries.
const HeaderRequestID = "X-Request-ID"

// HeaderUserID carries the authenticated user id, set by the identity-aware
// proxy in front of this service.
const HeaderUserID = "X-User-ID"

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID attaches a request id to the context and response, generating
// one when the caller didn't send one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), requestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, requestID)

		c.Next()
	}
}

// RequestIDFromContext extracts the request id set by RequestID.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok
}

// Metrics records request latency per method, route and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
