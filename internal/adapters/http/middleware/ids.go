// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// HeaderRequestID is the header name for request ID.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID is the header name for correlation ID.
	// Unlike request ID (per-request), correlation ID tracks an entire
	// business transaction across multiple services.
	HeaderCorrelationID = "X-Correlation-ID"
)

type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

// RequestID returns middleware that extracts or generates a request ID.
// The ID is taken from X-Request-ID when present, otherwise a new UUID v4.
// It is echoed back in the response header and stored on the request
// context, where RequestIDFromContext finds it.
func RequestID() gin.HandlerFunc {
	return idMiddleware(HeaderRequestID, requestIDKey)
}

// CorrelationID returns middleware that propagates or starts a correlation ID.
func CorrelationID() gin.HandlerFunc {
	return idMiddleware(HeaderCorrelationID, correlationIDKey)
}

func idMiddleware(header string, key idKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(header)
		if id == "" {
			id = uuid.New().String()
		}

		c.Header(header, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), key, id))

		c.Next()
	}
}

// RequestIDFromContext returns the ID stored by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return idFrom(ctx, requestIDKey)
}

// CorrelationIDFromContext returns the ID stored by CorrelationID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return idFrom(ctx, correlationIDKey)
}

func idFrom(ctx context.Context, key idKey) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(key).(string)

	return id
}
