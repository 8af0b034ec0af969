package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// Timeout bounds each request with a context deadline of d; d <= 0 leaves
// requests unbounded.
//
// Handlers are not interrupted. Repository calls observe the deadline and
// fail with context.DeadlineExceeded, which ErrorResponder turns into a 504.
func Timeout(d time.Duration) gin.HandlerFunc {
	if d <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			logging.FromContext(ctx).Warn("request deadline exceeded",
				slog.String("route", c.FullPath()),
				slog.Duration("timeout", d),
			)
		}
	}
}
