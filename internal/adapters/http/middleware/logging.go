package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
)

// Logging puts a logger derived from logger on the request context, tagged
// with whichever of request_id, correlation_id and trace_id are known, then
// writes one line per finished request. Register it after the ID and
// tracing middleware.
//
// Probe traffic under /-/ gets the tagged logger but no request lines.
func Logging(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := tagged(logging.WithContext(c.Request.Context(), logger))
		c.Request = c.Request.WithContext(ctx)

		if strings.HasPrefix(c.Request.URL.Path, "/-/") {
			c.Next()
			return
		}

		log := logging.FromContext(ctx)
		target := c.Request.URL.RequestURI()
		start := time.Now()

		log.DebugContext(ctx, "request started",
			slog.String("method", c.Request.Method),
			slog.String("path", target),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()

		log.Log(ctx, levelFor(status), "request completed",
			slog.String("method", c.Request.Method),
			slog.String("path", target),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", elapsed),
			slog.Int64("latency_ms", elapsed.Milliseconds()),
			slog.Int("bytes", c.Writer.Size()),
		)
	}
}

func tagged(ctx context.Context) context.Context {
	if id := RequestIDFromContext(ctx); id != "" {
		ctx = logging.WithRequestID(ctx, id)
	}

	if id := CorrelationIDFromContext(ctx); id != "" {
		ctx = logging.WithCorrelationID(ctx, id)
	}

	if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
		ctx = logging.WithTraceID(ctx, sc.TraceID().String())
	}

	return ctx
}

// levelFor maps server faults to ERROR and client faults to WARN.
func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
