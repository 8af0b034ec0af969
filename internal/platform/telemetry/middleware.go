package telemetry

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/jsamuelsen/quotes-service/telemetry"

	// TraceIDHeader carries the active trace ID back to the client.
	TraceIDHeader = "X-Trace-ID"

	unmatchedRoute = "unmatched"
)

// serverInstruments are the HTTP server instruments from the OpenTelemetry
// semantic conventions.
type serverInstruments struct {
	duration metric.Float64Histogram
	active   metric.Int64UpDownCounter
}

func newServerInstruments(meter metric.Meter) (*serverInstruments, error) {
	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of HTTP server requests"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, err
	}

	active, err := meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP server requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &serverInstruments{duration: duration, active: active}, nil
}

func (s *serverInstruments) begin(ctx context.Context, method, route string) func(status int) {
	start := time.Now()
	base := []attribute.KeyValue{
		semconv.HTTPRequestMethodKey.String(method),
		semconv.HTTPRoute(route),
	}

	s.active.Add(ctx, 1, metric.WithAttributes(base...))

	return func(status int) {
		s.active.Add(ctx, -1, metric.WithAttributes(base...))
		s.duration.Record(ctx, time.Since(start).Seconds(),
			metric.WithAttributes(append(base, semconv.HTTPResponseStatusCode(status))...))
	}
}

// Middleware records request duration and in-flight counts, and echoes the
// trace ID in X-Trace-ID. Register it after TracingMiddleware.
func Middleware() gin.HandlerFunc {
	instruments, err := newServerInstruments(otel.Meter(instrumentationName))
	if err != nil {
		// Metrics are lost but requests still flow.
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			c.Header(TraceIDHeader, sc.TraceID().String())
		}

		if instruments == nil {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		finish := instruments.begin(ctx, c.Request.Method, route)
		c.Next()
		finish(c.Writer.Status())
	}
}

// TracingMiddleware starts a server span per request, except for the
// operational endpoints under /-/.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName,
		otelgin.WithGinFilter(func(c *gin.Context) bool {
			return !strings.HasPrefix(c.Request.URL.Path, "/-/")
		}),
	)
}
