package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNew_DisabledIsNoop(t *testing.T) {
	p, err := New(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)

	assert.False(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNew_DisabledStillPropagates(t *testing.T) {
	prev := otel.GetTextMapPropagator()
	t.Cleanup(func() { otel.SetTextMapPropagator(prev) })

	_, err := New(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)

	assert.Contains(t, otel.GetTextMapPropagator().Fields(), "traceparent")
}

func TestProvider_ShutdownAfterCancel(t *testing.T) {
	p := &Provider{tracerProvider: sdktrace.NewTracerProvider()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, p.Shutdown(ctx), "a canceled parent must not abort the final flush")
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{rate: 1, want: "root:AlwaysOnSampler"},
		{rate: 2, want: "root:AlwaysOnSampler"},
		{rate: 0, want: "root:AlwaysOffSampler"},
		{rate: 0.1, want: "root:TraceIDRatioBased{0.1}"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.rate), func(t *testing.T) {
			assert.Contains(t, sampler(tt.rate).Description(), tt.want)
		})
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource(&Config{
		ServiceName: "quotes-service",
		Version:     "1.2.3",
		Environment: "test",
		Attributes:  map[string]string{"quotes.repository.driver": "file"},
	})
	require.NoError(t, err)

	got := make(map[string]string)
	for _, kv := range res.Attributes() {
		got[string(kv.Key)] = kv.Value.Emit()
	}

	assert.Equal(t, "quotes-service", got["service.name"])
	assert.Equal(t, "1.2.3", got["service.version"])
	assert.Equal(t, "test", got["deployment.environment"])
	assert.Equal(t, "file", got["quotes.repository.driver"])
	assert.NotEmpty(t, got["service.instance.id"])
}

func TestMiddleware_SetsTraceIDHeader(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	router := gin.New()
	router.Use(TracingMiddleware("quotes-service"), Middleware())
	router.GET("/api/quotes", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })
	router.GET("/-/live", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("api routes are traced", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quotes", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, w.Header().Get(TraceIDHeader), 32)
	})

	t.Run("health routes are not traced", func(t *testing.T) {
		before := len(recorder.Ended())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get(TraceIDHeader))
		assert.Len(t, recorder.Ended(), before)
	})
}

func TestMiddleware_WithoutSpan(t *testing.T) {
	router := gin.New()
	router.Use(Middleware())
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get(TraceIDHeader))
}

func TestServerInstruments(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	instruments, err := newServerInstruments(mp.Meter("test"))
	require.NoError(t, err)

	finish := instruments.begin(context.Background(), http.MethodGet, "/api/quotes/:id")
	finish(http.StatusNotFound)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	hist, ok := byName["http.server.request.duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)

	status, ok := hist.DataPoints[0].Attributes.Value("http.response.status_code")
	require.True(t, ok)
	assert.Equal(t, int64(http.StatusNotFound), status.AsInt64())

	route, _ := hist.DataPoints[0].Attributes.Value("http.route")
	assert.Equal(t, "/api/quotes/:id", route.AsString())

	active, ok := byName["http.server.active_requests"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, active.DataPoints, 1)
	assert.Equal(t, int64(0), active.DataPoints[0].Value)
}
