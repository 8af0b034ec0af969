package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotes-service/internal/mocks"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func healthEngine(h *HealthHandler) *gin.Engine {
	engine := gin.New()
	h.RegisterHealthRoutesOnEngine(engine)

	return engine
}

func probe(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	return w
}

func TestNewBuildInfo(t *testing.T) {
	bi := NewBuildInfo("1.4.0", "9f2c1e7", "2026-03-02T08:30:00Z")

	assert.Equal(t, BuildInfo{
		Version:   "1.4.0",
		Commit:    "9f2c1e7",
		BuildTime: "2026-03-02T08:30:00Z",
		GoVersion: runtime.Version(),
	}, bi)
}

func TestNewBuildInfo_CommitFallback(t *testing.T) {
	// Test binaries carry no vcs stamp, so the placeholder survives.
	bi := NewBuildInfo("dev", "unknown", "unknown")

	assert.NotEmpty(t, bi.Commit)
	assert.Equal(t, "dev", bi.Version)
}

func TestLiveness(t *testing.T) {
	w := probe(healthEngine(NewHealthHandler(mocks.NewMockHealthRegistry(t), BuildInfo{})), "/-/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var resp livenessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.GreaterOrEqual(t, resp.Uptime, 0.0)
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name     string
		result   *ports.HealthResult
		wantCode int
		wantBody []string
	}{
		{
			name: "repository ready",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{
					"quote-repository": {Status: ports.HealthStatusHealthy, LatencyMS: 0.2},
				},
			},
			wantCode: http.StatusOK,
			wantBody: []string{`"status":"healthy"`, `"quote-repository"`, `"latency_ms":0.2`},
		},
		{
			name: "data file unwritable",
			result: &ports.HealthResult{
				Status: ports.HealthStatusUnhealthy,
				Checks: map[string]*ports.CheckResult{
					"quote-repository": {
						Status:  ports.HealthStatusUnhealthy,
						Message: "data dir not writable",
					},
				},
			},
			wantCode: http.StatusServiceUnavailable,
			wantBody: []string{`"status":"unhealthy"`, `"message":"data dir not writable"`},
		},
		{
			name: "no checks",
			result: &ports.HealthResult{
				Status: ports.HealthStatusHealthy,
				Checks: map[string]*ports.CheckResult{},
			},
			wantCode: http.StatusOK,
			wantBody: []string{`"checks":{}`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.result).Once()

			w := probe(healthEngine(NewHealthHandler(registry, BuildInfo{})), "/-/ready")

			assert.Equal(t, tt.wantCode, w.Code)
			for _, s := range tt.wantBody {
				assert.Contains(t, w.Body.String(), s)
			}
		})
	}
}

func TestBuildInfoHandler(t *testing.T) {
	info := BuildInfo{Version: "1.4.0", Commit: "9f2c1e7", BuildTime: "2026-03-02T08:30:00Z", GoVersion: "go1.25.7"}

	w := probe(healthEngine(NewHealthHandler(mocks.NewMockHealthRegistry(t), info)), "/-/build")

	assert.Equal(t, http.StatusOK, w.Code)

	var got BuildInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, info, got)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	stored := prometheus.NewGauge(prometheus.GaugeOpts{Name: "quotes_stored", Help: "stored"})
	reg.MustRegister(stored)
	stored.Set(3)

	t.Run("handler", func(t *testing.T) {
		w := httptest.NewRecorder()
		MetricsHandler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		assert.Contains(t, w.Body.String(), "quotes_stored 3")
	})

	t.Run("route uses gatherer", func(t *testing.T) {
		h := NewHealthHandler(mocks.NewMockHealthRegistry(t), BuildInfo{}).WithGatherer(reg)

		w := probe(healthEngine(h), "/-/metrics")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "quotes_stored 3")
	})
}

func TestRegisterHealthRoutes(t *testing.T) {
	engine := gin.New()
	NewHealthHandler(mocks.NewMockHealthRegistry(t), BuildInfo{}).RegisterHealthRoutes(engine.Group("/-"))

	var got []string
	for _, r := range engine.Routes() {
		got = append(got, r.Method+" "+r.Path)
	}

	assert.ElementsMatch(t, []string{
		"GET /-/live",
		"GET /-/ready",
		"GET /-/build",
		"GET /-/metrics",
	}, got)
}
