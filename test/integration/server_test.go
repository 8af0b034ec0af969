//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/jsamuelsen/quotes-service/internal/adapters/http"
	"github.com/jsamuelsen/quotes-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotes-service/internal/adapters/repository/instrumented"
	"github.com/jsamuelsen/quotes-service/internal/app"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// repository is what the test server needs from a store.
type repository interface {
	ports.QuoteRepository
	ports.HealthChecker
	Len() int
}

// newQuotesServer serves newQuotesHandler on a loopback listener.
func newQuotesServer(tb testing.TB, repo repository) *httptest.Server {
	tb.Helper()

	h, err := newQuotesHandler(repo)
	require.NoError(tb, err)

	ts := httptest.NewServer(h)
	tb.Cleanup(ts.Close)

	return ts
}

// newQuotesHandler wires the real router over repo the way cmd/service
// does. Routes are mounted at the root.
func newQuotesHandler(repo repository) (http.Handler, error) {
	return newQuotesHandlerFor(repo, &config.ServerConfig{
		Host:           "127.0.0.1",
		Port:           0,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   5 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxRequestSize: 1 << 20,
		RequestTimeout: 5 * time.Second,
	})
}

// newQuotesHandlerFor is newQuotesHandler with caller-supplied server
// settings, so base path, body limit and request timeout come from serverCfg.
func newQuotesHandlerFor(repo repository, serverCfg *config.ServerConfig) (http.Handler, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()

	health := ports.NewHealthRegistry()
	if err := health.Register(repo); err != nil {
		return nil, err
	}

	svc := app.NewQuoteService(app.QuoteServiceConfig{
		Repository: instrumented.New(repo, reg),
		Logger:     logger,
	})

	srv := httpadapter.New(serverCfg, logger)
	httpadapter.SetupRouter(srv.Engine(), httpadapter.NewDefaultRouterConfig(
		logger,
		&config.AppConfig{Name: "quotes-service", Version: "integration", Environment: "test"},
		serverCfg,
		handlers.NewHealthHandler(health, handlers.NewBuildInfo("integration", "none", "now")).WithGatherer(reg),
		handlers.NewQuoteHandler(svc),
	))

	return srv.Engine(), nil
}
