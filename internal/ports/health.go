package ports

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"
)

// ErrDuplicateChecker is returned by Register when the name is taken.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is a dependency the service needs before it can serve
// quotes. The quote repositories implement it and are registered at startup.
type HealthChecker interface {
	// Name keys the check in readiness output. It must be unique.
	Name() string

	// Check returns nil when the dependency is usable.
	Check(ctx context.Context) error
}

// CheckFunc turns fn into a HealthChecker called name.
func CheckFunc(name string, fn func(context.Context) error) HealthChecker {
	return funcChecker{name: name, fn: fn}
}

type funcChecker struct {
	name string
	fn   func(context.Context) error
}

func (f funcChecker) Name() string                    { return f.name }
func (f funcChecker) Check(ctx context.Context) error { return f.fn(ctx) }

// HealthRegistry is what the readiness endpoint consults.
type HealthRegistry interface {
	Register(checker HealthChecker) error
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is the outcome of one check or of all of them.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is the readiness report. Status is unhealthy as soon as any
// single check is.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	CheckedAt time.Time               `json:"checked_at"`
}

// Healthy reports whether every check passed.
func (r *HealthResult) Healthy() bool {
	return r.Status == HealthStatusHealthy
}

// CheckResult is the outcome of one check.
type CheckResult struct {
	Status    HealthStatus `json:"status"`
	Message   string       `json:"message,omitempty"`
	LatencyMS float64      `json:"latency_ms"`
}

// DefaultHealthRegistry runs its checks concurrently and is safe for use
// from multiple goroutines.
type DefaultHealthRegistry struct {
	mu      sync.RWMutex
	checks  map[string]HealthChecker
	timeout time.Duration
}

// HealthRegistryOption configures a DefaultHealthRegistry.
type HealthRegistryOption func(*DefaultHealthRegistry)

// WithCheckTimeout bounds each check. With zero a check only stops when the
// caller's context does.
func WithCheckTimeout(d time.Duration) HealthRegistryOption {
	return func(r *DefaultHealthRegistry) {
		r.timeout = d
	}
}

// NewHealthRegistry returns an empty registry.
func NewHealthRegistry(opts ...HealthRegistryOption) *DefaultHealthRegistry {
	r := &DefaultHealthRegistry{checks: map[string]HealthChecker{}}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds checker. A second checker with the same name is rejected.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.checks[name]; taken {
		return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
	}

	r.checks[name] = checker

	return nil
}

// Names lists the registered checks in sorted order.
func (r *DefaultHealthRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.checks))
}

// CheckAll runs every registered check in parallel and waits for all of them.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	snapshot := maps.Clone(r.checks)
	r.mu.RUnlock()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[string]*CheckResult, len(snapshot))
	)

	for name, checker := range snapshot {
		wg.Go(func() {
			res := r.probe(ctx, checker)

			mu.Lock()
			results[name] = res
			mu.Unlock()
		})
	}

	wg.Wait()

	report := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    results,
		CheckedAt: time.Now().UTC(),
	}

	for _, res := range results {
		if res.Status != HealthStatusHealthy {
			report.Status = HealthStatusUnhealthy
			break
		}
	}

	return report
}

func (r *DefaultHealthRegistry) probe(ctx context.Context, checker HealthChecker) *CheckResult {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	err := checker.Check(ctx)
	res := &CheckResult{
		Status:    HealthStatusHealthy,
		LatencyMS: float64(time.Since(start).Microseconds()) / 1000,
	}

	if err != nil {
		res.Status = HealthStatusUnhealthy
		res.Message = err.Error()
	}

	return res
}
