// Package instrumented decorates a quote repository with Prometheus metrics.
package instrumented

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// Store is a quote repository that can count what it holds.
type Store interface {
	ports.QuoteRepository
	Len() int
}

// Repository wraps a Store and counts every call by operation and outcome.
// The quotes_stored gauge asks the store for its size whenever it is
// collected.
type Repository struct {
	next   Store
	ops    *prometheus.CounterVec
	stored prometheus.GaugeFunc
}

// New registers the repository metrics with reg and returns the decorator.
// Passing the same registerer twice panics, as with any duplicate collector.
func New(next Store, reg prometheus.Registerer) *Repository {
	factory := promauto.With(reg)

	return &Repository{
		next: next,
		ops: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quotes_repository_operations_total",
			Help: "Quote repository calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		stored: factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "quotes_stored",
			Help: "Number of quotes currently stored.",
		}, func() float64 {
			return float64(next.Len())
		}),
	}
}

// List returns every quote and counts the call.
func (r *Repository) List(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := r.next.List(ctx)
	r.observe("list", err)

	return quotes, err
}

// Get looks up one quote. A miss is counted as not_found, not as an error.
func (r *Repository) Get(ctx context.Context, id int64) (domain.Quote, bool, error) {
	q, found, err := r.next.Get(ctx, id)

	switch {
	case err != nil:
		r.ops.WithLabelValues("get", outcomeError).Inc()
	case !found:
		r.ops.WithLabelValues("get", outcomeNotFound).Inc()
	default:
		r.ops.WithLabelValues("get", outcomeOK).Inc()
	}

	return q, found, err
}

// Create stores a new quote and counts the call.
func (r *Repository) Create(ctx context.Context, draft domain.Draft) (domain.Quote, error) {
	q, err := r.next.Create(ctx, draft)
	r.observe("create", err)

	return q, err
}

// Update overwrites a quote and counts the call.
func (r *Repository) Update(ctx context.Context, quote domain.Quote) error {
	err := r.next.Update(ctx, quote)
	r.observe("update", err)

	return err
}

// Delete removes a quote and counts the call.
func (r *Repository) Delete(ctx context.Context, quote domain.Quote) error {
	err := r.next.Delete(ctx, quote)
	r.observe("delete", err)

	return err
}

// Random picks a quote and counts the call.
func (r *Repository) Random(ctx context.Context) (domain.Quote, error) {
	q, err := r.next.Random(ctx)
	r.observe("random", err)

	return q, err
}

func (r *Repository) observe(op string, err error) {
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}

	r.ops.WithLabelValues(op, outcome).Inc()
}
