// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrStaleRecord, etc.)
package ports

import (
	"context"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// QuoteRepository owns the collection of quotes.
//
// Every method may block on I/O and must honour ctx. A storage fault is
// returned as an error; absence on lookup is not a fault and is reported
// through the found flag of Get.
//
// Concurrent writes to the same quote are not coordinated: the last write
// wins. Implementations must still keep IDs unique under concurrent Create.
type QuoteRepository interface {
	// List returns every quote in insertion order. The result may be empty.
	List(ctx context.Context) ([]domain.Quote, error)

	// Get looks a quote up by ID. found is false when no such quote exists.
	Get(ctx context.Context, id int64) (quote domain.Quote, found bool, err error)

	// Create stores a new quote and returns it with its assigned ID.
	// Callers validate the draft beforehand.
	Create(ctx context.Context, draft domain.Draft) (domain.Quote, error)

	// Update persists the content fields of an existing quote.
	// Returns domain.ErrStaleRecord if the ID no longer exists.
	Update(ctx context.Context, quote domain.Quote) error

	// Delete removes an existing quote.
	// Returns domain.ErrStaleRecord if the ID no longer exists.
	Delete(ctx context.Context, quote domain.Quote) error

	// Random returns one quote chosen uniformly among the live ones.
	// Returns domain.ErrNoQuotes when the collection is empty.
	Random(ctx context.Context) (domain.Quote, error)
}
