// Package memory implements ports.QuoteRepository over an in-process collection.
package memory

import (
	"context"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// Name identifies the in-memory store in health checks.
const Name = "quote-repository"

// Store keeps quotes in insertion order behind a read/write mutex.
// IDs are assigned from a counter that only moves forward, so an ID is
// never handed out twice while the process lives.
type Store struct {
	mu     sync.RWMutex
	quotes []domain.Quote
	index  map[int64]int
	nextID int64
}

// New creates a store holding the given quotes in order.
// Quotes must carry distinct positive IDs.
func New(quotes ...domain.Quote) (*Store, error) {
	s := &Store{
		quotes: make([]domain.Quote, 0, len(quotes)),
		index:  make(map[int64]int, len(quotes)),
		nextID: 1,
	}

	for _, q := range quotes {
		if q.ID <= 0 {
			return nil, fmt.Errorf("quote id must be positive, got %d", q.ID)
		}

		if _, dup := s.index[q.ID]; dup {
			return nil, fmt.Errorf("duplicate quote id %d", q.ID)
		}

		s.index[q.ID] = len(s.quotes)
		s.quotes = append(s.quotes, q)

		if q.ID >= s.nextID {
			s.nextID = q.ID + 1
		}
	}

	return s, nil
}

// List returns a copy of all quotes in insertion order.
func (s *Store) List(ctx context.Context) ([]domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Quote, len(s.quotes))
	copy(out, s.quotes)

	return out, nil
}

// Get returns the quote with the given ID and whether it exists.
func (s *Store) Get(ctx context.Context, id int64) (domain.Quote, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Quote{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Quote{}, false, nil
	}

	return s.quotes[i], true, nil
}

// Create appends a quote with a freshly assigned ID.
func (s *Store) Create(ctx context.Context, draft domain.Draft) (domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return domain.Quote{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	q := draft.Apply(domain.Quote{ID: s.nextID})
	s.nextID++

	s.index[q.ID] = len(s.quotes)
	s.quotes = append(s.quotes, q)

	return q, nil
}

// Update overwrites the stored content of quote.ID.
func (s *Store) Update(ctx context.Context, quote domain.Quote) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[quote.ID]
	if !ok {
		return domain.NewStaleRecordError("quote", quote.ID)
	}

	s.quotes[i] = quote

	return nil
}

// Delete removes quote.ID, preserving the order of the remaining quotes.
func (s *Store) Delete(ctx context.Context, quote domain.Quote) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[quote.ID]
	if !ok {
		return domain.NewStaleRecordError("quote", quote.ID)
	}

	s.quotes = append(s.quotes[:i], s.quotes[i+1:]...)

	delete(s.index, quote.ID)

	for j := i; j < len(s.quotes); j++ {
		s.index[s.quotes[j].ID] = j
	}

	return nil
}

// Random returns a uniformly chosen quote.
func (s *Store) Random(ctx context.Context) (domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return domain.Quote{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.quotes) == 0 {
		return domain.Quote{}, domain.ErrNoQuotes
	}

	return s.quotes[rand.IntN(len(s.quotes))], nil //nolint:gosec // selection, not security
}

// Clone returns an independent copy of the store. The copy continues the
// ID sequence where s is now, so both hand out the same next ID.
func (s *Store) Clone() *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return &Store{
		quotes: slices.Clone(s.quotes),
		index:  maps.Clone(s.index),
		nextID: s.nextID,
	}
}

// Len returns the number of stored quotes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.quotes)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return Name
}

// Check implements ports.HealthChecker. An in-process store is healthy
// as long as the caller is still waiting.
func (s *Store) Check(ctx context.Context) error {
	return ctx.Err()
}
