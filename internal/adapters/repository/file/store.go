// Package file implements ports.QuoteRepository backed by a single data file.
//
// The whole collection is held in memory and rewritten to disk on every
// mutation. A mutation is applied to a copy of the collection, the copy is
// written to a temporary file in the same directory and renamed over the
// target, and only then does the copy replace what readers see. A failed
// write leaves both the file and the served collection as they were.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen/quotes-service/internal/adapters/repository/memory"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// Name identifies the file store in health checks.
const Name = memory.Name

// Config configures a file-backed store.
type Config struct {
	// Path of the data file. The extension selects the format:
	// .yaml/.yml for YAML, anything else for JSON.
	Path string

	// Seed is used when Path does not exist yet.
	Seed []domain.Quote

	Logger *slog.Logger
}

// document is the on-disk shape.
type document struct {
	Quotes []record `json:"quotes" yaml:"quotes"`
}

type record struct {
	ID     int64  `json:"id"     yaml:"id"`
	Quote  string `json:"quote"  yaml:"quote"`
	Author string `json:"author" yaml:"author"`
}

// Store persists quotes to a file on every write.
type Store struct {
	mem    atomic.Pointer[memory.Store]
	path   string
	codec  codec
	logger *slog.Logger

	// writeMu serialises commits so each one starts from the last
	// collection that reached the disk.
	writeMu sync.Mutex
}

// Open loads the store from cfg.Path, falling back to cfg.Seed when the file
// does not exist. The seed is written out immediately.
func Open(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("file store: path is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		path:   cfg.Path,
		codec:  codecFor(cfg.Path),
		logger: logger.With(slog.String("component", "file-store"), slog.String("path", cfg.Path)),
	}

	quotes, err := s.load()

	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Info("data file not found, starting from seed", slog.Int("seed_count", len(cfg.Seed)))
		quotes = cfg.Seed
	case err != nil:
		return nil, err
	}

	mem, err := memory.New(quotes...)
	if err != nil {
		return nil, fmt.Errorf("file store: %s: %w", cfg.Path, err)
	}

	if err := s.save(context.Background(), mem); err != nil {
		return nil, err
	}

	s.mem.Store(mem)

	return s, nil
}

// List returns all quotes in insertion order.
func (s *Store) List(ctx context.Context) ([]domain.Quote, error) {
	return s.mem.Load().List(ctx)
}

// Get returns the quote with the given ID and whether it exists.
func (s *Store) Get(ctx context.Context, id int64) (domain.Quote, bool, error) {
	return s.mem.Load().Get(ctx, id)
}

// Random returns a uniformly chosen quote.
func (s *Store) Random(ctx context.Context) (domain.Quote, error) {
	return s.mem.Load().Random(ctx)
}

// Create stores a new quote and writes the collection to disk.
func (s *Store) Create(ctx context.Context, draft domain.Draft) (domain.Quote, error) {
	var created domain.Quote

	err := s.commit(ctx, func(next *memory.Store) error {
		var err error
		created, err = next.Create(ctx, draft)

		return err
	})
	if err != nil {
		return domain.Quote{}, err
	}

	return created, nil
}

// Update overwrites an existing quote and writes the collection to disk.
func (s *Store) Update(ctx context.Context, quote domain.Quote) error {
	return s.commit(ctx, func(next *memory.Store) error {
		return next.Update(ctx, quote)
	})
}

// Delete removes a quote and writes the collection to disk.
func (s *Store) Delete(ctx context.Context, quote domain.Quote) error {
	return s.commit(ctx, func(next *memory.Store) error {
		return next.Delete(ctx, quote)
	})
}

// Len returns the number of stored quotes.
func (s *Store) Len() int {
	return s.mem.Load().Len()
}

// commit applies change to a copy of the collection and publishes the copy
// once it is on disk.
func (s *Store) commit(ctx context.Context, change func(next *memory.Store) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := s.mem.Load().Clone()

	if err := change(next); err != nil {
		return err
	}

	if err := s.save(ctx, next); err != nil {
		return err
	}

	s.mem.Store(next)

	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return Name
}

// Check implements ports.HealthChecker by confirming the data file's
// directory is still reachable.
func (s *Store) Check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("data directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("data directory: %s is not a directory", dir)
	}

	return nil
}

func (s *Store) load() ([]domain.Quote, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := s.codec.unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("file store: decoding %s: %w", s.path, err)
	}

	quotes := make([]domain.Quote, 0, len(doc.Quotes))
	for _, r := range doc.Quotes {
		quotes = append(quotes, domain.Quote{ID: r.ID, Text: r.Quote, Author: r.Author})
	}

	s.logger.Debug("data file loaded", slog.Int("count", len(quotes)))

	return quotes, nil
}

func (s *Store) save(ctx context.Context, mem *memory.Store) error {
	quotes, err := mem.List(context.WithoutCancel(ctx))
	if err != nil {
		return err
	}

	doc := document{Quotes: make([]record, 0, len(quotes))}
	for _, q := range quotes {
		doc.Quotes = append(doc.Quotes, record{ID: q.ID, Quote: q.Text, Author: q.Author})
	}

	data, err := s.codec.marshal(&doc)
	if err != nil {
		return fmt.Errorf("file store: encoding: %w", err)
	}

	if err := writeAtomic(s.path, data); err != nil {
		s.logger.ErrorContext(ctx, "failed to write data file", slog.String("error", err.Error()))
		return fmt.Errorf("file store: writing %s: %w", s.path, err)
	}

	return nil
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return err
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return nil
}

type codec struct {
	marshal   func(v any) ([]byte, error)
	unmarshal func(data []byte, v any) error
}

func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return codec{marshal: yaml.Marshal, unmarshal: yaml.Unmarshal}
	default:
		return codec{
			marshal: func(v any) ([]byte, error) {
				return json.MarshalIndent(v, "", "  ")
			},
			unmarshal: json.Unmarshal,
		}
	}
}
