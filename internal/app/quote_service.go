// Package app contains application services that orchestrate use cases.
package app

import (
	"context"
	"log/slog"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/logging"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

const tracerName = "github.com/jsamuelsen/quotes-service/internal/app"

// QuoteService orchestrates quote-related use cases.
// It depends on the repository port, not a concrete store.
type QuoteService struct {
	repo   ports.QuoteRepository
	logger *slog.Logger
	tracer trace.Tracer
}

// QuoteServiceConfig contains configuration for the quote service.
type QuoteServiceConfig struct {
	Repository ports.QuoteRepository
	Logger     *slog.Logger
}

// NewQuoteService creates a new quote service with the provided dependencies.
// Panics if no repository is supplied.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Repository == nil {
		panic("app: QuoteService requires a repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &QuoteService{
		repo:   cfg.Repository,
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

// ListQuotes returns every stored quote in insertion order.
func (s *QuoteService) ListQuotes(ctx context.Context) ([]domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.ListQuotes")
	defer span.End()

	quotes, err := s.repo.List(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, "failed to list quotes", err)
	}

	span.SetAttributes(attribute.Int("quotes.count", len(quotes)))
	s.log(ctx).DebugContext(ctx, "listed quotes", slog.Int("count", len(quotes)))

	return quotes, nil
}

// GetQuote returns the quote with the given ID or a domain.NotFoundError.
func (s *QuoteService) GetQuote(ctx context.Context, id int64) (domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.GetQuote",
		trace.WithAttributes(attribute.Int64("quote.id", id)),
	)
	defer span.End()

	return s.find(ctx, span, id)
}

// RandomQuote returns a uniformly chosen quote.
func (s *QuoteService) RandomQuote(ctx context.Context) (domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.RandomQuote")
	defer span.End()

	q, err := s.repo.Random(ctx)
	if err != nil {
		return domain.Quote{}, s.fail(ctx, span, "failed to pick random quote", err)
	}

	span.SetAttributes(attribute.Int64("quote.id", q.ID))

	return q, nil
}

// CreateQuote validates the draft and stores it as a new quote.
func (s *QuoteService) CreateQuote(ctx context.Context, draft domain.Draft) (domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.CreateQuote")
	defer span.End()

	if err := draft.Validate(); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		s.log(ctx).InfoContext(ctx, "rejected quote draft", slog.Any("error", err))

		return domain.Quote{}, err
	}

	q, err := s.repo.Create(ctx, draft)
	if err != nil {
		return domain.Quote{}, s.fail(ctx, span, "failed to create quote", err)
	}

	span.SetAttributes(attribute.Int64("quote.id", q.ID))
	s.log(ctx).InfoContext(ctx, "created quote",
		slog.Int64("quote_id", q.ID),
		slog.String("author", q.Author),
	)

	return q, nil
}

// UpdateQuote overwrites both content fields of an existing quote.
// Empty draft fields replace the stored values; no presence check applies.
func (s *QuoteService) UpdateQuote(ctx context.Context, id int64, draft domain.Draft) error {
	ctx, span := s.tracer.Start(ctx, "QuoteService.UpdateQuote",
		trace.WithAttributes(attribute.Int64("quote.id", id)),
	)
	defer span.End()

	current, err := s.find(ctx, span, id)
	if err != nil {
		return err
	}

	if err := s.repo.Update(ctx, draft.Apply(current)); err != nil {
		return s.fail(ctx, span, "failed to update quote", err)
	}

	s.log(ctx).InfoContext(ctx, "updated quote", slog.Int64("quote_id", id))

	return nil
}

// DeleteQuote removes an existing quote.
func (s *QuoteService) DeleteQuote(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "QuoteService.DeleteQuote",
		trace.WithAttributes(attribute.Int64("quote.id", id)),
	)
	defer span.End()

	current, err := s.find(ctx, span, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, current); err != nil {
		return s.fail(ctx, span, "failed to delete quote", err)
	}

	s.log(ctx).InfoContext(ctx, "deleted quote", slog.Int64("quote_id", id))

	return nil
}

func (s *QuoteService) find(ctx context.Context, span trace.Span, id int64) (domain.Quote, error) {
	q, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Quote{}, s.fail(ctx, span, "failed to fetch quote", err)
	}

	if !found {
		span.SetStatus(codes.Error, "not found")
		return domain.Quote{}, domain.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}

	return q, nil
}

// fail records err on the span and logs it. The error is returned unchanged.
func (s *QuoteService) fail(ctx context.Context, span trace.Span, msg string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	s.log(ctx).ErrorContext(ctx, msg, slog.Any("error", err))

	return err
}

func (s *QuoteService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}
