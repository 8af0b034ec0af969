package main

import (
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/quotes-service/internal/adapters/repository/file"
	"github.com/jsamuelsen/quotes-service/internal/adapters/repository/memory"
	"github.com/jsamuelsen/quotes-service/internal/domain"
	"github.com/jsamuelsen/quotes-service/internal/platform/config"
	"github.com/jsamuelsen/quotes-service/internal/ports"
)

// store is a quote repository that can also report its health and size.
type store interface {
	ports.QuoteRepository
	ports.HealthChecker
	Len() int
}

// openRepository builds the store selected by cfg.Driver.
func openRepository(cfg config.RepositoryConfig, logger *slog.Logger) (store, error) {
	var seed []domain.Quote
	if cfg.Seed {
		seed = memory.SeedQuotes()
	}

	switch cfg.Driver {
	case config.DriverMemory:
		s, err := memory.New(seed...)
		if err != nil {
			return nil, err
		}

		return s, nil

	case config.DriverFile:
		s, err := file.Open(file.Config{
			Path:   cfg.Path,
			Seed:   seed,
			Logger: logger,
		})
		if err != nil {
			return nil, err
		}

		return s, nil

	default:
		return nil, fmt.Errorf("unknown repository driver %q", cfg.Driver)
	}
}
