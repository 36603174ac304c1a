// Package app wires application services with infrastructure adapters.
package app

import (
	"context"

	"github.com/doeshing/calcagent/internal/application/agent"
	"github.com/doeshing/calcagent/internal/domain"
	"github.com/doeshing/calcagent/internal/infrastructure/calculator"
	"github.com/doeshing/calcagent/internal/infrastructure/config"
	"github.com/doeshing/calcagent/internal/infrastructure/format"
	"github.com/doeshing/calcagent/internal/infrastructure/history"
	"github.com/doeshing/calcagent/internal/infrastructure/input"
	"github.com/doeshing/calcagent/internal/infrastructure/parser"
	"github.com/doeshing/calcagent/internal/pkg/logger"
	"github.com/doeshing/calcagent/internal/ports"
)

// Container holds the constructed dependency graph.
type Container struct {
	Agent        *agent.Service
	Config       domain.Config
	ConfigLoader *config.FileLoader
	History      ports.HistoryRepository
	Normalizer   ports.InputNormalizer
	Formatter    ports.Formatter
	Logger       ports.Logger
}

// BuildContainer constructs the dependency graph from configuration.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	store := buildHistoryStore(cfg, log)
	normalizer := input.NewNormalizer()
	formatter := format.NewText()

	agentService := &agent.Service{
		Normalizer:  normalizer,
		Parsers:     []ports.Parser{parser.NewNaturalLanguage()},
		Calculators: []ports.Calculator{calculator.NewScientific()},
		History:     store,
		Formatter:   formatter,
		Logger:      log,
	}

	return &Container{
		Agent:        agentService,
		Config:       cfg,
		ConfigLoader: cfgLoader,
		History:      store,
		Normalizer:   normalizer,
		Formatter:    formatter,
		Logger:       log,
	}, nil
}

// buildHistoryStore selects the configured backend, falling back to the
// in-process store when SQLite cannot be opened.
func buildHistoryStore(cfg domain.Config, log ports.Logger) ports.HistoryRepository {
	if cfg.History.Backend == "sqlite" {
		store, err := history.NewSQLiteStore(cfg.History.MaxEntries)
		if err == nil {
			return store
		}
		log.Warn("sqlite history unavailable, using memory store", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return history.NewMemoryStore(cfg.History.MaxEntries)
}
