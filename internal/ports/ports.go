// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). The agent service depends only on these
// abstractions, so parsers, calculators, and history backends can be swapped
// without touching the orchestration logic.
package ports

import (
	"context"

	"github.com/doeshing/calcagent/internal/domain"
)

// Parser turns free text into a structured calculation request.
// Implementations are tried in a fixed order; the first whose CanHandle
// probe accepts the text gets to parse it.
type Parser interface {
	// CanHandle reports whether the parser recognizes the text at all.
	CanHandle(text string) bool
	// Match extracts the operation and operands. The boolean is false when
	// no pattern matched; that is a normal negative outcome, not an error.
	Match(text string) (domain.ParsedQuery, bool)
}

// Calculator evaluates a named operation over a list of operands.
// Implementations are pure: no side effects, no internal state.
type Calculator interface {
	Supports(op domain.Operation) bool
	Evaluate(op domain.Operation, operands []float64) (domain.Result, error)
}

// HistoryRepository stores the bounded log of answered queries.
// Implementations enforce the capacity invariant on every insert by
// evicting the single oldest entry.
type HistoryRepository interface {
	Record(entry domain.HistoryEntry) error
	// Recent returns entries most-recent-first. A limit <= 0 returns all.
	Recent(limit int) ([]domain.HistoryEntry, error)
	Latest() (domain.HistoryEntry, bool)
	// Search matches the keyword case-insensitively against query or result
	// text and returns hits in insertion order.
	Search(keyword string) ([]domain.HistoryEntry, error)
	Clear() error
	Count() int
	// ExportJSON writes all entries to a jsonl file.
	ExportJSON(dest string) error
}

// InputNormalizer cleans raw user input before parsing.
type InputNormalizer interface {
	// Normalize trims and collapses whitespace. The boolean is false when
	// the input is empty after cleaning.
	Normalize(raw string) (string, bool)
	// IsExitCommand reports whether the text asks to end the session.
	IsExitCommand(text string) bool
}

// Formatter renders results, errors, and informational text for display.
type Formatter interface {
	Result(res domain.Result, query string) string
	// Value renders the bare result value, without the answer phrasing.
	Value(res domain.Result) string
	Error(err error) string
	ParseFailure() string
	History(entries []domain.HistoryEntry) string
	HistoryCleared() string
	Welcome() string
	Goodbye() string
	Help() string
}

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.calcagent/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
