// Package agent orchestrates the query pipeline end-to-end:
// normalize -> built-in commands -> parse -> evaluate -> record -> format.
package agent

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/calcagent/internal/domain"
	"github.com/doeshing/calcagent/internal/ports"
)

// historyCommandLimit caps how many entries the built-in 'history' command
// renders.
const historyCommandLimit = 10

// Service sequences one query at a time through the pipeline. It is
// stateless across queries except via the history repository. Parsers and
// calculators are tried in declaration order; the first capable one wins,
// so additional implementations can be appended without touching the
// orchestration.
type Service struct {
	Normalizer  ports.InputNormalizer
	Parsers     []ports.Parser
	Calculators []ports.Calculator
	History     ports.HistoryRepository
	Formatter   ports.Formatter
	Logger      ports.Logger
}

// ProcessQuery handles one raw user query and always returns a displayable
// response. Every reachable failure is rendered as a message; nothing
// panics or propagates.
func (s *Service) ProcessQuery(raw string) string {
	cleaned, ok := s.Normalizer.Normalize(raw)
	if !ok {
		return s.Formatter.Error(domain.ErrInvalidInput)
	}

	// Built-in commands are exact whole-string matches, never patterns.
	switch strings.ToLower(cleaned) {
	case "help":
		return s.Formatter.Help()
	case "history":
		return s.HistoryText(historyCommandLimit)
	case "clear":
		if err := s.History.Clear(); err != nil {
			s.Logger.Warn("history clear failed", map[string]interface{}{"error": err.Error()})
			return s.Formatter.Error(err)
		}
		return s.Formatter.HistoryCleared()
	}

	parsed, ok := s.parse(cleaned)
	if !ok {
		// A recognized negative outcome, not an exception.
		return s.Formatter.ParseFailure()
	}

	result, err := s.evaluate(parsed)
	if err != nil {
		s.Logger.Debug("evaluation failed", map[string]interface{}{
			"operation": string(parsed.Operation),
			"error":     err.Error(),
		})
		return s.Formatter.Error(err)
	}

	s.record(raw, parsed.Operation, result)

	return s.Formatter.Result(result, raw)
}

// Welcome returns the interactive session banner.
func (s *Service) Welcome() string {
	return s.Formatter.Welcome()
}

// Goodbye returns the session farewell.
func (s *Service) Goodbye() string {
	return s.Formatter.Goodbye()
}

// HistoryText renders up to limit recent entries for display.
func (s *Service) HistoryText(limit int) string {
	entries, err := s.History.Recent(limit)
	if err != nil {
		return s.Formatter.Error(err)
	}
	return s.Formatter.History(entries)
}

// ClearHistory empties the history store.
func (s *Service) ClearHistory() error {
	return s.History.Clear()
}

func (s *Service) parse(text string) (domain.ParsedQuery, bool) {
	for _, parser := range s.Parsers {
		if !parser.CanHandle(text) {
			continue
		}
		if parsed, ok := parser.Match(text); ok {
			return parsed, true
		}
	}
	return domain.ParsedQuery{}, false
}

func (s *Service) evaluate(parsed domain.ParsedQuery) (domain.Result, error) {
	for _, calc := range s.Calculators {
		if calc.Supports(parsed.Operation) {
			return calc.Evaluate(parsed.Operation, parsed.Operands)
		}
	}
	return domain.Result{}, &domain.UnsupportedOperationError{Operation: parsed.Operation}
}

// record stores the raw pre-normalization query with the rendered result.
// A failed write is logged, not surfaced: the answer is still valid.
func (s *Service) record(raw string, op domain.Operation, result domain.Result) {
	opType := string(op)
	if opType == "" {
		opType = string(domain.OperationUnknown)
	}
	entry := domain.HistoryEntry{
		ID:            uuid.NewString(),
		Timestamp:     time.Now(),
		Query:         raw,
		Result:        s.Formatter.Value(result),
		OperationType: opType,
	}
	if err := s.History.Record(entry); err != nil {
		s.Logger.Warn("history record failed", map[string]interface{}{"error": err.Error()})
	}
}
