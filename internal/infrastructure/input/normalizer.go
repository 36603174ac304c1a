// Package input validates and cleans raw user text before parsing.
package input

import (
	"regexp"
	"strings"

	"github.com/doeshing/calcagent/internal/ports"
)

var whitespace = regexp.MustCompile(`\s+`)

var exitCommands = map[string]struct{}{
	"quit":    {},
	"exit":    {},
	"bye":     {},
	"goodbye": {},
}

// Normalizer trims input and collapses internal whitespace runs. It does not
// interpret meaning; that is the parser's job.
type Normalizer struct{}

// NewNormalizer builds a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns the cleaned text. The boolean is false when the input
// is empty after trimming.
func (n *Normalizer) Normalize(raw string) (string, bool) {
	cleaned := whitespace.ReplaceAllString(strings.TrimSpace(raw), " ")
	if cleaned == "" {
		return "", false
	}
	return cleaned, true
}

// IsExitCommand reports whether the text asks to end the session.
func (n *Normalizer) IsExitCommand(text string) bool {
	_, ok := exitCommands[strings.ToLower(strings.TrimSpace(text))]
	return ok
}

var _ ports.InputNormalizer = (*Normalizer)(nil)
