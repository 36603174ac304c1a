// Package format renders results, errors, and informational text in a
// friendly, ASCII-only style.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/doeshing/calcagent/internal/domain"
	"github.com/doeshing/calcagent/internal/ports"
)

// Text is the plain-text formatter shared by the terminal and HTTP front
// ends.
type Text struct{}

// NewText builds a Text formatter.
func NewText() *Text {
	return &Text{}
}

// Result renders a calculation result as a user-facing answer.
func (f *Text) Result(res domain.Result, query string) string {
	return "The answer is " + RenderResult(res)
}

// Value renders the bare result value.
func (f *Text) Value(res domain.Result) string {
	return RenderResult(res)
}

// Error renders any pipeline failure as a user-facing message.
func (f *Text) Error(err error) string {
	return fmt.Sprintf("Error: %v", err)
}

// ParseFailure is returned when no pattern matched the question.
func (f *Text) ParseFailure() string {
	return `I couldn't understand that question. Please try again.

Examples of questions I can answer:
  - "What's 2 + 2?"
  - "Calculate square root of 144"
  - "What's 5 squared?"

Type 'help' for more examples.`
}

// History renders entries as an enumerated "{n}. {query} = {result}" list.
func (f *Text) History(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return "No calculation history yet."
	}
	var b strings.Builder
	b.WriteString("Calculation History:\n")
	b.WriteString(strings.Repeat("-", 60))
	b.WriteString("\n")
	for i, entry := range entries {
		fmt.Fprintf(&b, "%d. %s = %s\n", i+1, entry.Query, entry.Result)
	}
	return b.String()
}

// HistoryCleared confirms that the history store was emptied.
func (f *Text) HistoryCleared() string {
	return "History cleared!"
}

// Welcome is shown when an interactive session starts.
func (f *Text) Welcome() string {
	return `Welcome to Calculator Agent!

I can help you with mathematical calculations.
Just ask me naturally, like:
  - "What's 25 + 17?"
  - "Calculate square root of 144"
  - "What's 5 squared?"
  - "sin of 30 degrees"

Type 'help' for more examples
Type 'history' to see past calculations
Type 'quit' to exit`
}

// Goodbye is shown when an interactive session ends.
func (f *Text) Goodbye() string {
	return "Thank you for using Calculator Agent! Goodbye!"
}

// Help lists the supported phrasings.
func (f *Text) Help() string {
	return `Available Operations:
---------------------

Basic Arithmetic:
  - Addition: "What's 5 + 3?", "Add 10 and 20"
  - Subtraction: "10 minus 3", "What's 15 - 7?"
  - Multiplication: "5 times 4", "Multiply 6 and 7"
  - Division: "Divide 20 by 5", "What's 100 / 4?"

Powers and Roots:
  - Power: "2 to the power of 3", "5 squared", "4 cubed"
  - Square root: "Square root of 81", "sqrt of 144"
  - Cube root: "Cube root of 27"

Trigonometry:
  - "sin of 30 degrees", "cos of 45", "tan of 60"
  - Note: input angles in degrees

Logarithms:
  - "log of 100", "ln of 5"

Factorials:
  - "5 factorial", "factorial of 7"

Special Commands:
  - 'history' - Show calculation history
  - 'clear' - Clear calculation history
  - 'help' - Show this help message
  - 'quit' - Exit the program`
}

// RenderResult renders a result value without the answer prefix. Exact
// integers print in full; whole-valued floats drop the decimal point; other
// floats are rounded to 6 decimal digits with trailing zeros stripped.
func RenderResult(res domain.Result) string {
	if res.IsInt() {
		return res.Int.String()
	}
	return formatFloat(res.Float)
}

func formatFloat(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	rounded := math.Round(v*1e6) / 1e6
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

var _ ports.Formatter = (*Text)(nil)
