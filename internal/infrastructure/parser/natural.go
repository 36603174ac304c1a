// Package parser implements pattern-based extraction of operations and
// operands from natural-language questions.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/doeshing/calcagent/internal/domain"
	"github.com/doeshing/calcagent/internal/ports"
)

// num captures a numeric operand: optional leading minus, optional decimal
// fraction, no exponent notation.
const num = `(-?\d+\.?\d*)`

// integer captures operands for factorial, which only reads whole numbers.
const integer = `(-?\d+)`

// patternGroup binds one operation to its alternative phrasings.
type patternGroup struct {
	op       domain.Operation
	patterns []*regexp.Regexp
}

// NaturalLanguage parses conversational math questions such as
// "What's 2 + 2?", "square root of 144", or "5 squared".
//
// The pattern table is ordered: the first operation (in declaration order)
// whose any pattern matches the lower-cased input wins. Keep it a slice,
// not a map, or ambiguous inputs stop resolving deterministically.
type NaturalLanguage struct {
	groups []patternGroup
}

// NewNaturalLanguage compiles the pattern table.
func NewNaturalLanguage() *NaturalLanguage {
	mustAll := func(exprs ...string) []*regexp.Regexp {
		res := make([]*regexp.Regexp, 0, len(exprs))
		for _, expr := range exprs {
			res = append(res, regexp.MustCompile(expr))
		}
		return res
	}

	return &NaturalLanguage{groups: []patternGroup{
		{domain.OpAdd, mustAll(
			`(?:what'?s?|calculate|compute)?\s*`+num+`\s*(?:\+|plus|add)\s*`+num,
			`(?:add|sum)\s*`+num+`\s*(?:and|to)\s*`+num,
		)},
		{domain.OpSubtract, mustAll(
			`(?:what'?s?|calculate)?\s*`+num+`\s*(?:-|minus|subtract)\s*`+num,
			`subtract\s*`+num+`\s*from\s*`+num,
		)},
		{domain.OpMultiply, mustAll(
			`(?:what'?s?|calculate)?\s*`+num+`\s*(?:\*|×|times|multiply)\s*`+num,
			`multiply\s*`+num+`\s*(?:by|and)\s*`+num,
		)},
		{domain.OpDivide, mustAll(
			`(?:what'?s?|calculate)?\s*`+num+`\s*(?:/|÷|divided by|divide)\s*`+num,
			`divide\s*`+num+`\s*by\s*`+num,
		)},
		{domain.OpPower, mustAll(
			num+`\s*(?:to the power of|raised to|power)\s*`+num,
			num+`\s*\*\*\s*`+num,
		)},
		{domain.OpSquare, mustAll(
			num+`\s*squared`,
			`square\s*(?:of)?\s*`+num,
		)},
		{domain.OpCube, mustAll(
			num+`\s*cubed`,
			`cube\s*(?:of)?\s*`+num,
		)},
		{domain.OpSqrt, mustAll(
			`(?:square root|sqrt)\s*(?:of)?\s*`+num,
			`√\s*`+num,
		)},
		{domain.OpCbrt, mustAll(
			`(?:cube root|cbrt)\s*(?:of)?\s*` + num,
		)},
		{domain.OpSin, mustAll(
			`(?:sin|sine)\s*(?:of)?\s*` + num + `\s*(?:degrees?)?`,
		)},
		{domain.OpCos, mustAll(
			`(?:cos|cosine)\s*(?:of)?\s*` + num + `\s*(?:degrees?)?`,
		)},
		{domain.OpTan, mustAll(
			`(?:tan|tangent)\s*(?:of)?\s*` + num + `\s*(?:degrees?)?`,
		)},
		{domain.OpLog, mustAll(
			`(?:log|logarithm)\s*(?:of)?\s*` + num,
		)},
		{domain.OpLn, mustAll(
			`(?:ln|natural log)\s*(?:of)?\s*` + num,
		)},
		{domain.OpFactorial, mustAll(
			integer+`\s*factorial`,
			`factorial\s*(?:of)?\s*`+integer,
		)},
	}}
}

// CanHandle reports whether any pattern in the table matches the input.
func (p *NaturalLanguage) CanHandle(text string) bool {
	lower := strings.ToLower(text)
	for _, group := range p.groups {
		for _, re := range group.patterns {
			if re.MatchString(lower) {
				return true
			}
		}
	}
	return false
}

// Match extracts the operation and operands from the input. The boolean is
// false when no pattern matches.
func (p *NaturalLanguage) Match(text string) (domain.ParsedQuery, bool) {
	lower := strings.ToLower(text)
	for _, group := range p.groups {
		for _, re := range group.patterns {
			m := re.FindStringSubmatch(lower)
			if m == nil {
				continue
			}
			operands, ok := parseOperands(m[1:])
			if !ok {
				// Malformed capture counts as a failed parse, never a
				// silent coercion.
				return domain.ParsedQuery{}, false
			}
			return domain.ParsedQuery{
				Operation:    group.op,
				Operands:     rewriteImplicitExponent(group.op, operands),
				OriginalText: text,
			}, true
		}
	}
	return domain.ParsedQuery{}, false
}

func parseOperands(captures []string) ([]float64, bool) {
	operands := make([]float64, 0, len(captures))
	for _, c := range captures {
		if c == "" {
			continue
		}
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, false
		}
		operands = append(operands, v)
	}
	return operands, true
}

// rewriteImplicitExponent appends the implicit exponent for square and cube
// so both dispatch through the generic power rule.
func rewriteImplicitExponent(op domain.Operation, operands []float64) []float64 {
	if len(operands) != 1 {
		return operands
	}
	switch op {
	case domain.OpSquare:
		return append(operands, 2)
	case domain.OpCube:
		return append(operands, 3)
	}
	return operands
}

var _ ports.Parser = (*NaturalLanguage)(nil)
