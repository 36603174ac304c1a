// Package calculator evaluates named mathematical operations.
package calculator

import (
	"math"
	"math/big"

	"github.com/doeshing/calcagent/internal/domain"
	"github.com/doeshing/calcagent/internal/ports"
)

// Scientific evaluates the full operation enumeration: basic arithmetic,
// powers and roots, trigonometry (degrees), logarithms, and factorial.
// It is a pure function of (operation, operands) with no internal state.
type Scientific struct {
	supported map[domain.Operation]struct{}
}

// NewScientific builds the calculator.
func NewScientific() *Scientific {
	supported := make(map[domain.Operation]struct{}, len(domain.Operations))
	for _, op := range domain.Operations {
		supported[op] = struct{}{}
	}
	return &Scientific{supported: supported}
}

// Supports reports whether the operation is in the enumeration.
func (c *Scientific) Supports(op domain.Operation) bool {
	_, ok := c.supported[op]
	return ok
}

// Evaluate validates arity and domain, then computes the result.
func (c *Scientific) Evaluate(op domain.Operation, operands []float64) (domain.Result, error) {
	if !c.Supports(op) {
		return domain.Result{}, &domain.UnsupportedOperationError{Operation: op}
	}

	switch op {
	case domain.OpAdd:
		return c.add(operands)
	case domain.OpSubtract:
		return c.subtract(operands)
	case domain.OpMultiply:
		return c.multiply(operands)
	case domain.OpDivide:
		return c.divide(operands)
	case domain.OpPower, domain.OpSquare, domain.OpCube:
		// square and cube arrive with their implicit exponent already
		// appended by the parser, so they ride the generic power rule.
		return c.power(op, operands)
	case domain.OpSqrt:
		return c.sqrt(operands)
	case domain.OpCbrt:
		return c.cbrt(operands)
	case domain.OpSin, domain.OpCos, domain.OpTan:
		return c.trig(op, operands)
	case domain.OpLog:
		return c.log10(operands)
	case domain.OpLn:
		return c.ln(operands)
	case domain.OpFactorial:
		return c.factorial(operands)
	default:
		return domain.Result{}, &domain.UnsupportedOperationError{Operation: op}
	}
}

func (c *Scientific) add(operands []float64) (domain.Result, error) {
	if len(operands) < 2 {
		return domain.Result{}, &domain.ArityError{Operation: domain.OpAdd, Want: 2, AtLeast: true}
	}
	sum := 0.0
	for _, v := range operands {
		sum += v
	}
	return domain.FloatResult(sum), nil
}

func (c *Scientific) subtract(operands []float64) (domain.Result, error) {
	if len(operands) != 2 {
		return domain.Result{}, &domain.ArityError{Operation: domain.OpSubtract, Want: 2}
	}
	return domain.FloatResult(operands[0] - operands[1]), nil
}

func (c *Scientific) multiply(operands []float64) (domain.Result, error) {
	if len(operands) < 2 {
		return domain.Result{}, &domain.ArityError{Operation: domain.OpMultiply, Want: 2, AtLeast: true}
	}
	product := 1.0
	for _, v := range operands {
		product *= v
	}
	return domain.FloatResult(product), nil
}

func (c *Scientific) divide(operands []float64) (domain.Result, error) {
	if len(operands) != 2 {
		return domain.Result{}, &domain.ArityError{Operation: domain.OpDivide, Want: 2}
	}
	if operands[1] == 0 {
		return domain.Result{}, domain.ErrDivideByZero
	}
	return domain.FloatResult(operands[0] / operands[1]), nil
}

func (c *Scientific) power(op domain.Operation, operands []float64) (domain.Result, error) {
	if len(operands) != 2 {
		return domain.Result{}, &domain.ArityError{Operation: op, Want: 2}
	}
	return domain.FloatResult(math.Pow(operands[0], operands[1])), nil
}

func (c *Scientific) sqrt(operands []float64) (domain.Result, error) {
	if len(operands) != 1 {
		return domain.Result{}, &domain.ArityError{Operation: domain.OpSqrt, Want: 1}
	}
	if operands[0] < 0 {
		return domain.Result{}, &domain.DomainError{
			Operation: domain.OpSqrt,
			Reason:    "cannot calculate square root of a negative number",
		}
	}
	return domain.FloatResult(math.Sqrt(operands[0])), nil
}

func (c *Scientific) cbrt(operands []float64) (domain.Result, error) {
	if len(operands) != 1 {
		return domain.Result{}, &domain.ArityError{Operation: domain.OpCbrt, Want: 1}
	}
	// math.Cbrt is defined for negative inputs.
	return domain.FloatResult(math.Cbrt(operands[0])), nil
}

// trig interprets the operand as degrees.
func (c *Scientific) trig(op domain.Operation, operands []float64) (domain.Result, error) {
	if len(operands) != 1 {
		return domain.Result{}, &domain.ArityError{Operation: op, Want: 1}
	}
	radians := operands[0] * math.Pi / 180
	switch op {
	case domain.OpSin:
		return domain.FloatResult(math.Sin(radians)), nil
	case domain.OpCos:
		return domain.FloatResult(math.Cos(radians)), nil
	default:
		return domain.FloatResult(math.Tan(radians)), nil
	}
}

func (c *Scientific) log10(operands []float64) (domain.Result, error) {
	if len(operands) != 1 {
		return domain.Result{}, &domain.ArityError{Operation: domain.OpLog, Want: 1}
	}
	if operands[0] <= 0 {
		return domain.Result{}, &domain.DomainError{
			Operation: domain.OpLog,
			Reason:    "cannot calculate logarithm of a non-positive number",
		}
	}
	return domain.FloatResult(math.Log10(operands[0])), nil
}

func (c *Scientific) ln(operands []float64) (domain.Result, error) {
	if len(operands) != 1 {
		return domain.Result{}, &domain.ArityError{Operation: domain.OpLn, Want: 1}
	}
	if operands[0] <= 0 {
		return domain.Result{}, &domain.DomainError{
			Operation: domain.OpLn,
			Reason:    "cannot calculate natural logarithm of a non-positive number",
		}
	}
	return domain.FloatResult(math.Log(operands[0])), nil
}

// maxFactorialInput bounds the factorial operand. Larger values must be
// rejected before the int64 conversion below: converting a float64 outside
// int64 range is implementation-dependent and can flip negative.
const maxFactorialInput = 10000

// factorial returns the exact integer product 1*2*...*n.
func (c *Scientific) factorial(operands []float64) (domain.Result, error) {
	if len(operands) != 1 {
		return domain.Result{}, &domain.ArityError{Operation: domain.OpFactorial, Want: 1}
	}
	n := operands[0]
	if n < 0 {
		return domain.Result{}, &domain.DomainError{
			Operation: domain.OpFactorial,
			Reason:    "cannot calculate factorial of a negative number",
		}
	}
	if n != math.Trunc(n) {
		return domain.Result{}, &domain.DomainError{
			Operation: domain.OpFactorial,
			Reason:    "factorial requires an integer",
		}
	}
	if n > maxFactorialInput {
		return domain.Result{}, &domain.DomainError{
			Operation: domain.OpFactorial,
			Reason:    "cannot calculate factorial of a number larger than 10000",
		}
	}
	result := new(big.Int).MulRange(1, int64(n))
	return domain.IntResult(result), nil
}

var _ ports.Calculator = (*Scientific)(nil)
