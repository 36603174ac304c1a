package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/doeshing/calcagent/internal/domain"
)

const tolerance = 1e-9

func TestEvaluateFloatOperations(t *testing.T) {
	c := NewScientific()

	tests := []struct {
		name     string
		op       domain.Operation
		operands []float64
		want     float64
	}{
		{"add two", domain.OpAdd, []float64{25, 17}, 42},
		{"add many", domain.OpAdd, []float64{1, 2, 3, 4}, 10},
		{"subtract", domain.OpSubtract, []float64{10, 3}, 7},
		{"subtract negative result", domain.OpSubtract, []float64{3, 10}, -7},
		{"multiply two", domain.OpMultiply, []float64{5, 4}, 20},
		{"multiply many", domain.OpMultiply, []float64{2, 3, 4}, 24},
		{"divide", domain.OpDivide, []float64{100, 4}, 25},
		{"power", domain.OpPower, []float64{2, 3}, 8},
		{"square via power", domain.OpSquare, []float64{5, 2}, 25},
		{"cube via power", domain.OpCube, []float64{4, 3}, 64},
		{"sqrt", domain.OpSqrt, []float64{144}, 12},
		{"sqrt of zero", domain.OpSqrt, []float64{0}, 0},
		{"cbrt", domain.OpCbrt, []float64{27}, 3},
		{"cbrt of negative", domain.OpCbrt, []float64{-8}, -2},
		{"sin of 30 degrees", domain.OpSin, []float64{30}, 0.5},
		{"cos of 60 degrees", domain.OpCos, []float64{60}, 0.5},
		{"tan of 45 degrees", domain.OpTan, []float64{45}, 1},
		{"log of 100", domain.OpLog, []float64{100}, 2},
		{"ln of 1", domain.OpLn, []float64{1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.Evaluate(tt.op, tt.operands)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if res.IsInt() {
				t.Fatalf("expected float result, got integer %v", res.Int)
			}
			if math.Abs(res.Float-tt.want) > tolerance {
				t.Errorf("Evaluate() = %v, want %v", res.Float, tt.want)
			}
		})
	}
}

func TestEvaluateSqrtRoundTrips(t *testing.T) {
	c := NewScientific()

	for _, x := range []float64{0, 1, 2, 144, 3.5, 1e6} {
		res, err := c.Evaluate(domain.OpSqrt, []float64{x})
		if err != nil {
			t.Fatalf("sqrt(%v) error = %v", x, err)
		}
		if res.Float < 0 {
			t.Errorf("sqrt(%v) = %v, want non-negative", x, res.Float)
		}
		if math.Abs(res.Float*res.Float-x) > tolerance*math.Max(x, 1) {
			t.Errorf("sqrt(%v)^2 = %v, want %v", x, res.Float*res.Float, x)
		}
	}
}

func TestEvaluateFactorial(t *testing.T) {
	c := NewScientific()

	tests := []struct {
		n    float64
		want string
	}{
		{0, "1"},
		{1, "1"},
		{5, "120"},
		{10, "3628800"},
		{20, "2432902008176640000"},
		{25, "15511210043330985984000000"}, // beyond int64
	}

	for _, tt := range tests {
		res, err := c.Evaluate(domain.OpFactorial, []float64{tt.n})
		if err != nil {
			t.Fatalf("factorial(%v) error = %v", tt.n, err)
		}
		if !res.IsInt() {
			t.Fatalf("factorial(%v) returned a float", tt.n)
		}
		if got := res.Int.String(); got != tt.want {
			t.Errorf("factorial(%v) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestEvaluateDomainErrors(t *testing.T) {
	c := NewScientific()

	tests := []struct {
		name     string
		op       domain.Operation
		operands []float64
	}{
		{"sqrt of negative", domain.OpSqrt, []float64{-4}},
		{"log of zero", domain.OpLog, []float64{0}},
		{"log of negative", domain.OpLog, []float64{-1}},
		{"ln of zero", domain.OpLn, []float64{0}},
		{"factorial of negative", domain.OpFactorial, []float64{-3}},
		{"factorial of fraction", domain.OpFactorial, []float64{3.5}},
		{"factorial just above cap", domain.OpFactorial, []float64{10001}},
		{"factorial beyond int64 range", domain.OpFactorial, []float64{1e21}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Evaluate(tt.op, tt.operands)
			var domainErr *domain.DomainError
			if !errors.As(err, &domainErr) {
				t.Fatalf("Evaluate() error = %v, want DomainError", err)
			}
			if domainErr.Operation != tt.op {
				t.Errorf("error operation = %s, want %s", domainErr.Operation, tt.op)
			}
		})
	}
}

// Operands past the cap must fail loudly rather than fold into a wrong
// answer through an out-of-range int64 conversion.
func TestEvaluateFactorialBound(t *testing.T) {
	c := NewScientific()

	res, err := c.Evaluate(domain.OpFactorial, []float64{maxFactorialInput})
	if err != nil {
		t.Fatalf("factorial(%d) error = %v, want success at the bound", maxFactorialInput, err)
	}
	if !res.IsInt() || res.Int.Sign() <= 0 {
		t.Errorf("factorial(%d) = %v, want a positive integer", maxFactorialInput, res.Int)
	}

	for _, n := range []float64{maxFactorialInput + 1, 1e19, 1e21} {
		_, err := c.Evaluate(domain.OpFactorial, []float64{n})
		var domainErr *domain.DomainError
		if !errors.As(err, &domainErr) {
			t.Errorf("factorial(%v) error = %v, want DomainError", n, err)
		}
	}
}

func TestEvaluateDivideByZero(t *testing.T) {
	c := NewScientific()

	for _, a := range []float64{0, 1, -7, 1e9} {
		_, err := c.Evaluate(domain.OpDivide, []float64{a, 0})
		if !errors.Is(err, domain.ErrDivideByZero) {
			t.Errorf("divide(%v, 0) error = %v, want ErrDivideByZero", a, err)
		}
	}
}

func TestEvaluateArityErrors(t *testing.T) {
	c := NewScientific()

	tests := []struct {
		name        string
		op          domain.Operation
		operands    []float64
		wantAtLeast bool
		wantCount   int
	}{
		{"add needs two", domain.OpAdd, []float64{1}, true, 2},
		{"multiply needs two", domain.OpMultiply, []float64{3}, true, 2},
		{"subtract exactly two", domain.OpSubtract, []float64{1, 2, 3}, false, 2},
		{"divide exactly two", domain.OpDivide, []float64{1}, false, 2},
		{"power exactly two", domain.OpPower, []float64{2}, false, 2},
		{"sqrt exactly one", domain.OpSqrt, []float64{1, 2}, false, 1},
		{"sin exactly one", domain.OpSin, []float64{}, false, 1},
		{"log exactly one", domain.OpLog, []float64{10, 2}, false, 1},
		{"factorial exactly one", domain.OpFactorial, []float64{}, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Evaluate(tt.op, tt.operands)
			var arityErr *domain.ArityError
			if !errors.As(err, &arityErr) {
				t.Fatalf("Evaluate() error = %v, want ArityError", err)
			}
			if arityErr.Want != tt.wantCount || arityErr.AtLeast != tt.wantAtLeast {
				t.Errorf("arity error = %+v, want count %d atLeast %v", arityErr, tt.wantCount, tt.wantAtLeast)
			}
		})
	}
}

func TestEvaluateUnsupportedOperation(t *testing.T) {
	c := NewScientific()

	_, err := c.Evaluate(domain.Operation("modulo"), []float64{10, 3})
	var unsupported *domain.UnsupportedOperationError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Evaluate() error = %v, want UnsupportedOperationError", err)
	}
	if c.Supports("modulo") {
		t.Error("Supports() accepted an operation outside the enumeration")
	}
}

func TestSupportsFullEnumeration(t *testing.T) {
	c := NewScientific()

	for _, op := range domain.Operations {
		if !c.Supports(op) {
			t.Errorf("Supports(%s) = false, want true", op)
		}
	}
}
