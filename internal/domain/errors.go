package domain

import (
	"errors"
	"fmt"
)

// Every failure in the query pipeline is recoverable: the agent catches
// each of these and turns it into a user-facing message. None of them
// abort the process.

// ErrInvalidInput flags raw input that is empty after normalization.
var ErrInvalidInput = errors.New("invalid input")

// ErrDivideByZero flags a division whose divisor is zero.
var ErrDivideByZero = errors.New("cannot divide by zero")

// UnsupportedOperationError flags an operation name outside the enumeration.
type UnsupportedOperationError struct {
	Operation Operation
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("operation '%s' is not supported", e.Operation)
}

// ArityError flags an operand count that violates an operation's arity rule.
type ArityError struct {
	Operation Operation
	Want      int
	AtLeast   bool
}

func (e *ArityError) Error() string {
	noun := "operands"
	if e.Want == 1 {
		noun = "operand"
	}
	if e.AtLeast {
		return fmt.Sprintf("%s requires at least %d %s", e.Operation, e.Want, noun)
	}
	return fmt.Sprintf("%s requires exactly %d %s", e.Operation, e.Want, noun)
}

// DomainError flags operands outside an operation's mathematical domain,
// such as the square root of a negative number.
type DomainError struct {
	Operation Operation
	Reason    string
}

func (e *DomainError) Error() string {
	return e.Reason
}
