package domain

// Operation names one supported calculation.
type Operation string

const (
	OpAdd       Operation = "add"
	OpSubtract  Operation = "subtract"
	OpMultiply  Operation = "multiply"
	OpDivide    Operation = "divide"
	OpPower     Operation = "power"
	OpSquare    Operation = "square"
	OpCube      Operation = "cube"
	OpSqrt      Operation = "sqrt"
	OpCbrt      Operation = "cbrt"
	OpSin       Operation = "sin"
	OpCos       Operation = "cos"
	OpTan       Operation = "tan"
	OpLog       Operation = "log"
	OpLn        Operation = "ln"
	OpFactorial Operation = "factorial"
)

// OperationUnknown labels history entries whose operation could not be
// classified.
const OperationUnknown Operation = "unknown"

// Operations lists every supported operation. The order is load-bearing:
// parsers try patterns in this order and the first match wins.
var Operations = []Operation{
	OpAdd, OpSubtract, OpMultiply, OpDivide,
	OpPower, OpSquare, OpCube,
	OpSqrt, OpCbrt,
	OpSin, OpCos, OpTan,
	OpLog, OpLn,
	OpFactorial,
}
