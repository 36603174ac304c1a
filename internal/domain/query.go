package domain

// ParsedQuery is the structured form of one natural-language question.
// It is transient: produced by a parser, consumed once by a calculator,
// never retained.
type ParsedQuery struct {
	Operation    Operation
	Operands     []float64
	OriginalText string
}
