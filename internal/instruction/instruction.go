package instruction

import "strconv"

// Instruction pairs an Operator with the literal operand it is applied with.
type Instruction struct {
	Operator Operator
	Operand  float64
}

// New creates an Instruction. It is mostly useful in tests and for callers
// building instructions without going through the token grammar.
func New(op Operator, operand float64) Instruction {
	return Instruction{Operator: op, Operand: operand}
}

// Apply returns the result of applying the instruction to n.
func (i Instruction) Apply(n float64) float64 {
	return i.Operator.apply(n, i.Operand)
}

// String renders the canonical token form, which Parse accepts back.
func (i Instruction) String() string {
	return i.Operator.Symbol() + strconv.FormatFloat(i.Operand, 'g', -1, 64)
}
