package instruction

import "fmt"

// Operator is the arithmetic operation of an Instruction.
type Operator int

const (
	OperatorInvalid Operator = iota
	Add
	Subtract
	Multiply
	Divide
)

// operatorSymbols maps the single-character prefix of a token to its Operator.
var operatorSymbols = map[byte]Operator{
	'+': Add,
	'-': Subtract,
	'*': Multiply,
	'/': Divide,
}

// operatorFromSymbol returns the Operator for a token prefix.
func operatorFromSymbol(c byte) (Operator, bool) {
	op, ok := operatorSymbols[c]
	return op, ok
}

// Symbol returns the token prefix for the operator, e.g. "+" for Add.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "?"
	}
}

// String implements fmt.Stringer.
func (o Operator) String() string {
	switch o {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Multiply:
		return "Multiply"
	case Divide:
		return "Divide"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// apply computes `n <op> operand`. Division by zero yields the IEEE-754
// result (±Inf or NaN).
func (o Operator) apply(n, operand float64) float64 {
	switch o {
	case Add:
		return n + operand
	case Subtract:
		return n - operand
	case Multiply:
		return n * operand
	case Divide:
		return n / operand
	default:
		panic(fmt.Sprintf("instruction: apply called with %s", o))
	}
}
