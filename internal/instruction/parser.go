package instruction

import (
	"math"
	"strconv"
	"strings"
)

// Parse converts a single token such as "+3.5" into an Instruction.
//
// The operator is checked first, so a token like "x" fails with
// ErrInvalidOperator even though it also has no operand.
func Parse(token string) (Instruction, error) {
	if token == "" {
		return Instruction{}, &ParseError{Token: token, Err: ErrInvalidOperator}
	}

	op, ok := operatorFromSymbol(token[0])
	if !ok {
		return Instruction{}, &ParseError{Token: token, Err: ErrInvalidOperator}
	}

	operand, err := parseOperand(token[1:])
	if err != nil {
		return Instruction{}, &ParseError{Token: token, Err: ErrInvalidOperand}
	}

	return Instruction{Operator: op, Operand: operand}, nil
}

// parseOperand accepts any finite float literal strconv understands.
// Spellings of infinity and NaN, and values outside float64 range, are rejected.
func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// ParseAll parses every token, keeping the valid instructions in their
// original order. Failed tokens are returned separately so the caller can
// decide whether to report or discard them.
func ParseAll(tokens []string) ([]Instruction, []error) {
	instructions := make([]Instruction, 0, len(tokens))
	var errs []error
	for _, token := range tokens {
		inst, err := Parse(token)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		instructions = append(instructions, inst)
	}
	return instructions, errs
}

// Fields splits whitespace-delimited groups of tokens into individual tokens,
// so []string{"+3 *2", "-1"} becomes []string{"+3", "*2", "-1"}.
func Fields(raw ...string) []string {
	var tokens []string
	for _, group := range raw {
		tokens = append(tokens, strings.Fields(group)...)
	}
	return tokens
}
