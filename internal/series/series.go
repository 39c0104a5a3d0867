// Package series generates the terms of a linear recurrence defined by a seed
// and an ordered list of instructions.
package series

import (
	"errors"
	"iter"
	"math"
	"slices"
	"strconv"

	"github.com/vk/recurrence/internal/instruction"
)

// ErrNegativeCount is returned by New when asked for fewer than zero terms.
var ErrNegativeCount = errors.New("count must not be negative")

// Generator produces `count` terms starting at the seed. Each following term
// is the previous one with every instruction applied in order.
type Generator struct {
	seed         float64
	count        int
	instructions []instruction.Instruction
}

// New creates a Generator. The instruction slice is copied, so later changes
// by the caller do not affect generation.
func New(seed float64, count int, instructions []instruction.Instruction) (*Generator, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}
	return &Generator{
		seed:         seed,
		count:        count,
		instructions: slices.Clone(instructions),
	}, nil
}

// Seed returns the first term.
func (g *Generator) Seed() float64 { return g.seed }

// Count returns the number of terms Terms yields.
func (g *Generator) Count() int { return g.count }

// Instructions returns a copy of the instruction list.
func (g *Generator) Instructions() []instruction.Instruction {
	return slices.Clone(g.instructions)
}

// Step folds the instruction list over x, left to right. With no
// instructions it returns x unchanged.
func (g *Generator) Step(x float64) float64 {
	for _, ins := range g.instructions {
		x = ins.Apply(x)
	}
	return x
}

// Terms returns the series as a lazy sequence. Every range over the returned
// sequence starts again from the seed.
func (g *Generator) Terms() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		term := g.seed
		for i := 0; i < g.count; i++ {
			if !yield(term) {
				return
			}
			// The last term's successor is never observed.
			if i+1 < g.count {
				term = g.Step(term)
			}
		}
	}
}

// Format renders a term in plain decimal notation without an exponent,
// using the shortest representation that round-trips. Non-finite values are
// written as inf, -inf and NaN.
func Format(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
