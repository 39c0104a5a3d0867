/*
Package instruction parses the compact operation grammar used to describe a
recurrence step.

A token is a single operator character followed by a numeric literal:

	+3      add 3
	-1.5    subtract 1.5
	*2      multiply by 2
	/4      divide by 4

The operand is fixed at parse time. An Instruction always applies the same
literal on every iteration.
*/
package instruction
