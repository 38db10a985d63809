// Package monkeys simulates the keep-away game: a troop of monkeys passes
// worry-laden items around according to per-monkey inspection rules.
//
// The package exposes three operations:
//
//	– Parse:    read monkey descriptions from an input stream.
//	– Play:     run a number of rounds on a copy of the troop.
//	– Business: the product of the two largest inspection counts.
//
// Play never mutates its input; every invocation works on its own deep copy,
// so part 1 and part 2 can run from the same parsed troop.
package monkeys

import "errors"

// ErrBadMonkey indicates a monkey description that violates the expected
// block grammar: a malformed line, a non-numeric field, a non-positive
// divisor, or a throw target outside the troop.
var ErrBadMonkey = errors.New("monkeys: malformed monkey description")

// Operation is the worry update a monkey applies on inspection, always of
// the shape "new = old <op> <operand>". The operand is either a literal
// value or the old worry level itself.
type Operation struct {
	Mul   bool // multiply instead of add
	Old   bool // operand is the old worry level, Value is ignored
	Value int  // literal operand when Old is false
}

// Apply evaluates the operation for one inspected item.
func (op Operation) Apply(old int) int {
	operand := op.Value
	if op.Old {
		operand = old
	}
	if op.Mul {
		return old * operand
	}

	return old + operand
}

// Monkey holds one monkey's state: the worry levels of the items it carries,
// its inspection rule, and the running count of inspections it performed.
type Monkey struct {
	Items       []int     // worry levels, in throw order
	Op          Operation // worry update applied on inspection
	Divisor     int       // divisibility test, always positive
	OnTrue      int       // target monkey index when divisible
	OnFalse     int       // target monkey index otherwise
	Inspections int       // items inspected so far
}
