package monkeys

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Line prefixes of a monkey description block, matched after trimming.
const (
	headerPrefix  = "Monkey "
	itemsPrefix   = "Starting items: "
	opPrefix      = "Operation: new = "
	testPrefix    = "Test: divisible by "
	onTruePrefix  = "If true: throw to monkey "
	onFalsePrefix = "If false: throw to monkey "
)

// Parse reads blank-line-separated monkey blocks from r. Each block is six
// lines: header, starting items, operation, divisibility test, and the two
// throw targets. Blocks must be numbered in order starting at zero, and
// every throw target must name a monkey in the troop.
//
// Any grammar violation returns ErrBadMonkey wrapped with the offending
// line; no partial troop is ever returned.
func Parse(r io.Reader) ([]Monkey, error) {
	var (
		troop []Monkey
		block []string
	)
	flush := func() error {
		if len(block) == 0 {
			return nil
		}
		m, err := parseBlock(block, len(troop))
		if err != nil {
			return err
		}
		troop = append(troop, m)
		block = nil

		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		block = append(block, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("monkeys: reading descriptions: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(troop) == 0 {
		return nil, fmt.Errorf("%w: input contains no monkey blocks", ErrBadMonkey)
	}

	// Throw targets can point forward, so range checks wait until the whole
	// troop is known.
	for i := range troop {
		if !validTarget(troop[i].OnTrue, len(troop)) || !validTarget(troop[i].OnFalse, len(troop)) {
			return nil, fmt.Errorf("%w: monkey %d throws outside the troop", ErrBadMonkey, i)
		}
	}

	return troop, nil
}

func validTarget(target, size int) bool { return target >= 0 && target < size }

// parseBlock converts one six-line block into a Monkey. index is the
// monkey's position in the troop; the header must agree with it.
func parseBlock(lines []string, index int) (Monkey, error) {
	if len(lines) != 6 {
		return Monkey{}, fmt.Errorf("%w: block of %d lines, want 6", ErrBadMonkey, len(lines))
	}

	header, ok := strings.CutPrefix(lines[0], headerPrefix)
	if !ok {
		return Monkey{}, badLine(lines[0])
	}
	n, err := strconv.Atoi(strings.TrimSuffix(header, ":"))
	if err != nil || !strings.HasSuffix(header, ":") || n != index {
		return Monkey{}, badLine(lines[0])
	}

	var m Monkey
	itemText, ok := strings.CutPrefix(lines[1], itemsPrefix)
	if !ok {
		return Monkey{}, badLine(lines[1])
	}
	for _, field := range strings.Split(itemText, ", ") {
		worry, err := strconv.Atoi(field)
		if err != nil || worry < 0 {
			return Monkey{}, badLine(lines[1])
		}
		m.Items = append(m.Items, worry)
	}

	opText, ok := strings.CutPrefix(lines[2], opPrefix)
	if !ok {
		return Monkey{}, badLine(lines[2])
	}
	if m.Op, err = parseOperation(opText); err != nil {
		return Monkey{}, err
	}

	testText, ok := strings.CutPrefix(lines[3], testPrefix)
	if !ok {
		return Monkey{}, badLine(lines[3])
	}
	if m.Divisor, err = strconv.Atoi(testText); err != nil || m.Divisor <= 0 {
		return Monkey{}, badLine(lines[3])
	}

	trueText, ok := strings.CutPrefix(lines[4], onTruePrefix)
	if !ok {
		return Monkey{}, badLine(lines[4])
	}
	if m.OnTrue, err = strconv.Atoi(trueText); err != nil {
		return Monkey{}, badLine(lines[4])
	}

	falseText, ok := strings.CutPrefix(lines[5], onFalsePrefix)
	if !ok {
		return Monkey{}, badLine(lines[5])
	}
	if m.OnFalse, err = strconv.Atoi(falseText); err != nil {
		return Monkey{}, badLine(lines[5])
	}

	return m, nil
}

// parseOperation reads the right-hand side of "new = old <op> <operand>".
func parseOperation(text string) (Operation, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 || fields[0] != "old" {
		return Operation{}, badLine(text)
	}

	var op Operation
	switch fields[1] {
	case "+":
	case "*":
		op.Mul = true
	default:
		return Operation{}, badLine(text)
	}

	if fields[2] == "old" {
		op.Old = true

		return op, nil
	}
	value, err := strconv.Atoi(fields[2])
	if err != nil {
		return Operation{}, badLine(text)
	}
	op.Value = value

	return op, nil
}

func badLine(line string) error {
	return fmt.Errorf("%w: %q", ErrBadMonkey, line)
}

// Play runs the game for the given number of rounds on a deep copy of the
// troop and returns the copy; the input is never modified. Within a round,
// monkeys take turns in index order; each turn inspects and throws every
// item the monkey holds when the turn starts, so an item thrown forward is
// handled again in the same round.
//
// With calming, the worry level is divided by three after each inspection.
// Without calming the level is instead reduced modulo the product of all
// divisors, which leaves every divisibility test unchanged and keeps the
// values bounded over long games. The reduction must not run in calming
// mode: dividing a reduced level by three yields a different quotient once
// a level crosses the product.
func Play(troop []Monkey, rounds int, calming bool) []Monkey {
	ms := cloneTroop(troop)
	if len(ms) == 0 {
		return ms
	}

	modulo := 1
	for i := range ms {
		modulo *= ms[i].Divisor
	}

	for round := 0; round < rounds; round++ {
		for i := range ms {
			items := ms[i].Items
			ms[i].Items = nil
			ms[i].Inspections += len(items)
			for _, worry := range items {
				worry = ms[i].Op.Apply(worry)
				if calming {
					worry /= 3
				} else {
					worry %= modulo
				}
				target := ms[i].OnFalse
				if worry%ms[i].Divisor == 0 {
					target = ms[i].OnTrue
				}
				ms[target].Items = append(ms[target].Items, worry)
			}
		}
	}

	return ms
}

// cloneTroop copies the troop including each monkey's item slice.
func cloneTroop(troop []Monkey) []Monkey {
	ms := make([]Monkey, len(troop))
	for i, m := range troop {
		m.Items = append([]int(nil), m.Items...)
		ms[i] = m
	}

	return ms
}

// Business returns the product of the two largest inspection counts in the
// troop, or zero for troops smaller than two.
func Business(ms []Monkey) int {
	if len(ms) < 2 {
		return 0
	}

	counts := make([]int, len(ms))
	for i := range ms {
		counts[i] = ms[i].Inspections
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	return counts[0] * counts[1]
}
