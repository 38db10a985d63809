// Package packets orders distress-signal packets.
//
// A packet is a recursive value: an integer or a list of packets, written
// on one line in JSON array syntax. Compare implements the signal ordering;
// SumInOrder and DecoderKey answer the two puzzle questions over a stream
// of packet pairs.
package packets

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrBadPacket indicates a line that is not a valid packet: malformed JSON,
// a non-integer number, an element that is neither number nor list, or a
// pair group that does not hold exactly two packets.
var ErrBadPacket = errors.New("packets: malformed packet")

// Packet is one packet element. Leaf packets hold an integer; list packets
// hold their sub-packets in Items.
type Packet struct {
	IsInt bool
	Int   int
	Items []Packet
}

// ParsePacket reads a single packet from one input line. Numbers must be
// integers; elements must be numbers or lists; nothing may follow the
// packet on the line.
func ParsePacket(line string) (Packet, error) {
	dec := json.NewDecoder(strings.NewReader(line))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Packet{}, fmt.Errorf("%w: %q", ErrBadPacket, line)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Packet{}, fmt.Errorf("%w: trailing data in %q", ErrBadPacket, line)
	}

	return fromJSON(raw, line)
}

// fromJSON converts a decoded JSON tree into a Packet tree.
func fromJSON(v any, line string) (Packet, error) {
	switch x := v.(type) {
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return Packet{}, fmt.Errorf("%w: non-integer number %s in %q", ErrBadPacket, x, line)
		}

		return Packet{IsInt: true, Int: int(n)}, nil
	case []any:
		items := make([]Packet, len(x))
		for i, elem := range x {
			p, err := fromJSON(elem, line)
			if err != nil {
				return Packet{}, err
			}
			items[i] = p
		}

		return Packet{Items: items}, nil
	default:
		return Packet{}, fmt.Errorf("%w: unsupported element in %q", ErrBadPacket, line)
	}
}

// Compare reports the signal ordering of a and b: -1 when a comes first,
// +1 when b does, 0 when they tie.
//
// Integers compare by value. Lists compare element by element, with the
// shorter list winning a full-prefix tie. An integer compared against a
// list is promoted to a one-element list.
func Compare(a, b Packet) int {
	switch {
	case a.IsInt && b.IsInt:
		switch {
		case a.Int < b.Int:
			return -1
		case a.Int > b.Int:
			return 1
		default:
			return 0
		}
	case a.IsInt:
		return Compare(Packet{Items: []Packet{a}}, b)
	case b.IsInt:
		return Compare(a, Packet{Items: []Packet{b}})
	default:
		for i := 0; i < len(a.Items) && i < len(b.Items); i++ {
			if c := Compare(a.Items[i], b.Items[i]); c != 0 {
				return c
			}
		}
		switch {
		case len(a.Items) < len(b.Items):
			return -1
		case len(a.Items) > len(b.Items):
			return 1
		default:
			return 0
		}
	}
}

// SumInOrder reads blank-line-separated packet pairs from r and sums the
// 1-based indices of the pairs whose first packet compares strictly before
// the second.
func SumInOrder(r io.Reader) (int, error) {
	pairs, err := parsePairs(r)
	if err != nil {
		return 0, err
	}

	sum := 0
	for i, pair := range pairs {
		if Compare(pair[0], pair[1]) < 0 {
			sum += i + 1
		}
	}

	return sum, nil
}

// DecoderKey reads every packet from r, adds the divider packets [[2]] and
// [[6]], sorts the lot with Compare, and multiplies the dividers' 1-based
// positions.
func DecoderKey(r io.Reader) (int, error) {
	pairs, err := parsePairs(r)
	if err != nil {
		return 0, err
	}

	type ranked struct {
		p       Packet
		divider bool
	}
	all := make([]ranked, 0, 2*len(pairs)+2)
	for _, pair := range pairs {
		all = append(all, ranked{p: pair[0]}, ranked{p: pair[1]})
	}
	for _, line := range []string{"[[2]]", "[[6]]"} {
		div, err := ParsePacket(line)
		if err != nil {
			return 0, err
		}
		all = append(all, ranked{p: div, divider: true})
	}

	sort.SliceStable(all, func(i, j int) bool { return Compare(all[i].p, all[j].p) < 0 })

	key := 1
	for i := range all {
		if all[i].divider {
			key *= i + 1
		}
	}

	return key, nil
}

// parsePairs groups non-blank lines into packet pairs. Every group must
// hold exactly two lines.
func parsePairs(r io.Reader) ([][2]Packet, error) {
	var (
		pairs [][2]Packet
		group []Packet
	)
	flush := func() error {
		switch len(group) {
		case 0:
			return nil
		case 2:
			pairs = append(pairs, [2]Packet{group[0], group[1]})
			group = nil

			return nil
		default:
			return fmt.Errorf("%w: group of %d packets, want 2", ErrBadPacket, len(group))
		}
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
		p, err := ParsePacket(line)
		if err != nil {
			return nil, err
		}
		group = append(group, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("packets: reading packets: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return pairs, nil
}
