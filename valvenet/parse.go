package valvenet

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Record grammar markers. The singular forms appear when a valve has exactly
// one tunnel.
const (
	recordPrefix   = "Valve "
	rateMarker     = " has flow rate="
	pluralMarker   = "; tunnels lead to valves "
	singularMarker = "; tunnel leads to valve "
)

// ParseNetwork reads one valve record per line and returns the fully linked
// Network. Blank lines are ignored.
//
// Every failure is fatal: a grammar violation, a duplicated label, or a
// tunnel reference to an undefined valve yields ErrMalformedRecord (wrapped
// with the offending detail) and no partial network. An input with no
// records at all yields ErrEmptyInput.
//
// Complexity: O(V + E) over valves and tunnel references, plus O(V log V)
// for the sorted label index.
func ParseNetwork(r io.Reader) (*Network, error) {
	valves := make(map[string]*Valve)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := parseRecord(line)
		if err != nil {
			return nil, err
		}
		if _, dup := valves[v.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate valve %q", ErrMalformedRecord, v.ID)
		}
		valves[v.ID] = v
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("valvenet: reading records: %w", err)
	}
	if len(valves) == 0 {
		return nil, ErrEmptyInput
	}

	// Sorted label index; every later iteration order derives from it.
	ids := maps.Keys(valves)
	sort.Strings(ids)

	// Every tunnel reference must resolve before the network is handed out.
	for _, id := range ids {
		for _, t := range valves[id].Tunnels {
			if _, ok := valves[t]; !ok {
				return nil, fmt.Errorf("%w: valve %q references undefined valve %q",
					ErrMalformedRecord, id, t)
			}
		}
	}

	return &Network{valves: valves, ids: ids}, nil
}

// parseRecord decodes a single record line into a Valve.
func parseRecord(line string) (*Valve, error) {
	rest, ok := strings.CutPrefix(line, recordPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}

	id, rest, ok := strings.Cut(rest, rateMarker)
	if !ok {
		return nil, fmt.Errorf("%w: missing flow rate in %q", ErrMalformedRecord, line)
	}
	if !validLabel(id) {
		return nil, fmt.Errorf("%w: bad valve label %q", ErrMalformedRecord, id)
	}

	rateText, tunnelText, ok := strings.Cut(rest, pluralMarker)
	if !ok {
		rateText, tunnelText, ok = strings.Cut(rest, singularMarker)
	}
	if !ok {
		return nil, fmt.Errorf("%w: missing tunnel list in %q", ErrMalformedRecord, line)
	}

	rate, err := strconv.Atoi(rateText)
	if err != nil || rate < 0 {
		return nil, fmt.Errorf("%w: bad flow rate %q in %q", ErrMalformedRecord, rateText, line)
	}

	tunnels := strings.Split(tunnelText, ", ")
	for _, t := range tunnels {
		if !validLabel(t) {
			return nil, fmt.Errorf("%w: bad tunnel label %q in %q", ErrMalformedRecord, t, line)
		}
	}

	return &Valve{ID: id, Rate: rate, Tunnels: tunnels}, nil
}

// validLabel reports whether s is a valve label: exactly two uppercase
// letters.
func validLabel(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}

	return true
}
