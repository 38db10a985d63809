// Package valvenet_test — shared fixtures for the valvenet test suite.
package valvenet_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/advent2022/valvenet"
)

// exampleRecords is the puzzle's published ten-valve example. Its known
// optima: 1651 pressure with a 30-minute budget (single agent) and 1707
// with two agents at 26 minutes.
const exampleRecords = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II`

// triangleRecords is a three-valve clique: start AA with zero flow, BB and
// CC useful, every pairwise distance 1. With a 4-minute budget the optimum
// is 40, opening the higher-rate CC first.
const triangleRecords = `Valve AA has flow rate=0; tunnels lead to valves BB, CC
Valve BB has flow rate=10; tunnels lead to valves AA, CC
Valve CC has flow rate=20; tunnels lead to valves AA, BB`

// mustNetwork parses records or fails the test immediately.
func mustNetwork(tb testing.TB, records string) *valvenet.Network {
	tb.Helper()
	net, err := valvenet.ParseNetwork(strings.NewReader(records))
	if err != nil {
		tb.Fatalf("ParseNetwork: %v", err)
	}

	return net
}
