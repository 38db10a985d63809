package valvenet_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/advent2022/valvenet"
)

// TestDistances_KnownHops spot-checks hop counts on the published example.
func TestDistances_KnownHops(t *testing.T) {
	net := mustNetwork(t, exampleRecords)

	d, err := net.Distances("AA")
	if err != nil {
		t.Fatalf("Distances(AA): %v", err)
	}
	want := map[string]int{
		"AA": 0, "BB": 1, "DD": 1, "II": 1,
		"CC": 2, "EE": 2, "JJ": 2,
		"FF": 3, "GG": 4, "HH": 5,
	}
	for id, hops := range want {
		if got, ok := d[id]; !ok || got != hops {
			t.Errorf("distance AA→%s = %d (present=%v); want %d", id, got, ok, hops)
		}
	}
	if len(d) != len(want) {
		t.Errorf("Distances(AA) has %d entries; want %d", len(d), len(want))
	}
}

// TestAllDistances_Properties verifies the table invariants on the example:
// zero self-distance, undirected symmetry, and the triangle inequality.
func TestAllDistances_Properties(t *testing.T) {
	net := mustNetwork(t, exampleRecords)

	table, err := net.AllDistances()
	if err != nil {
		t.Fatalf("AllDistances: %v", err)
	}
	ids := net.IDs()
	if len(table) != len(ids) {
		t.Fatalf("table covers %d sources; want %d", len(table), len(ids))
	}

	for _, a := range ids {
		if d := table[a][a]; d != 0 {
			t.Errorf("distance(%s,%s) = %d; want 0", a, a, d)
		}
		for _, b := range ids {
			dab, okAB := table[a][b]
			dba, okBA := table[b][a]
			if okAB != okBA || dab != dba {
				t.Errorf("asymmetric: distance(%s,%s)=%d,%v distance(%s,%s)=%d,%v",
					a, b, dab, okAB, b, a, dba, okBA)
			}
			for _, c := range ids {
				dac, ok1 := table[a][c]
				dbc, ok2 := table[b][c]
				if okAB && ok1 && ok2 && dac > dab+dbc {
					t.Errorf("triangle violated: d(%s,%s)=%d > d(%s,%s)+d(%s,%s)=%d",
						a, c, dac, a, b, b, c, dab+dbc)
				}
			}
		}
	}
}

// TestDistances_UnreachableAbsent ensures valves in another component are
// simply missing from the result rather than reported as errors.
func TestDistances_UnreachableAbsent(t *testing.T) {
	records := `Valve AA has flow rate=0; tunnel leads to valve BB
Valve BB has flow rate=5; tunnel leads to valve AA
Valve CC has flow rate=7; tunnel leads to valve DD
Valve DD has flow rate=0; tunnel leads to valve CC`
	net := mustNetwork(t, records)

	d, err := net.Distances("AA")
	if err != nil {
		t.Fatalf("Distances(AA): %v", err)
	}
	if len(d) != 2 {
		t.Fatalf("Distances(AA) = %v; want exactly AA and BB", d)
	}
	for _, id := range []string{"CC", "DD"} {
		if _, present := d[id]; present {
			t.Errorf("unreachable valve %s present in table", id)
		}
	}
}

// TestDistances_UnknownSource covers the unknown-valve failure path.
func TestDistances_UnknownSource(t *testing.T) {
	net := mustNetwork(t, exampleRecords)
	if _, err := net.Distances("ZZ"); !errors.Is(err, valvenet.ErrUnknownValve) {
		t.Errorf("Distances(ZZ) error = %v; want ErrUnknownValve", err)
	}
}
