package valvenet

import "fmt"

// Distances computes the minimum number of tunnel hops from the valve `from`
// to every valve reachable from it.
//
// The algorithm is a relaxation loop over a shrinking frontier set with
// scan-based minimum extraction: all valves start pending, the pending valve
// with the smallest recorded distance is fixed and removed, and its tunnels
// relax the distances of its still-pending neighbors. With uniform hop cost
// this is equivalent to breadth-first expansion, but the relaxation form
// generalizes to weighted tunnels unchanged.
//
// Unreachable valves never acquire a distance: when no pending valve has one
// left, the loop ends and those labels are absent from the result (they are
// not reported as an error and not represented as "infinite").
//
// Returns ErrUnknownValve if `from` is not in the network, and
// ErrInternalInvariant if a valve is dequeued without a recorded distance
// (a defect in the loop itself; cannot be triggered by input).
//
// Complexity: O(V²) time with the linear frontier scan, O(V) space.
func (n *Network) Distances(from string) (map[string]int, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}
	if _, ok := n.valves[from]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownValve, from)
	}

	// 1) All valves start pending; only the source has a distance.
	pending := make(map[string]bool, len(n.ids))
	for _, id := range n.ids {
		pending[id] = true
	}
	dist := make(map[string]int, len(n.ids))
	dist[from] = 0

	for len(pending) > 0 {
		// 2) Scan the frontier for the pending valve with the smallest
		//    recorded distance. Sorted label order keeps ties deterministic.
		u, ok := n.closestPending(pending, dist)
		if !ok {
			// Every remaining pending valve is unreachable from the source.
			break
		}

		// 3) Its distance is final now. A missing entry here would mean the
		//    scan handed back a valve it never relaxed; fail fast.
		base, ok := dist[u]
		if !ok {
			return nil, fmt.Errorf("%w: valve %q dequeued without a distance", ErrInternalInvariant, u)
		}
		delete(pending, u)

		// 4) Relax the still-pending neighbors: one hop beyond u.
		for _, t := range n.valves[u].Tunnels {
			if !pending[t] {
				continue
			}
			if d, seen := dist[t]; !seen || base+1 < d {
				dist[t] = base + 1
			}
		}
	}

	return dist, nil
}

// closestPending returns the pending valve with the smallest recorded
// distance, scanning labels in sorted order. ok is false when no pending
// valve has a distance yet, i.e. the remaining frontier is disconnected
// from the source.
func (n *Network) closestPending(pending map[string]bool, dist map[string]int) (string, bool) {
	var (
		best  string
		bestD int
		found bool
	)
	for _, id := range n.ids {
		if !pending[id] {
			continue
		}
		d, ok := dist[id]
		if !ok {
			continue
		}
		if !found || d < bestD {
			best, bestD, found = id, d, true
		}
	}

	return best, found
}

// AllDistances runs Distances once per valve and returns the full table.
// The table is derived data: computed once, never mutated afterwards.
//
// Complexity: O(V³) time, O(V²) space. V is a few dozen at most, and the
// table is built exactly once per solve.
func (n *Network) AllDistances() (DistanceTable, error) {
	if n == nil {
		return nil, ErrNilNetwork
	}

	table := make(DistanceTable, len(n.ids))
	for _, id := range n.ids {
		d, err := n.Distances(id)
		if err != nil {
			return nil, err
		}
		table[id] = d
	}

	return table, nil
}
