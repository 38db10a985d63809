// Package valvenet solves the pressure-valve network puzzle: given a set of
// valves connected by tunnels, each with a flow rate, find the sequence of
// valve openings that relieves the most pressure within a fixed time budget.
//
// The pipeline has three stages:
//
//   - ParseNetwork — reads valve records (`Valve AA has flow rate=0; tunnels
//     lead to valves DD, II, BB`) into an immutable Network. Every tunnel
//     reference must resolve to a defined valve; otherwise no network is
//     returned at all.
//
//   - AllDistances — computes the minimum tunnel-hop count between every pair
//     of valves, one single-source relaxation pass per valve over a shrinking
//     frontier with scan-based minimum extraction.
//
//   - Complexity: O(V²) per source, O(V³) for the full table. V is a few
//     dozen in practice, so the simple scan beats the bookkeeping of a
//     priority queue.
//
//   - Solve / SolvePair — exhaustive worklist search over opening orders.
//     From a state, the only move is "walk to an unopened valve with nonzero
//     flow and open it", costing distance+1 minutes; a state with no legal
//     move is terminal and scores the pressure its opened valves relieve by
//     the end of the budget. Solve prunes branches whose admissible upper
//     bound cannot beat the incumbent (disable with WithoutBound; the maximum
//     is identical either way). SolvePair splits the work between two agents
//     opening disjoint valve sets, built on a best-pressure-per-opened-set
//     table keyed by bitmask.
//
//   - Complexity: exponential in the number of nonzero-flow valves
//     (at most ~15–20 in realistic inputs).
//
// Only the maximum pressure is a stable contract; when several opening orders
// tie, the reported sequence is one of them.
//
// Use this package when you need the optimal opening plan for small valve
// networks; it is not a general-purpose graph library.
package valvenet
