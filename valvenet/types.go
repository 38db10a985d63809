// Package valvenet defines core types, configuration options and sentinel
// errors for the valve-network solver.
//
// Options:
//
//	– Start:   ID of the valve the search begins at (default "AA").
//	– Budget:  total minutes available for walking and opening (default 30).
//	– NoBound: disable branch-and-bound pruning and enumerate every state.
//
// Errors (sentinel):
//
//	– ErrMalformedRecord  if a record violates the grammar, duplicates a valve,
//	  or references an undefined valve.
//	– ErrEmptyInput       if the input contains no valve records at all.
//	– ErrNilNetwork       if a nil *Network is passed to a solver.
//	– ErrEmptyStart       if the configured start valve ID is empty.
//	– ErrBadBudget        if the configured time budget is negative.
//	– ErrUnknownValve     if an operation names a valve the network lacks.
//	– ErrTooManyValves    if more than 64 valves have nonzero flow rate.
//	– ErrInternalInvariant if the relaxation loop dequeues a valve whose
//	  distance was never established (programming defect, fail fast).
package valvenet

import "errors"

// Sentinel errors returned by the valvenet package.
var (
	// ErrMalformedRecord indicates input text that does not match the valve
	// record grammar, a duplicated valve label, or a tunnel reference to a
	// valve that no record defines. No partial network is ever returned.
	ErrMalformedRecord = errors.New("valvenet: malformed valve record")

	// ErrEmptyInput indicates that the input stream held no valve records.
	ErrEmptyInput = errors.New("valvenet: input contains no valve records")

	// ErrNilNetwork indicates that a nil *Network was passed to a solver.
	ErrNilNetwork = errors.New("valvenet: network is nil")

	// ErrEmptyStart indicates that the configured start valve ID is empty.
	ErrEmptyStart = errors.New("valvenet: start valve ID is empty")

	// ErrBadBudget indicates a negative time budget, which is not meaningful.
	ErrBadBudget = errors.New("valvenet: time budget must be non-negative")

	// ErrUnknownValve indicates that an operation referenced a valve ID the
	// network does not contain.
	ErrUnknownValve = errors.New("valvenet: valve not found in network")

	// ErrTooManyValves indicates more nonzero-flow valves than the search's
	// 64-bit opened-set mask can address.
	ErrTooManyValves = errors.New("valvenet: more than 64 valves with nonzero flow rate")

	// ErrInternalInvariant indicates that the frontier relaxation selected a
	// valve with no recorded distance. This signals a defect in the loop
	// itself, never a property of the input; callers should not retry.
	ErrInternalInvariant = errors.New("valvenet: internal invariant violated")
)

// Valve is one arena entry of the network: a stable string label, a
// non-negative flow rate, and the labels of directly adjacent valves.
// Valves are immutable once the network is built.
type Valve struct {
	ID      string   // short label, two uppercase letters
	Rate    int      // pressure released per minute once opened
	Tunnels []string // labels of valves one tunnel hop away
}

// Network is an arena of valves addressed by label. All relationships are
// expressed as label lookups; no valve holds a pointer to another. The
// network is read-only after ParseNetwork returns it.
type Network struct {
	valves map[string]*Valve
	ids    []string // all labels, sorted; fixes every iteration order
}

// Len returns the number of valves in the network.
func (n *Network) Len() int { return len(n.ids) }

// Has reports whether the network contains a valve with the given label.
func (n *Network) Has(id string) bool {
	_, ok := n.valves[id]

	return ok
}

// Valve returns a copy of the valve with the given label. The copy's tunnel
// slice is cloned so callers cannot alter the network through it.
func (n *Network) Valve(id string) (Valve, bool) {
	v, ok := n.valves[id]
	if !ok {
		return Valve{}, false
	}

	return Valve{
		ID:      v.ID,
		Rate:    v.Rate,
		Tunnels: append([]string(nil), v.Tunnels...),
	}, true
}

// IDs returns all valve labels in sorted order. The slice is a fresh copy.
func (n *Network) IDs() []string {
	return append([]string(nil), n.ids...)
}

// DistanceTable maps a source valve label to the minimum tunnel-hop count of
// every valve reachable from it. distance(a,a) == 0; unreachable valves are
// simply absent, never represented as "infinite" entries.
type DistanceTable map[string]map[string]int

// Activation records one opened valve and the minute it was opened.
type Activation struct {
	Valve  string // label of the opened valve
	Minute int    // minute the opening completed (1-based)
}

// Result is the outcome of a single-agent search: the maximum total pressure
// relieved within the budget and one opening sequence that achieves it.
// Only Pressure is a stable contract; when several sequences tie for the
// maximum, Opened holds whichever the search settled on.
type Result struct {
	Pressure int
	Opened   []Activation
}

// PairResult is the outcome of the two-agent search: the maximum summed
// pressure and the two agents' disjoint opening sequences.
type PairResult struct {
	Pressure int
	First    []Activation
	Second   []Activation
}

// Options configures the search.
//
//	– Start:   valve the search begins at (must be present in the network).
//	– Budget:  total minutes available; travel costs distance minutes and
//	  each opening costs one more. Must be ≥ 0.
//	– NoBound: disable the admissible upper-bound cut and enumerate the
//	  full state space. The maximum pressure is identical either way; the
//	  toggle exists for testing and benchmarking.
type Options struct {
	Start   string
	Budget  int
	NoBound bool
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithStart sets the valve the search begins at.
func WithStart(id string) Option {
	return func(o *Options) {
		o.Start = id
	}
}

// WithBudget sets the total minute budget.
// Must pass a non-negative value; negative values cause a panic with
// ErrBadBudget, signalling invalid configuration early.
func WithBudget(minutes int) Option {
	return func(o *Options) {
		if minutes < 0 {
			panic(ErrBadBudget.Error())
		}
		o.Budget = minutes
	}
}

// WithoutBound disables branch-and-bound pruning. Every reachable state is
// enumerated, which is what the per-opened-set table of SolvePair requires
// and what equality tests compare against.
func WithoutBound() Option {
	return func(o *Options) {
		o.NoBound = true
	}
}

// DefaultOptions returns an Options struct initialized with the puzzle's
// canonical parameters. Use this as a starting point for functional-options
// overrides.
//
// Defaults:
//   - Start:   "AA" (the puzzle's starting position).
//   - Budget:  30 minutes.
//   - NoBound: false (pruning enabled).
func DefaultOptions() Options {
	return Options{
		Start:   "AA",
		Budget:  30,
		NoBound: false,
	}
}
