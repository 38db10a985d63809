// Package valvenet — exhaustive worklist search over valve opening orders.
//
// Solve enumerates every reachable search state under the transition rule
// "walk to an unopened nonzero-flow valve and open it" and keeps the best
// terminal state. The engine below owns all mutable search data; nothing is
// shared between invocations, so repeated solves (different budgets, same
// network) never leak state into each other.
//
// Notes on implementation choices:
//
//   - We compute the distance table once up front; transitions then cost a
//     single map lookup instead of a walk.
//   - We branch in the sorted label order of the nonzero-flow valves:
//     fully deterministic runs, reproducible winning sequences among ties.
//   - We cut a branch when an admissible upper bound (banked pressure plus
//     each closed valve's yield if opened via its shortest distance right
//     now) cannot strictly beat the incumbent. NoBound disables the cut;
//     the maximum is identical either way.
//   - We carry the opened set both as an ordered history (for reporting)
//     and as a bitmask (for O(1) membership and the per-set table behind
//     SolvePair).
package valvenet

import "fmt"

// searchState is one candidate partial solution: the current position, the
// valves opened so far (ordered history plus bitmask), the minute the last
// opening completed, and the pressure those openings will have relieved by
// the end of the budget.
type searchState struct {
	current  string
	opened   []Activation
	mask     uint64
	elapsed  int
	relieved int
}

// searchEngine holds all search data for a single invocation.
// We use a dedicated engine struct (instead of package-level state) so that
// the incumbent's lifetime is scoped to the invocation that created it.
type searchEngine struct {
	net  *Network
	dist DistanceTable
	opts Options

	useful []string       // nonzero-flow valve labels, sorted: the branching order
	bitOf  map[string]int // useful valve label → bit index in the opened mask

	work []searchState // LIFO worklist of pending states

	best     Result // incumbent: best terminal state found so far
	useBound bool

	perMask map[uint64]Result // best result per opened set; nil unless recording
}

// newSearchEngine assembles an engine for one run. recordMasks switches the
// engine into per-opened-set mode for SolvePair, which also forces the bound
// off: the table must hold the exact maximum for every set, not only for the
// sets on the globally best path.
func newSearchEngine(net *Network, dist DistanceTable, cfg Options, recordMasks bool) (*searchEngine, error) {
	e := &searchEngine{
		net:      net,
		dist:     dist,
		opts:     cfg,
		bitOf:    make(map[string]int),
		useBound: !cfg.NoBound,
	}
	for _, id := range net.ids {
		if net.valves[id].Rate > 0 {
			e.bitOf[id] = len(e.useful)
			e.useful = append(e.useful, id)
		}
	}
	if len(e.useful) > 64 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyValves, len(e.useful))
	}
	if recordMasks {
		e.perMask = make(map[uint64]Result)
		e.useBound = false
	}

	return e, nil
}

// bit returns the opened-set mask bit of a useful valve.
func (e *searchEngine) bit(v string) uint64 { return 1 << e.bitOf[v] }

// run seeds the worklist with the initial state and drains it. Worklist
// order does not affect the answer (every terminal state is scored
// independently), so states are popped from the tail, which keeps the list
// no deeper than one entry per partial opening order on the current path.
func (e *searchEngine) run() {
	e.work = append(e.work, searchState{current: e.opts.Start})

	for len(e.work) > 0 {
		s := e.work[len(e.work)-1]
		e.work = e.work[:len(e.work)-1]

		if e.perMask != nil {
			e.recordMask(s)
		}

		// Prune: equal-or-worse completions cannot strictly beat the
		// incumbent, and only strict improvements are ever recorded.
		if e.useBound && e.upperBound(s) <= e.best.Pressure {
			continue
		}

		if !e.expand(s) {
			e.recordTerminal(s)
		}
	}
}

// expand pushes every legal successor of s and reports whether any exists.
// A transition opens valve v at minute elapsed + distance + 1 (walk there,
// then one minute to open) and is legal only if v is closed, has nonzero
// flow, and the opening completes within the budget.
func (e *searchEngine) expand(s searchState) bool {
	row := e.dist[s.current]
	spawned := false
	for _, v := range e.useful {
		if s.mask&e.bit(v) != 0 {
			continue // already opened in this history
		}
		d, ok := row[v]
		if !ok {
			continue // unreachable from the current position
		}
		t := s.elapsed + d + 1
		if t > e.opts.Budget {
			continue
		}

		// Fresh history per successor; sharing the parent's backing array
		// would let sibling branches overwrite each other.
		opened := make([]Activation, len(s.opened)+1)
		copy(opened, s.opened)
		opened[len(s.opened)] = Activation{Valve: v, Minute: t}

		e.work = append(e.work, searchState{
			current:  v,
			opened:   opened,
			mask:     s.mask | e.bit(v),
			elapsed:  t,
			relieved: s.relieved + e.net.valves[v].Rate*(e.opts.Budget-t),
		})
		spawned = true
	}

	return spawned
}

// upperBound returns an admissible bound on the pressure any completion of s
// can relieve: the banked pressure plus, per closed valve, its yield if it
// were opened via its shortest distance right now. No completion can open a
// valve sooner than that, so the bound never underestimates.
func (e *searchEngine) upperBound(s searchState) int {
	ub := s.relieved
	row := e.dist[s.current]
	for _, v := range e.useful {
		if s.mask&e.bit(v) != 0 {
			continue
		}
		d, ok := row[v]
		if !ok {
			continue
		}
		t := s.elapsed + d + 1
		if t >= e.opts.Budget {
			continue // opening at or past the deadline yields nothing
		}
		ub += e.net.valves[v].Rate * (e.opts.Budget - t)
	}

	return ub
}

// recordTerminal commits a new incumbent when the terminal state strictly
// beats the best one seen so far.
func (e *searchEngine) recordTerminal(s searchState) {
	if s.relieved > e.best.Pressure {
		e.best = Result{Pressure: s.relieved, Opened: s.opened}
	}
}

// recordMask keeps the best result per opened set. Every popped state counts,
// not only terminal ones: an agent may stop early and leave the remaining
// valves to its partner.
func (e *searchEngine) recordMask(s searchState) {
	if r, ok := e.perMask[s.mask]; !ok || s.relieved > r.Pressure {
		e.perMask[s.mask] = Result{Pressure: s.relieved, Opened: s.opened}
	}
}

// Solve finds the maximum total pressure a single agent can relieve within
// the budget, together with one opening sequence that achieves it.
//
// Preconditions and validation (in order):
//  1. net must be non-nil (ErrNilNetwork).
//  2. Options.Start must be non-empty (ErrEmptyStart).
//  3. Options.Budget must be ≥ 0 (ErrBadBudget).
//  4. net must contain the start valve (ErrUnknownValve).
//
// The distance table is built per call and discarded with the engine.
//
// Complexity: O(V³) for the distance table, then exponential in the number
// of nonzero-flow valves; pruning keeps realistic inputs comfortably small.
func Solve(net *Network, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	e, err := prepare(net, cfg, false)
	if err != nil {
		return Result{}, err
	}
	e.run()

	return e.best, nil
}

// prepare validates inputs, builds the distance table, and assembles a fresh
// engine. Shared by Solve and SolvePair.
func prepare(net *Network, cfg Options, recordMasks bool) (*searchEngine, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if cfg.Start == "" {
		return nil, ErrEmptyStart
	}
	if cfg.Budget < 0 {
		return nil, ErrBadBudget
	}
	if !net.Has(cfg.Start) {
		return nil, fmt.Errorf("%w: start %q", ErrUnknownValve, cfg.Start)
	}

	table, err := net.AllDistances()
	if err != nil {
		return nil, err
	}

	return newSearchEngine(net, table, cfg, recordMasks)
}

// TotalPressure scores an opening sequence against a budget: each opened
// valve relieves rate × (budget − minute), and openings at or past the
// budget contribute nothing. The search never emits such openings;
// hand-built sequences may. Returns ErrUnknownValve when the sequence
// names a valve the network lacks.
func (n *Network) TotalPressure(opened []Activation, budget int) (int, error) {
	if n == nil {
		return 0, ErrNilNetwork
	}

	total := 0
	for _, a := range opened {
		v, ok := n.valves[a.Valve]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownValve, a.Valve)
		}
		if a.Minute >= budget {
			continue
		}
		total += v.Rate * (budget - a.Minute)
	}

	return total, nil
}
