package valvenet

import "sort"

// SolvePair runs the two-agent variant: both agents start at Options.Start
// at minute zero with the same budget and open disjoint sets of valves; the
// answer is the maximum summed pressure. The puzzle's canonical pair budget
// is 26 minutes; pass WithBudget(26).
//
// The engine enumerates every single-agent state with pruning forced off and
// keeps the best pressure per opened set, keyed on the activated-set
// bitmask. The answer is then the best sum over two entries whose masks do
// not intersect. Recording covers every state, not just terminal ones,
// because an agent may stop early and leave the rest to its partner.
//
// Complexity: the full single-agent enumeration plus O(K²) over the K
// distinct opened sets reached, cut early on the pressure-sorted table.
func SolvePair(net *Network, opts ...Option) (PairResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	e, err := prepare(net, cfg, true)
	if err != nil {
		return PairResult{}, err
	}
	e.run()

	return bestDisjoint(e.perMask), nil
}

// maskEntry pairs an opened-set mask with the best result recorded for it.
type maskEntry struct {
	mask uint64
	res  Result
}

// bestDisjoint finds the highest summed pressure over two entries with
// disjoint opened sets. Entries are scanned in descending pressure order
// (mask ascending on ties, so the scan is deterministic) and the loops stop
// as soon as no remaining pair can strictly beat the incumbent.
func bestDisjoint(table map[uint64]Result) PairResult {
	entries := make([]maskEntry, 0, len(table))
	for m, r := range table {
		entries = append(entries, maskEntry{mask: m, res: r})
	}
	if len(entries) == 0 {
		return PairResult{}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].res.Pressure != entries[j].res.Pressure {
			return entries[i].res.Pressure > entries[j].res.Pressure
		}

		return entries[i].mask < entries[j].mask
	})

	var best PairResult
	for i := 0; i < len(entries); i++ {
		// Partners sit at j ≥ i, so no pair from here on can exceed twice
		// this entry's pressure.
		if 2*entries[i].res.Pressure <= best.Pressure {
			break
		}
		for j := i; j < len(entries); j++ {
			if entries[i].res.Pressure+entries[j].res.Pressure <= best.Pressure {
				break
			}
			if entries[i].mask&entries[j].mask != 0 {
				continue
			}
			best = PairResult{
				Pressure: entries[i].res.Pressure + entries[j].res.Pressure,
				First:    entries[i].res.Opened,
				Second:   entries[j].res.Opened,
			}
		}
	}

	return best
}
