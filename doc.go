// Package advent2022 is a compact collection of Advent of Code 2022
// solvers — one self-contained package per puzzle day, one CLI subcommand
// per package.
//
// 🚀 What is advent2022?
//
//	A set of independent, deterministic puzzle solvers:
//		• Valve networks: all-pairs distances + exhaustive activation search
//		• Keep-away: worry-arithmetic simulation over a troop of monkeys
//		• Heightmaps: fewest-steps climbing routes via breadth-first search
//		• Packets: recursive ordering of nested integer lists
//		• Sandfall: grain-by-grain cave simulation, with and without a floor
//		• Beacons: sensor exclusion spans and distress-beacon tuning
//		• Droplets: lava surface area, total and exterior-only
//
// ✨ Why this layout?
//
//   - One package per day – each owns its parsing, containers and search
//   - No shared framework – days never import each other
//   - Deterministic output – sorted iteration everywhere, stable answers
//   - Pure functions – no package-level state, every call starts fresh
//
// Under the hood, everything is organized per day:
//
//	valvenet/   — day 16: pressure maximization over a valve network
//	monkeys/    — day 11: monkey business after N rounds of keep-away
//	hillclimb/  — day 12: shortest climb from S (or any lowland) to E
//	packets/    — day 13: packet comparison, ordered-pair sum, decoder key
//	sandfall/   — day 14: settled-sand counts before void / until blocked
//	beacons/    — day 15: excluded positions per row, tuning frequency
//	droplet/    — day 18: scanned-cube surface areas
//	cmd/advent/ — the CLI binary gluing each day to its input files
//
// Quick ASCII example (a three-valve network):
//
//	    AA───BB
//	      ╲   │
//	       ╲  │
//	        CC
//
//	net, _ := valvenet.ParseNetwork(records)
//	res, _ := valvenet.Solve(net, valvenet.WithBudget(30))
//
// Solvers publish their maximum score as the stable contract; winning
// sequences are diagnostic and any optimal ordering is a valid answer.
//
//	go get github.com/katalvlaran/advent2022
package advent2022
