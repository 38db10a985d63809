// Package beacons locates the distress beacon from sensor exclusion zones.
//
// Each sensor reports its own position and the closest beacon it hears;
// everything within that Manhattan radius is beacon-free. Excluded measures
// the covered stretch of one row; Tuning sweeps a square search area for
// the single uncovered position and returns its tuning frequency.
package beacons

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the beacons package.
var (
	// ErrBadReading indicates a sensor line that violates the grammar.
	ErrBadReading = errors.New("beacons: malformed sensor reading")

	// ErrNoDistressBeacon indicates a search area with no uncovered position.
	ErrNoDistressBeacon = errors.New("beacons: no distress beacon in the search area")
)

// tuningStride converts a beacon position into its tuning frequency,
// x*tuningStride + y.
const tuningStride = 4000000

// Point is a sensor-grid coordinate.
type Point struct {
	X, Y int
}

// Sensor is one reading: the sensor's position and the closest beacon it
// detected. Everything strictly inside the sensor's reach is beacon-free.
type Sensor struct {
	Pos    Point
	Beacon Point
}

// Reach returns the sensor's coverage radius, the Manhattan distance to its
// closest beacon.
func (s Sensor) Reach() int {
	return abs(s.Pos.X-s.Beacon.X) + abs(s.Pos.Y-s.Beacon.Y)
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// span is a closed x-interval of covered positions on one row.
type span struct {
	lo, hi int
}

// Parse reads sensor lines from r in the form
// "Sensor at x=2, y=18: closest beacon is at x=-2, y=15". Blank lines are
// ignored; any grammar violation is ErrBadReading.
func Parse(r io.Reader) ([]Sensor, error) {
	var sensors []Sensor

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s, err := parseReading(line)
		if err != nil {
			return nil, err
		}
		sensors = append(sensors, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("beacons: reading sensor lines: %w", err)
	}

	return sensors, nil
}

func parseReading(line string) (Sensor, error) {
	rest, ok := strings.CutPrefix(line, "Sensor at x=")
	if !ok {
		return Sensor{}, badReading(line)
	}
	sx, rest, ok := cutInt(rest, ", y=")
	if !ok {
		return Sensor{}, badReading(line)
	}
	sy, rest, ok := cutInt(rest, ": closest beacon is at x=")
	if !ok {
		return Sensor{}, badReading(line)
	}
	bx, rest, ok := cutInt(rest, ", y=")
	if !ok {
		return Sensor{}, badReading(line)
	}
	by, err := strconv.Atoi(rest)
	if err != nil {
		return Sensor{}, badReading(line)
	}

	return Sensor{Pos: Point{sx, sy}, Beacon: Point{bx, by}}, nil
}

// cutInt parses the integer before sep and returns it with the remainder.
func cutInt(s, sep string) (int, string, bool) {
	text, rest, ok := strings.Cut(s, sep)
	if !ok {
		return 0, "", false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, "", false
	}

	return n, rest, true
}

func badReading(line string) error {
	return fmt.Errorf("%w: %q", ErrBadReading, line)
}

// Excluded returns how much of the row the sensors cover, summed as the
// width (hi-lo) of each merged coverage span. The width of a closed span
// is one less than its position count, which accounts for the known beacon
// a covered run carries.
func Excluded(sensors []Sensor, row int) int {
	spans := merged(projected(sensors, row))

	total := 0
	for _, sp := range spans {
		total += sp.hi - sp.lo
	}

	return total
}

// Tuning finds the single position with x and y in [0, limit] that no
// sensor covers and returns its tuning frequency, x*4000000 + y. The
// search walks the rows and looks for coverage that misses exactly one
// column: either split into two spans around it, or stopped one short of
// the x=0 or x=limit border. If every row is fully covered, the result
// is ErrNoDistressBeacon.
//
// Runs in O(limit * n log n) for n sensors.
func Tuning(sensors []Sensor, limit int) (int, error) {
	for y := 0; y <= limit; y++ {
		spans := merged(clamped(projected(sensors, y), 0, limit))
		if x, ok := gap(spans, limit); ok {
			return x*tuningStride + y, nil
		}
	}

	return 0, fmt.Errorf("%w: rows 0..%d fully covered", ErrNoDistressBeacon, limit)
}

// gap returns the one column of [0, limit] the merged spans leave
// uncovered. Coverage missing a single column either splits into two
// spans around it or, for a border column, forms one span that stops a
// step short of that border.
func gap(spans []span, limit int) (int, bool) {
	switch {
	case len(spans) == 2:
		return spans[0].hi + 1, true
	case len(spans) == 1 && spans[0].lo == 1 && spans[0].hi == limit:
		return 0, true
	case len(spans) == 1 && spans[0].lo == 0 && spans[0].hi == limit-1:
		return limit, true
	}

	return 0, false
}

// projected returns each sensor's coverage span on the row, skipping
// sensors whose reach does not extend that far. A sensor at (X,Y) with
// reach d covers |x-X| <= d-|row-Y|.
func projected(sensors []Sensor, row int) []span {
	spans := make([]span, 0, len(sensors))
	for _, s := range sensors {
		width := s.Reach() - abs(s.Pos.Y-row)
		if width < 0 {
			continue
		}
		spans = append(spans, span{lo: s.Pos.X - width, hi: s.Pos.X + width})
	}

	return spans
}

// clamped trims every span to [lo, hi] and drops the ones entirely outside.
func clamped(spans []span, lo, hi int) []span {
	out := spans[:0]
	for _, sp := range spans {
		if sp.hi < lo || sp.lo > hi {
			continue
		}
		if sp.lo < lo {
			sp.lo = lo
		}
		if sp.hi > hi {
			sp.hi = hi
		}
		out = append(out, sp)
	}

	return out
}

// merged sorts spans by lo then hi and folds together every pair that
// overlaps or sits directly adjacent.
func merged(spans []span) []span {
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].lo == spans[j].lo {
			return spans[i].hi < spans[j].hi
		}

		return spans[i].lo < spans[j].lo
	})

	out := spans[:1]
	for _, sp := range spans[1:] {
		last := &out[len(out)-1]
		if sp.lo <= last.hi+1 {
			if sp.hi > last.hi {
				last.hi = sp.hi
			}
			continue
		}
		out = append(out, sp)
	}

	return out
}
