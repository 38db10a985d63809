// Package sandfall simulates sand pouring into a cave of rock paths.
//
// Rock is given as polylines of axis-aligned segments. Grains fall from the
// source at (500,0): straight down if free, else down-left, else down-right,
// else they come to rest. PourUntilVoid counts grains that settle before the
// first one falls past the deepest rock; PourUntilBlocked adds an infinite
// floor two rows below the deepest rock and counts grains until the source
// itself is plugged.
//
// The parsed rock set is read-only; each simulation accumulates settled sand
// in its own scratch set, so the two parts are independent and repeatable.
package sandfall

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadPath indicates a rock path line that violates the grammar: a
// malformed coordinate, a diagonal segment, or fewer than two points.
var ErrBadPath = errors.New("sandfall: malformed rock path")

// The sand source position.
const (
	sourceX = 500
	sourceY = 0
)

// point is a cave coordinate; x grows rightward, y downward.
type point struct {
	x, y int
}

// Cave is the parsed rock layout plus the depth of its deepest rock.
type Cave struct {
	rocks map[point]bool
	maxY  int
}

// Parse reads rock paths from r, one polyline per line in the form
// "x,y -> x,y -> ...". Segments must be horizontal or vertical and every
// line needs at least two points. Blank lines are ignored.
func Parse(r io.Reader) (*Cave, error) {
	c := &Cave{rocks: make(map[point]bool)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := c.addPath(line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sandfall: reading rock paths: %w", err)
	}

	for p := range c.rocks {
		if p.y > c.maxY {
			c.maxY = p.y
		}
	}

	return c, nil
}

// addPath rasterizes one polyline into the rock set.
func (c *Cave) addPath(line string) error {
	fields := strings.Split(line, " -> ")
	if len(fields) < 2 {
		return fmt.Errorf("%w: %q needs at least two points", ErrBadPath, line)
	}

	points := make([]point, len(fields))
	for i, field := range fields {
		xText, yText, ok := strings.Cut(field, ",")
		if !ok {
			return fmt.Errorf("%w: %q is not an x,y pair", ErrBadPath, field)
		}
		x, err := strconv.Atoi(xText)
		if err != nil {
			return fmt.Errorf("%w: %q is not an x,y pair", ErrBadPath, field)
		}
		y, err := strconv.Atoi(yText)
		if err != nil {
			return fmt.Errorf("%w: %q is not an x,y pair", ErrBadPath, field)
		}
		points[i] = point{x, y}
	}

	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		dx, dy := sign(b.x-a.x), sign(b.y-a.y)
		if dx != 0 && dy != 0 {
			return fmt.Errorf("%w: %q has a diagonal segment", ErrBadPath, line)
		}
		for p := a; ; p.x, p.y = p.x+dx, p.y+dy {
			c.rocks[p] = true
			if p == b {
				break
			}
		}
	}

	return nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// PourUntilVoid pours grains until one falls past the deepest rock and
// returns the number that came to rest before it. A cave that seals the
// source instead stops when the source is plugged.
func (c *Cave) PourUntilVoid() int {
	settled := make(map[point]bool)

	count := 0
	for !c.blocked(settled, point{sourceX, sourceY}, false) {
		g, ok := c.drop(settled, false)
		if !ok {
			break
		}
		settled[g] = true
		count++
	}

	return count
}

// PourUntilBlocked pours grains onto an infinite floor two rows below the
// deepest rock until the source itself is occupied, and returns the grain
// count including the final one.
func (c *Cave) PourUntilBlocked() int {
	settled := make(map[point]bool)

	count := 0
	for !c.blocked(settled, point{sourceX, sourceY}, true) {
		g, ok := c.drop(settled, true)
		if !ok {
			break
		}
		settled[g] = true
		count++
	}

	return count
}

// drop traces one grain from the source to its resting point. Without a
// floor, a grain descending past the deepest rock is lost and ok is false.
func (c *Cave) drop(settled map[point]bool, withFloor bool) (point, bool) {
	g := point{sourceX, sourceY}
	for {
		if !withFloor && g.y > c.maxY {
			return point{}, false
		}
		switch {
		case !c.blocked(settled, point{g.x, g.y + 1}, withFloor):
			g.y++
		case !c.blocked(settled, point{g.x - 1, g.y + 1}, withFloor):
			g.x, g.y = g.x-1, g.y+1
		case !c.blocked(settled, point{g.x + 1, g.y + 1}, withFloor):
			g.x, g.y = g.x+1, g.y+1
		default:
			return g, true
		}
	}
}

// blocked reports whether p is occupied by rock, settled sand, or the
// part-two floor.
func (c *Cave) blocked(settled map[point]bool, p point, withFloor bool) bool {
	if withFloor && p.y == c.maxY+2 {
		return true
	}

	return c.rocks[p] || settled[p]
}
