// Package hillclimb finds shortest routes across a rectangular heightmap.
//
// Cells are heights 'a' (lowest) through 'z' (highest). One cell is marked
// 'S' (the start, height 'a') and one 'E' (the summit, height 'z'). A step
// moves to one of the four orthogonal neighbours and is legal when the
// destination is at most one higher than the current cell.
//
// Both route operations expand a breadth-first distance map backward from
// the summit, so a single pass serves any number of candidate starts. The
// map is rebuilt per call; Terrain carries no mutable state.
package hillclimb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors returned by the hillclimb package.
var (
	// ErrEmptyGrid indicates input with no heightmap rows at all.
	ErrEmptyGrid = errors.New("hillclimb: heightmap contains no rows")

	// ErrNonRectangular indicates rows of differing width.
	ErrNonRectangular = errors.New("hillclimb: heightmap rows differ in width")

	// ErrBadCell indicates a cell byte outside 'a'..'z', 'S', 'E'.
	ErrBadCell = errors.New("hillclimb: cell outside a..z, S, E")

	// ErrNoStart indicates a heightmap without exactly one 'S' marker.
	ErrNoStart = errors.New("hillclimb: heightmap needs exactly one S marker")

	// ErrNoEnd indicates a heightmap without exactly one 'E' marker.
	ErrNoEnd = errors.New("hillclimb: heightmap needs exactly one E marker")

	// ErrNoPath indicates that no legal route reaches the summit.
	ErrNoPath = errors.New("hillclimb: no route to the summit")
)

// point is a grid coordinate; x grows rightward, y downward.
type point struct {
	x, y int
}

// Terrain is a parsed heightmap. The grid stores clamped heights ('S' as
// 'a', 'E' as 'z'); the marker positions are kept separately. Read-only
// after Parse returns it.
type Terrain struct {
	grid  [][]byte
	start point
	end   point
}

// Parse reads a heightmap from r: one row per line, rows of equal width,
// exactly one 'S' and one 'E'. Trailing carriage returns are tolerated and
// blank lines are ignored.
func Parse(r io.Reader) (*Terrain, error) {
	t := &Terrain{start: point{-1, -1}, end: point{-1, -1}}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		y := len(t.grid)
		if y > 0 && len(line) != len(t.grid[0]) {
			return nil, fmt.Errorf("%w: row %d is %d cells wide, want %d",
				ErrNonRectangular, y, len(line), len(t.grid[0]))
		}

		row := make([]byte, len(line))
		for x := 0; x < len(line); x++ {
			switch c := line[x]; {
			case c == 'S':
				if t.start.x >= 0 {
					return nil, fmt.Errorf("%w: second S at (%d,%d)", ErrNoStart, x, y)
				}
				t.start = point{x, y}
				row[x] = 'a'
			case c == 'E':
				if t.end.x >= 0 {
					return nil, fmt.Errorf("%w: second E at (%d,%d)", ErrNoEnd, x, y)
				}
				t.end = point{x, y}
				row[x] = 'z'
			case c >= 'a' && c <= 'z':
				row[x] = c
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, c, x, y)
			}
		}
		t.grid = append(t.grid, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("hillclimb: reading heightmap: %w", err)
	}

	if len(t.grid) == 0 {
		return nil, ErrEmptyGrid
	}
	if t.start.x < 0 {
		return nil, ErrNoStart
	}
	if t.end.x < 0 {
		return nil, ErrNoEnd
	}

	return t, nil
}

// FewestSteps returns the length of the shortest route from 'S' to 'E'.
// An unreachable summit is ErrNoPath.
func (t *Terrain) FewestSteps() (int, error) {
	dist := t.distancesFromEnd()
	d := dist[t.start.y][t.start.x]
	if d < 0 {
		return 0, fmt.Errorf("%w: start is cut off", ErrNoPath)
	}

	return d, nil
}

// FewestFromLowest returns the shortest route length to 'E' over all cells
// of height 'a' (the 'S' cell included). Cells that cannot reach the summit
// are skipped; if none can, ErrNoPath.
func (t *Terrain) FewestFromLowest() (int, error) {
	dist := t.distancesFromEnd()

	best := -1
	for y := range t.grid {
		for x := range t.grid[y] {
			if t.grid[y][x] != 'a' {
				continue
			}
			if d := dist[y][x]; d >= 0 && (best < 0 || d < best) {
				best = d
			}
		}
	}
	if best < 0 {
		return 0, fmt.Errorf("%w: no low cell reaches the summit", ErrNoPath)
	}

	return best, nil
}

// distancesFromEnd builds the step count from every cell to 'E' by
// breadth-first expansion over reversed edges: walking backward from u to v
// is legal exactly when the forward step v to u would be, i.e. when
// height(v) >= height(u)-1. Unreached cells stay at -1.
func (t *Terrain) distancesFromEnd() [][]int {
	dist := make([][]int, len(t.grid))
	for y := range dist {
		dist[y] = make([]int, len(t.grid[y]))
		for x := range dist[y] {
			dist[y][x] = -1
		}
	}

	dist[t.end.y][t.end.x] = 0
	queue := []point{t.end}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		next := dist[u.y][u.x] + 1

		for _, v := range t.neighbors(u) {
			if dist[v.y][v.x] >= 0 {
				continue
			}
			if t.grid[v.y][v.x]+1 < t.grid[u.y][u.x] {
				continue
			}
			dist[v.y][v.x] = next
			queue = append(queue, v)
		}
	}

	return dist
}

// neighbors returns u's in-bounds orthogonal neighbours in a fixed order.
func (t *Terrain) neighbors(u point) []point {
	candidates := [4]point{
		{u.x, u.y - 1},
		{u.x - 1, u.y},
		{u.x + 1, u.y},
		{u.x, u.y + 1},
	}

	out := make([]point, 0, 4)
	for _, v := range candidates {
		if v.y < 0 || v.y >= len(t.grid) || v.x < 0 || v.x >= len(t.grid[v.y]) {
			continue
		}
		out = append(out, v)
	}

	return out
}
