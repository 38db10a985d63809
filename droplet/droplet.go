// Package droplet measures the surface area of a scanned lava droplet.
//
// The droplet arrives as unit cube positions, one "x,y,z" line each.
// Surface counts every cube face not covered by another cube; Exterior
// additionally discounts the faces of enclosed air pockets, found by
// flooding the air around the droplet from outside its bounding box.
package droplet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadCube indicates a scan line that is not three comma-separated
// integers.
var ErrBadCube = errors.New("droplet: malformed cube line")

// Cube is one occupied unit cube of the scan.
type Cube struct {
	X, Y, Z int
}

// offsets are the six face-adjacent directions.
var offsets = [6]Cube{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

func (c Cube) add(o Cube) Cube {
	return Cube{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Droplet is the parsed cube set plus its bounding box. Read-only after
// Parse returns it.
type Droplet struct {
	cubes    map[Cube]bool
	min, max Cube // tight bounds, meaningful only when cubes exist
}

// Parse reads cube positions from r, one "x,y,z" triple per line. Blank
// lines are ignored and duplicate positions collapse into one cube.
func Parse(r io.Reader) (*Droplet, error) {
	d := &Droplet{cubes: make(map[Cube]bool)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		c, err := parseCube(line)
		if err != nil {
			return nil, err
		}
		d.cubes[c] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("droplet: reading cube lines: %w", err)
	}

	first := true
	for c := range d.cubes {
		if first {
			d.min, d.max = c, c
			first = false
			continue
		}
		d.min = Cube{X: min(d.min.X, c.X), Y: min(d.min.Y, c.Y), Z: min(d.min.Z, c.Z)}
		d.max = Cube{X: max(d.max.X, c.X), Y: max(d.max.Y, c.Y), Z: max(d.max.Z, c.Z)}
	}

	return d, nil
}

func parseCube(line string) (Cube, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Cube{}, fmt.Errorf("%w: %q", ErrBadCube, line)
	}

	var coords [3]int
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return Cube{}, fmt.Errorf("%w: %q", ErrBadCube, line)
		}
		coords[i] = n
	}

	return Cube{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// Surface returns the number of cube faces not touching another cube.
func (d *Droplet) Surface() int {
	count := 0
	for c := range d.cubes {
		for _, o := range offsets {
			if !d.cubes[c.add(o)] {
				count++
			}
		}
	}

	return count
}

// Exterior returns the surface area reachable from outside: Surface minus
// the faces enclosing interior air pockets.
//
// The outside air is flood-filled through a bounding box grown by one in
// every direction, so it wraps around the droplet; air cells inside the
// tight box that the flood never reaches are pockets, and each of their
// lava-touching faces is hidden from the outside.
func (d *Droplet) Exterior() int {
	if len(d.cubes) == 0 {
		return 0
	}

	lo := Cube{X: d.min.X - 1, Y: d.min.Y - 1, Z: d.min.Z - 1}
	hi := Cube{X: d.max.X + 1, Y: d.max.Y + 1, Z: d.max.Z + 1}

	outside := make(map[Cube]bool, len(d.cubes))
	stack := []Cube{lo}
	outside[lo] = true
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, o := range offsets {
			n := c.add(o)
			if n.X < lo.X || n.X > hi.X || n.Y < lo.Y || n.Y > hi.Y || n.Z < lo.Z || n.Z > hi.Z {
				continue
			}
			if outside[n] || d.cubes[n] {
				continue
			}
			outside[n] = true
			stack = append(stack, n)
		}
	}

	hidden := 0
	for x := d.min.X; x <= d.max.X; x++ {
		for y := d.min.Y; y <= d.max.Y; y++ {
			for z := d.min.Z; z <= d.max.Z; z++ {
				c := Cube{X: x, Y: y, Z: z}
				if d.cubes[c] || outside[c] {
					continue
				}
				for _, o := range offsets {
					if d.cubes[c.add(o)] {
						hidden++
					}
				}
			}
		}
	}

	return d.Surface() - hidden
}
