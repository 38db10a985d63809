package hillclimb_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/advent2022/hillclimb"
)

// exampleMap is the published five-row heightmap.
const exampleMap = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

func mustTerrain(t *testing.T, input string) *hillclimb.Terrain {
	t.Helper()
	terrain, err := hillclimb.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() unexpected error: %v", err)
	}

	return terrain
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"EmptyInput", "", hillclimb.ErrEmptyGrid},
		{"OnlyBlankLines", "\n\n", hillclimb.ErrEmptyGrid},
		{"RaggedRows", "Sab\nabcd\nabE\n", hillclimb.ErrNonRectangular},
		{"BadCell", "Sa3\nabE\n", hillclimb.ErrBadCell},
		{"UppercaseCell", "SaQ\nabE\n", hillclimb.ErrBadCell},
		{"NoStart", "aab\nabE\n", hillclimb.ErrNoStart},
		{"TwoStarts", "Sab\nSbE\n", hillclimb.ErrNoStart},
		{"NoEnd", "Sab\nabc\n", hillclimb.ErrNoEnd},
		{"TwoEnds", "SaE\nabE\n", hillclimb.ErrNoEnd},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			terrain, err := hillclimb.Parse(strings.NewReader(tc.input))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Parse() error = %v, want %v", err, tc.wantErr)
			}
			if terrain != nil {
				t.Fatalf("Parse() returned a terrain alongside an error")
			}
		})
	}
}

func TestFewestSteps_Example(t *testing.T) {
	terrain := mustTerrain(t, exampleMap)

	got, err := terrain.FewestSteps()
	if err != nil {
		t.Fatalf("FewestSteps() unexpected error: %v", err)
	}
	if got != 31 {
		t.Fatalf("FewestSteps() = %d, want 31", got)
	}
}

func TestFewestFromLowest_Example(t *testing.T) {
	terrain := mustTerrain(t, exampleMap)

	got, err := terrain.FewestFromLowest()
	if err != nil {
		t.Fatalf("FewestFromLowest() unexpected error: %v", err)
	}
	if got != 29 {
		t.Fatalf("FewestFromLowest() = %d, want 29", got)
	}
}

// TestFewestSteps_Ladder walks a strictly climbing corridor whose length is
// known exactly, with one walled-off low cell that part 2 must skip.
func TestFewestSteps_Ladder(t *testing.T) {
	input := "Sbcdefghijklmnopqrstuvwxyz\n" +
		strings.Repeat("z", 25) + "E\n" +
		"a" + strings.Repeat("z", 25) + "\n"
	terrain := mustTerrain(t, input)

	got, err := terrain.FewestSteps()
	if err != nil {
		t.Fatalf("FewestSteps() unexpected error: %v", err)
	}
	if got != 26 {
		t.Fatalf("FewestSteps() = %d, want 26", got)
	}

	// The bottom-left 'a' cannot reach the summit; the start still can.
	got, err = terrain.FewestFromLowest()
	if err != nil {
		t.Fatalf("FewestFromLowest() unexpected error: %v", err)
	}
	if got != 26 {
		t.Fatalf("FewestFromLowest() = %d, want 26", got)
	}
}

func TestFewestSteps_NoPath(t *testing.T) {
	terrain := mustTerrain(t, "SzE\n")

	if _, err := terrain.FewestSteps(); !errors.Is(err, hillclimb.ErrNoPath) {
		t.Fatalf("FewestSteps() error = %v, want ErrNoPath", err)
	}
	if _, err := terrain.FewestFromLowest(); !errors.Is(err, hillclimb.ErrNoPath) {
		t.Fatalf("FewestFromLowest() error = %v, want ErrNoPath", err)
	}
}
