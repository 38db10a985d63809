package beacons_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent2022/beacons"
)

// exampleReadings is the published fourteen-sensor report.
const exampleReadings = `Sensor at x=2, y=18: closest beacon is at x=-2, y=15
Sensor at x=9, y=16: closest beacon is at x=10, y=16
Sensor at x=13, y=2: closest beacon is at x=15, y=3
Sensor at x=12, y=14: closest beacon is at x=10, y=16
Sensor at x=10, y=20: closest beacon is at x=10, y=16
Sensor at x=14, y=17: closest beacon is at x=10, y=16
Sensor at x=8, y=7: closest beacon is at x=2, y=10
Sensor at x=2, y=0: closest beacon is at x=2, y=10
Sensor at x=0, y=11: closest beacon is at x=2, y=10
Sensor at x=20, y=14: closest beacon is at x=25, y=17
Sensor at x=17, y=20: closest beacon is at x=21, y=22
Sensor at x=16, y=7: closest beacon is at x=15, y=3
Sensor at x=14, y=3: closest beacon is at x=15, y=3
Sensor at x=20, y=1: closest beacon is at x=15, y=3
`

func mustSensors(t *testing.T) []beacons.Sensor {
	t.Helper()
	sensors, err := beacons.Parse(strings.NewReader(exampleReadings))
	require.NoError(t, err)
	require.Len(t, sensors, 14)

	return sensors
}

func TestParse_Example(t *testing.T) {
	sensors := mustSensors(t)

	assert.Equal(t, beacons.Sensor{
		Pos:    beacons.Point{X: 2, Y: 18},
		Beacon: beacons.Point{X: -2, Y: 15},
	}, sensors[0])

	// The sensor at (8,7) hears a beacon at (2,10), nine steps away.
	assert.Equal(t, 9, sensors[6].Reach())
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"NotAReading":   "a beacon beeps in the night",
		"BadSensorX":    "Sensor at x=two, y=18: closest beacon is at x=-2, y=15",
		"BadBeaconY":    "Sensor at x=2, y=18: closest beacon is at x=-2, y=",
		"MissingBeacon": "Sensor at x=2, y=18",
		"TrailingText":  "Sensor at x=2, y=18: closest beacon is at x=-2, y=15 maybe",
	}

	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			sensors, err := beacons.Parse(strings.NewReader(line + "\n"))
			assert.ErrorIs(t, err, beacons.ErrBadReading)
			assert.Nil(t, sensors)
		})
	}
}

func TestExcluded_Example(t *testing.T) {
	sensors := mustSensors(t)

	assert.Equal(t, 26, beacons.Excluded(sensors, 10))
}

// TestExcluded_SingleSensor pins one projection: the sensor at (8,7) with
// reach 9 covers x 2..14 on row 10, a width of 12.
func TestExcluded_SingleSensor(t *testing.T) {
	sensors := mustSensors(t)

	assert.Equal(t, 12, beacons.Excluded(sensors[6:7], 10))
}

func TestExcluded_RowBeyondReach(t *testing.T) {
	sensors := mustSensors(t)

	assert.Zero(t, beacons.Excluded(sensors, 1000000))
	assert.Zero(t, beacons.Excluded(nil, 10))
}

func TestTuning_Example(t *testing.T) {
	sensors := mustSensors(t)

	got, err := beacons.Tuning(sensors, 20)
	require.NoError(t, err)
	assert.Equal(t, 56000011, got)
}

func TestTuning_NoBeacon(t *testing.T) {
	// One strong sensor blankets the whole 3x3 search area.
	covered, err := beacons.Parse(strings.NewReader(
		"Sensor at x=0, y=0: closest beacon is at x=5, y=0\n"))
	require.NoError(t, err)

	_, err = beacons.Tuning(covered, 2)
	assert.ErrorIs(t, err, beacons.ErrNoDistressBeacon)

	_, err = beacons.Tuning(nil, 2)
	assert.ErrorIs(t, err, beacons.ErrNoDistressBeacon)
}

// TestTuning_BorderColumn places the uncovered position on the edge of
// the search area, where the row folds into one span instead of two.
func TestTuning_BorderColumn(t *testing.T) {
	cases := map[string]struct {
		readings string
		want     int
	}{
		"LeftEdge": {
			// Rows 0 and 2 are blanketed; row 1 is covered from x=1 on,
			// leaving the beacon at (0,1).
			readings: `Sensor at x=2, y=0: closest beacon is at x=4, y=0
Sensor at x=2, y=2: closest beacon is at x=4, y=2
`,
			want: 1,
		},
		"RightEdge": {
			// Mirrored: row 1 stops at x=1, leaving the beacon at (2,1).
			readings: `Sensor at x=0, y=0: closest beacon is at x=-2, y=0
Sensor at x=0, y=2: closest beacon is at x=-2, y=2
`,
			want: 2*4000000 + 1,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			sensors, err := beacons.Parse(strings.NewReader(tc.readings))
			require.NoError(t, err)

			got, err := beacons.Tuning(sensors, 2)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
