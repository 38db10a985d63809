package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2022/beacons"
)

var (
	day15Row int

	day15Cmd = &cobra.Command{
		Use:   "day15 [input file...]",
		Short: "Beacon Exclusion Zone: sensor coverage and the distress beacon",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solveFiles(cmd.OutOrStdout(), args, runDay15)
		},
	}
)

func init() {
	day15Cmd.Flags().IntVar(&day15Row, "row", 2000000, "row to measure for part 1; part 2 searches [0, 2*row]")
	rootCmd.AddCommand(day15Cmd)
}

func runDay15(r io.Reader, w io.Writer) error {
	sensors, err := beacons.Parse(r)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Part 1: %d\n", beacons.Excluded(sensors, day15Row))

	tuning, err := beacons.Tuning(sensors, 2*day15Row)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Part 2: %d\n", tuning)

	return nil
}
