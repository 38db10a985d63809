package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2022/hillclimb"
)

var day12Cmd = &cobra.Command{
	Use:   "day12 [input file...]",
	Short: "Hill Climbing Algorithm: shortest route up the heightmap",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return solveFiles(cmd.OutOrStdout(), args, runDay12)
	},
}

func init() {
	rootCmd.AddCommand(day12Cmd)
}

func runDay12(r io.Reader, w io.Writer) error {
	terrain, err := hillclimb.Parse(r)
	if err != nil {
		return err
	}

	fromStart, err := terrain.FewestSteps()
	if err != nil {
		return err
	}
	fromLowest, err := terrain.FewestFromLowest()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Part 1: %d\n", fromStart)
	fmt.Fprintf(w, "Part 2: %d\n", fromLowest)

	return nil
}
