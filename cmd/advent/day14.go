package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2022/sandfall"
)

var day14Cmd = &cobra.Command{
	Use:   "day14 [input file...]",
	Short: "Regolith Reservoir: falling sand simulation",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return solveFiles(cmd.OutOrStdout(), args, runDay14)
	},
}

func init() {
	rootCmd.AddCommand(day14Cmd)
}

func runDay14(r io.Reader, w io.Writer) error {
	cave, err := sandfall.Parse(r)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Part 1: %d\n", cave.PourUntilVoid())
	fmt.Fprintf(w, "Part 2: %d\n", cave.PourUntilBlocked())

	return nil
}
