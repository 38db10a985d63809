package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2022/monkeys"
)

var (
	day11Rounds int

	day11Cmd = &cobra.Command{
		Use:   "day11 [input file...]",
		Short: "Monkey in the Middle: keep-away inspection counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if day11Rounds < 0 {
				return errors.New("rounds must be non-negative")
			}

			return solveFiles(cmd.OutOrStdout(), args, runDay11)
		},
	}
)

func init() {
	day11Cmd.Flags().IntVar(&day11Rounds, "rounds", 10000, "rounds to play without calming for part 2")
	rootCmd.AddCommand(day11Cmd)
}

func runDay11(r io.Reader, w io.Writer) error {
	troop, err := monkeys.Parse(r)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Part 1: %d\n", monkeys.Business(monkeys.Play(troop, 20, true)))
	fmt.Fprintf(w, "Part 2: %d\n", monkeys.Business(monkeys.Play(troop, day11Rounds, false)))

	return nil
}
