package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2022/valvenet"
)

var (
	day16Budget     int
	day16PairBudget int

	day16Cmd = &cobra.Command{
		Use:   "day16 [input file...]",
		Short: "Proboscidea Volcanium: maximum pressure release",
		Long: `Parses the valve scan, finds the best single-agent opening plan within
the time budget, then the best plan for two agents working disjoint valve
sets. The winning opening sequences are printed after each answer.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if day16Budget < 0 || day16PairBudget < 0 {
				return errors.New("budgets must be non-negative")
			}

			return solveFiles(cmd.OutOrStdout(), args, runDay16)
		},
	}
)

func init() {
	day16Cmd.Flags().IntVar(&day16Budget, "budget", 30, "minutes available in part 1")
	day16Cmd.Flags().IntVar(&day16PairBudget, "pair-budget", 26, "minutes available to each agent in part 2")
	rootCmd.AddCommand(day16Cmd)
}

func runDay16(r io.Reader, w io.Writer) error {
	net, err := valvenet.ParseNetwork(r)
	if err != nil {
		return err
	}

	solo, err := valvenet.Solve(net, valvenet.WithBudget(day16Budget))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Part 1: %d\n", solo.Pressure)
	printActivations(w, solo.Opened)

	pair, err := valvenet.SolvePair(net, valvenet.WithBudget(day16PairBudget))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Part 2: %d\n", pair.Pressure)
	printActivations(w, pair.First)
	printActivations(w, pair.Second)

	return nil
}

func printActivations(w io.Writer, opened []valvenet.Activation) {
	for _, a := range opened {
		fmt.Fprintf(w, "valve %s opened at minute %d\n", a.Valve, a.Minute)
	}
}
