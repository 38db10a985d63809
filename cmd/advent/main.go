// Command advent solves Advent of Code 2022 puzzles, one subcommand per
// day:
//
//	advent day16 input.txt
//	advent day15 --row=2000000 input.txt
//
// Every subcommand reads one or more puzzle input files and prints the
// day's two answers. A failing file is reported on standard error and
// processing moves on to the next one; the process exits nonzero if any
// file failed.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Advent of Code 2022 puzzle solvers",
	Long: `advent solves Advent of Code 2022 puzzles, one subcommand per day.
Each subcommand reads puzzle input files and prints the day's answers as
"Part 1" and "Part 2" lines.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// solveFiles runs solve over every input file in order, separating the
// output of consecutive files with a blank line. A failing file is
// reported immediately and skipped; the returned error only summarizes.
func solveFiles(w io.Writer, paths []string, solve func(io.Reader, io.Writer) error) error {
	failed := 0
	for i, path := range paths {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := solveFile(w, path, solve); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d input files failed", failed, len(paths))
	}

	return nil
}

func solveFile(w io.Writer, path string, solve func(io.Reader, io.Writer) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return solve(f, w)
}
