package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2022/droplet"
)

var day18Cmd = &cobra.Command{
	Use:   "day18 [input file...]",
	Short: "Boiling Boulders: lava droplet surface area",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return solveFiles(cmd.OutOrStdout(), args, runDay18)
	},
}

func init() {
	rootCmd.AddCommand(day18Cmd)
}

func runDay18(r io.Reader, w io.Writer) error {
	d, err := droplet.Parse(r)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Part 1: %d\n", d.Surface())
	fmt.Fprintf(w, "Part 2: %d\n", d.Exterior())

	return nil
}
