package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent2022/packets"
)

var day13Cmd = &cobra.Command{
	Use:   "day13 [input file...]",
	Short: "Distress Signal: packet pair ordering",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return solveFiles(cmd.OutOrStdout(), args, runDay13)
	},
}

func init() {
	rootCmd.AddCommand(day13Cmd)
}

func runDay13(r io.Reader, w io.Writer) error {
	// Both parts consume the whole packet stream.
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	sum, err := packets.SumInOrder(bytes.NewReader(data))
	if err != nil {
		return err
	}
	key, err := packets.DecoderKey(bytes.NewReader(data))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Part 1: %d\n", sum)
	fmt.Fprintf(w, "Part 2: %d\n", key)

	return nil
}
