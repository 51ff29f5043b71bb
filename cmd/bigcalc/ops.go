package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/db47h/bigint"
)

var errColor = color.New(color.FgRed, color.Bold)

// setupColor applies the persistent --color flag. "auto" keeps the color
// package's terminal detection.
func setupColor(cmd *cobra.Command) {
	switch mode, _ := cmd.Flags().GetString("color"); mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	}
}

// parseOperands parses every argument as a signed decimal integer.
func parseOperands(args []string) ([]*bigint.Int, error) {
	xs := make([]*bigint.Int, len(args))
	for i, a := range args {
		x, err := bigint.Parse(a)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i+1, err)
		}
		xs[i] = x
	}
	return xs, nil
}

// fold applies op pairwise from the left: op(op(x1, x2), x3), and so on.
func fold(xs []*bigint.Int, op func(z, x, y *bigint.Int) *bigint.Int) *bigint.Int {
	acc := new(bigint.Int).Set(xs[0])
	for _, x := range xs[1:] {
		op(acc, acc, x)
	}
	return acc
}

func runFold(op func(z, x, y *bigint.Int) *bigint.Int) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		setupColor(cmd)
		xs, err := parseOperands(args)
		if err != nil {
			errColor.Fprintln(os.Stderr, err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), fold(xs, op))
		return nil
	}
}

var addCmd = &cobra.Command{
	Use:   "add <x> <y> [z...]",
	Short: "Print the exact sum of the operands",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runFold((*bigint.Int).Add),
}

var subCmd = &cobra.Command{
	Use:   "sub <x> <y> [z...]",
	Short: "Print the exact left-to-right difference of the operands",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runFold((*bigint.Int).Sub),
}

var mulCmd = &cobra.Command{
	Use:   "mul <x> <y> [z...]",
	Short: "Print the exact product of the operands",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runFold((*bigint.Int).Mul),
}

var cmpCmd = &cobra.Command{
	Use:   "cmp <x> <y>",
	Short: "Compare two integers; prints -1, 0 or 1",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupColor(cmd)
		xs, err := parseOperands(args)
		if err != nil {
			errColor.Fprintln(os.Stderr, err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), xs[0].Cmp(xs[1]))
		return nil
	},
}
