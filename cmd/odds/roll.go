package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/daystram/odds/odds"
)

var (
	rollOpts = struct {
		trials uint64
		lucky  uint32
	}{}

	rollCmd = &cobra.Command{
		Use:   "roll [denominator]",
		Short: "Roll 1 in N repeatedly and count the hits",
		Long:  "Roll a 1 in N preset (p100), fraction (1/100) or number (100) and report the hit count, then try one lucky roll.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "p100"
			if len(args) == 1 {
				name = args[0]
			}
			d, err := odds.ParseDenominator(name)
			if err != nil {
				return err
			}
			_, err = roll(cmd.Context(), cmd.OutOrStdout(), newRoller(), d, rollOpts.trials, rollOpts.lucky)
			return err
		},
	}
)

func init() {
	rollCmd.Flags().Uint64VarP(&rollOpts.trials, "trials", "n", 1_000_000, "number of rolls")
	rollCmd.Flags().Uint32Var(&rollOpts.lucky, "lucky", 37, "denominator of the final lucky roll, 0 to skip")
}

func roll(ctx context.Context, w io.Writer, r *odds.Roller, d odds.Denominator, trials uint64, lucky uint32) (uint64, error) {
	var hits uint64
	for i := uint64(0); i < trials; i++ {
		if i%chunkSize == 0 {
			if err := ctx.Err(); err != nil {
				return hits, err
			}
		}
		if r.Roll(d) {
			hits++
		}
	}
	fmt.Fprintf(w, "%s hits: %d\n", d, hits)

	if lucky > 0 && r.OneIn(lucky) {
		fmt.Fprintln(w, color.GreenString("Lucky %d triggered.", lucky))
	}
	return hits, nil
}
