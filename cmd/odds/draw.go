package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/daystram/odds/odds"
)

var (
	drawOpts = struct {
		bits  int
		below uint64
	}{}

	drawCmd = &cobra.Command{
		Use:   "draw [count]",
		Short: "Print raw or bounded draws",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := uint64(1)
			if len(args) == 1 {
				var err error
				n, err = strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid count %q: %w", args[0], err)
				}
			}
			if drawOpts.bits != 32 && drawOpts.bits != 64 {
				return fmt.Errorf("invalid bits %d: want 32 or 64", drawOpts.bits)
			}
			return draw(cmd.Context(), cmd.OutOrStdout(), newRoller(), n, drawOpts.bits == 32, drawOpts.below)
		},
	}
)

func init() {
	drawCmd.Flags().IntVar(&drawOpts.bits, "bits", 64, "width of raw draws, 32 or 64")
	drawCmd.Flags().Uint64Var(&drawOpts.below, "below", 0, "print unbiased samples in [0, below) instead of raw draws")
}

// draw prints n values, checking ctx once per chunk.
func draw(ctx context.Context, w io.Writer, r *odds.Roller, n uint64, narrow bool, below uint64) error {
	for i := uint64(0); i < n; i++ {
		if i%chunkSize == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		switch {
		case below > 0:
			fmt.Fprintln(w, r.Below(below))
		case narrow:
			fmt.Fprintln(w, r.Uint32())
		default:
			fmt.Fprintln(w, r.Uint64())
		}
	}
	return nil
}
