package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daystram/odds/bench"
	"github.com/daystram/odds/logger"
)

var (
	errNotUniform = errors.New("distribution not uniform")

	uniformityOpts = struct {
		bound        uint64
		draws        uint64
		significance float64
	}{}

	uniformityCmd = &cobra.Command{
		Use:   "uniformity",
		Short: "Chi-squared test of bounded sampling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make(chan string, 1)
			res, err := bench.Uniformity(cmd.Context(), bench.UniformityConfig{
				Bound:        uniformityOpts.bound,
				Draws:        uniformityOpts.draws,
				Seed:         newRoller().LastSeed(),
				Significance: uniformityOpts.significance,
			}, out)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), <-out)
			logger.Log().Info().
				Uint64("bound", uniformityOpts.bound).
				Float64("chi2", res.ChiSquared).
				Float64("p", res.PValue).
				Msg("uniformity result")
			if !res.Uniform {
				return fmt.Errorf("%w: p=%.6f", errNotUniform, res.PValue)
			}
			return nil
		},
	}
)

func init() {
	uniformityCmd.Flags().Uint64VarP(&uniformityOpts.bound, "bound", "b", 37, "exclusive upper bound, 2 to 65536")
	uniformityCmd.Flags().Uint64VarP(&uniformityOpts.draws, "draws", "n", 1_000_000, "number of samples")
	uniformityCmd.Flags().Float64Var(&uniformityOpts.significance, "significance", bench.DefaultSignificance, "minimum accepted p-value")
}
