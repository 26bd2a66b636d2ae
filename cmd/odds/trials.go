package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/daystram/odds/bench"
	"github.com/daystram/odds/logger"
	"github.com/daystram/odds/odds"
)

var (
	trialsOpts = struct {
		trials     uint64
		workers    int
		sequential bool
		verbose    bool
	}{}

	trialsCmd = &cobra.Command{
		Use:   "trials <denominator>",
		Short: "Run 1 in N trials across workers",
		Long:  "Run 1 in N trials, splitting the work across workers that each own an independent stream of the seeded generator.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := odds.ParseDenominator(args[0])
			if err != nil {
				return err
			}
			workers := cfg.Workers
			if cmd.Flags().Changed("workers") {
				workers = trialsOpts.workers
			}

			out := make(chan string, 64)
			done := make(chan struct{})
			go func() {
				defer close(done)
				for s := range out {
					fmt.Fprintln(cmd.OutOrStdout(), s)
				}
			}()

			seed := newRoller().LastSeed()
			start := time.Now()
			logger.Log().Info().
				Str("denominator", d.String()).
				Uint64("trials", trialsOpts.trials).
				Int("workers", workers).
				Bool("parallel", !trialsOpts.sequential).
				Msg("trials started")
			res, err := bench.Trials(cmd.Context(), bench.TrialsConfig{
				Denominator: d,
				Trials:      trialsOpts.trials,
				Workers:     workers,
				Seed:        seed,
				Parallel:    !trialsOpts.sequential,
				Verbose:     trialsOpts.verbose,
			}, out)
			close(out)
			<-done
			if err != nil {
				return err
			}
			logger.Since(logger.Log().Info(), start).Uint64("hits", res.Hits).Msg("trials finished")
			return nil
		},
	}
)

func init() {
	trialsCmd.Flags().Uint64VarP(&trialsOpts.trials, "trials", "n", 10_000_000, "number of rolls")
	trialsCmd.Flags().IntVarP(&trialsOpts.workers, "workers", "w", 0, "number of workers (default: $ODDS_WORKERS, else CPU count)")
	trialsCmd.Flags().BoolVar(&trialsOpts.sequential, "sequential", false, "roll on a single generator without splitting")
	trialsCmd.Flags().BoolVarP(&trialsOpts.verbose, "verbose", "v", false, "print per-worker results")
}
