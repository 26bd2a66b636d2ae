package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/daystram/odds/config"
	"github.com/daystram/odds/logger"
	"github.com/daystram/odds/odds"
)

const (
	exitOK = iota
	exitErr
)

// draws and rolls between context checks
const chunkSize = 1 << 16

var (
	cfg *config.Config

	seedFlag    string
	profileFlag bool
	levelFlag   string
	formatFlag  string

	rootCmd = &cobra.Command{
		Use:           "odds",
		Short:         "Deterministic 1 in N odds",
		Long:          "Seedable xoshiro256** generator with unbiased bounded sampling and 1 in N rolls.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seedFlag
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = levelFlag
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = formatFlag
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.NoColor {
				color.NoColor = true
			}
			if cfg.LogFormat == config.LogFormatJSON {
				logger.SetJSONWriter(os.Stderr)
			} else {
				logger.SetConsoleWriter(os.Stderr, color.NoColor)
			}
			if err := logger.SetLevel(cfg.LogLevel); err != nil {
				return err
			}
			if profileFlag || cfg.Profile {
				runProfiler()
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&seedFlag, "seed", "", "generator seed, decimal or 0x hex (default: $ODDS_SEED, else entropy)")
	rootCmd.PersistentFlags().StringVar(&levelFlag, "log-level", "info", "log level (default: $ODDS_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "log-format", config.LogFormatConsole, "log format, console or json (default: $ODDS_LOG_FORMAT)")
	rootCmd.PersistentFlags().BoolVar(&profileFlag, "profile", false, "serve pprof endpoint")

	rootCmd.AddCommand(rollCmd, drawCmd, trialsCmd, uniformityCmd, sessionCmd)
}

func main() {
	err := realMain(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		logger.Log().Info().Str("addr", fmt.Sprintf("http://%s/debug/pprof", addr)).Msg("starting pprof endpoint")
		_ = http.ListenAndServe(addr, nil)
	}()
}

// newRoller builds a roller from the configured seed, falling back to entropy.
// The seed is always logged so an entropy run can be replayed.
func newRoller() *odds.Roller {
	opt := odds.WithEntropy()
	if seed, ok, _ := cfg.SeedValue(); ok {
		opt = odds.WithSeed(seed)
	}
	r := odds.New(opt)
	logger.Log().Info().Uint64("seed", r.LastSeed()).Msg("roller seeded")
	return r
}
