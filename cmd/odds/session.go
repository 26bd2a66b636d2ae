package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/daystram/odds/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Read commands from stdin",
	Long:  "Read one command per line from stdin: seed, entropy, draw, draw32, below, onein, roll, presets, state, jump, quit.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []session.Option{session.WithRoller(newRoller())}
		if cfg.NoColor {
			opts = append(opts, session.WithoutColor())
		}
		return session.NewInterface(os.Stdin, cmd.OutOrStdout(), opts...).Run(cmd.Context())
	},
}
