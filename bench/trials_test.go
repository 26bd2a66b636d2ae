package bench

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/daystram/odds/odds"
)

func TestTrials(t *testing.T) {
	t.Parallel()

	tests := map[odds.Denominator][]struct {
		trials   uint64
		seed     uint64
		parallel bool
		workers  int
		wantHits uint64
	}{
		odds.P100: {
			{trials: 0, seed: 1337, wantHits: 0},
			{trials: 1_000_000, seed: 1337, wantHits: 10_035},
			{trials: 1_000_000, seed: 1337, parallel: true, workers: 1, wantHits: 10_035},
			{trials: 1_000_000, seed: 1337, parallel: true, workers: 4, wantHits: 9_992},
		},
		odds.P6: {
			{trials: 6_000, seed: 7, wantHits: 978},
		},
		1: {
			{trials: 1_000, seed: 1, wantHits: 1_000},
			{trials: 1_000, seed: 1, parallel: true, workers: 3, wantHits: 1_000},
		},
	}

	for d, constraints := range tests {
		for _, tt := range constraints {
			d, tt := d, tt
			t.Run(fmt.Sprintf("%s trials=%d workers=%d", d, tt.trials, tt.workers), func(t *testing.T) {
				t.Parallel()
				res, err := Trials(context.Background(), TrialsConfig{
					Denominator: d,
					Trials:      tt.trials,
					Workers:     tt.workers,
					Seed:        tt.seed,
					Parallel:    tt.parallel,
				}, nil)
				if err != nil {
					t.Fatal("unexpected error:", err)
				}
				if res.Hits != tt.wantHits {
					t.Errorf("unexpected hits: got=%d want=%d", res.Hits, tt.wantHits)
				}
				if res.Trials != tt.trials {
					t.Errorf("unexpected trials: got=%d want=%d", res.Trials, tt.trials)
				}
			})
		}
	}
}

func TestTrialsOutput(t *testing.T) {
	t.Parallel()
	out := make(chan string, 8)
	_, err := Trials(context.Background(), TrialsConfig{
		Denominator: odds.P2,
		Trials:      100,
		Workers:     2,
		Seed:        1,
		Parallel:    true,
		Verbose:     true,
	}, out)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	close(out)
	var lines []string
	for s := range out {
		lines = append(lines, s)
	}
	if len(lines) != 3 {
		t.Errorf("unexpected line count: got=%d want=3 (%q)", len(lines), lines)
	}
}

func TestTrialsInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		cfg  TrialsConfig
	}{
		{name: "zero denominator", cfg: TrialsConfig{Trials: 10}},
		{name: "no workers", cfg: TrialsConfig{Denominator: odds.P2, Trials: 10, Parallel: true}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Trials(context.Background(), tt.cfg, nil); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidConfig)
			}
		})
	}
}

func TestTrialsCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, parallel := range []bool{false, true} {
		_, err := Trials(ctx, TrialsConfig{Denominator: odds.P2, Trials: 1 << 20, Workers: 2, Parallel: parallel}, nil)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: parallel=%v got=%v want=%v", parallel, err, context.Canceled)
		}
	}
}
