package bench

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/odds/odds"
)

const chunkSize = 1 << 16

var ErrInvalidConfig = errors.New("invalid bench config")

type TrialsConfig struct {
	Denominator odds.Denominator
	Trials      uint64
	Workers     int
	Seed        uint64
	Parallel    bool
	Verbose     bool
}

type TrialsResult struct {
	Trials  uint64
	Hits    uint64
	Elapsed time.Duration
}

func (r TrialsResult) Rate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.Trials)
}

// Trials rolls cfg.Denominator cfg.Trials times. Sequential runs use a single
// roller seeded with cfg.Seed; parallel runs give every worker its own roller
// split from that seed, so the hit count depends on the worker count.
func Trials(ctx context.Context, cfg TrialsConfig, out chan string) (TrialsResult, error) {
	if cfg.Denominator == 0 {
		return TrialsResult{}, fmt.Errorf("%w: zero denominator", ErrInvalidConfig)
	}
	if cfg.Parallel && cfg.Workers < 1 {
		return TrialsResult{}, fmt.Errorf("%w: workers=%d", ErrInvalidConfig, cfg.Workers)
	}

	var hits uint64
	var err error
	r := odds.New(odds.WithSeed(cfg.Seed))

	start := time.Now()
	if cfg.Parallel {
		hits, err = runTrialsParallel(ctx, r, cfg, out)
	} else {
		hits, err = runTrials(ctx, r, cfg.Denominator, cfg.Trials)
	}
	end := time.Now()
	if err != nil {
		return TrialsResult{}, err
	}

	res := TrialsResult{Trials: cfg.Trials, Hits: hits, Elapsed: end.Sub(start)}
	emit(out, message.NewPrinter(language.English).
		Sprintf("%s trials=%d hits=%d rate=%.5f want=%.5f (%.3fs elapsed)",
			cfg.Denominator, res.Trials, res.Hits, res.Rate(), cfg.Denominator.Probability(), res.Elapsed.Seconds()))
	return res, nil
}

func runTrials(ctx context.Context, r *odds.Roller, d odds.Denominator, trials uint64) (uint64, error) {
	var hits uint64
	for done := uint64(0); done < trials; {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		n := min(trials-done, chunkSize)
		for i := uint64(0); i < n; i++ {
			if r.Roll(d) {
				hits++
			}
		}
		done += n
	}
	return hits, nil
}

func runTrialsParallel(ctx context.Context, r *odds.Roller, cfg TrialsConfig, out chan string) (uint64, error) {
	var hits uint64
	var wg sync.WaitGroup
	errCh := make(chan error, cfg.Workers)
	per, rem := cfg.Trials/uint64(cfg.Workers), cfg.Trials%uint64(cfg.Workers)
	for w := 0; w < cfg.Workers; w++ {
		n := per
		if uint64(w) < rem {
			n++
		}
		w, wr := w, r.Split()
		wg.Add(1)
		go func() {
			defer wg.Done()
			child, err := runTrials(ctx, wr, cfg.Denominator, n)
			if err != nil {
				errCh <- err
				return
			}
			if cfg.Verbose {
				emit(out, fmt.Sprintf("worker %d: trials=%d hits=%d", w, n, child))
			}
			atomic.AddUint64(&hits, child)
		}()
	}
	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return 0, err
	}
	return hits, nil
}

func emit(out chan string, s string) {
	if out != nil {
		out <- s
	}
}
