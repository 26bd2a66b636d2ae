package bench

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/daystram/odds/odds"
)

const (
	MaxUniformityBound = 1 << 16

	DefaultSignificance = 0.001
)

type UniformityConfig struct {
	Bound uint64
	Draws uint64
	Seed  uint64
	// rejected when the p-value falls below it; zero means DefaultSignificance
	Significance float64
}

type UniformityResult struct {
	Counts     []uint64
	ChiSquared float64
	PValue     float64
	Uniform    bool
}

// Uniformity samples Below(cfg.Bound) cfg.Draws times and runs Pearson's
// chi-squared goodness-of-fit test against the uniform distribution.
func Uniformity(ctx context.Context, cfg UniformityConfig, out chan string) (UniformityResult, error) {
	if cfg.Bound < 2 || cfg.Bound > MaxUniformityBound {
		return UniformityResult{}, fmt.Errorf("%w: bound=%d", ErrInvalidConfig, cfg.Bound)
	}
	if cfg.Draws < cfg.Bound {
		return UniformityResult{}, fmt.Errorf("%w: draws=%d below bound=%d", ErrInvalidConfig, cfg.Draws, cfg.Bound)
	}
	if cfg.Significance == 0 {
		cfg.Significance = DefaultSignificance
	}

	r := odds.New(odds.WithSeed(cfg.Seed))
	counts := make([]uint64, cfg.Bound)
	for done := uint64(0); done < cfg.Draws; {
		if err := ctx.Err(); err != nil {
			return UniformityResult{}, err
		}
		n := min(cfg.Draws-done, chunkSize)
		for i := uint64(0); i < n; i++ {
			counts[r.Below(cfg.Bound)]++
		}
		done += n
	}

	x2, p := ChiSquared(counts)
	res := UniformityResult{
		Counts:     counts,
		ChiSquared: x2,
		PValue:     p,
		Uniform:    p >= cfg.Significance,
	}
	emit(out, message.NewPrinter(language.English).
		Sprintf("bound=%d draws=%d chi2=%.3f df=%d p=%.6f uniform=%v",
			cfg.Bound, cfg.Draws, res.ChiSquared, cfg.Bound-1, res.PValue, res.Uniform))
	return res, nil
}

// ChiSquared returns Pearson's statistic for counts against equal expected
// frequencies, and its p-value with len(counts)-1 degrees of freedom.
func ChiSquared(counts []uint64) (float64, float64) {
	if len(counts) < 2 {
		return 0, 1
	}
	var total uint64
	obs := make([]float64, len(counts))
	for i, c := range counts {
		obs[i] = float64(c)
		total += c
	}
	exp := make([]float64, len(counts))
	for i := range exp {
		exp[i] = float64(total) / float64(len(counts))
	}
	x2 := stat.ChiSquare(obs, exp)
	return x2, distuv.ChiSquared{K: float64(len(counts) - 1)}.Survival(x2)
}
