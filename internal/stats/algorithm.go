// Package stats derives per-algorithm and distribution statistics from a
// window of block records.
package stats

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/algowatch-backend/internal/model"
)

// Constants describes the network timing parameters the hashrate estimate is
// derived from. The chain targets one block every CombinedTargetInterval
// across all algorithms, so a single algorithm is expected to find a block
// every CombinedTargetInterval * AlgorithmCount.
type Constants struct {
	CombinedTargetInterval time.Duration
	AlgorithmCount         int
}

// DefaultConstants returns the mainnet parameters: 15s combined block target
// across 5 algorithms, hence a 75s per-algorithm target.
func DefaultConstants() Constants {
	return Constants{
		CombinedTargetInterval: 15 * time.Second,
		AlgorithmCount:         len(model.Algorithms()),
	}
}

// PerAlgorithmTargetInterval is the expected interval between blocks of one
// algorithm.
func (c Constants) PerAlgorithmTargetInterval() time.Duration {
	return c.CombinedTargetInterval * time.Duration(c.AlgorithmCount)
}

func (c Constants) validate() error {
	if c.CombinedTargetInterval <= 0 {
		return errors.New("combined target interval must be positive")
	}
	if c.AlgorithmCount <= 0 {
		return errors.New("algorithm count must be positive")
	}
	return nil
}

// AlgorithmStats holds derived figures for one algorithm over a horizon.
// Pointer fields are nil when no block of the algorithm was observed in the
// horizon; they are never zero or NaN in that case.
type AlgorithmStats struct {
	BlockCount       int
	HashrateEstimate *float64
	AvgDifficulty    *float64
	AvgBlockInterval *float64 // seconds
}

// Calculator computes per-algorithm statistics. It is pure: the result depends
// only on the supplied view, horizon, and the configured constants.
type Calculator struct {
	constants Constants
}

// NewCalculator validates the constants and returns a Calculator.
func NewCalculator(constants Constants) (*Calculator, error) {
	if err := constants.validate(); err != nil {
		return nil, err
	}
	return &Calculator{constants: constants}, nil
}

// Compute derives stats for every algorithm from a horizon-filtered view.
// Algorithms absent from the view get a zero BlockCount and nil derived
// fields. The hashrate estimate uses the canonical formula
//
//	hashrate = (blockCount / expectedBlocks) * avgDifficulty * 2^32 / combinedTargetSeconds
//
// where expectedBlocks = horizonSeconds / perAlgorithmTargetSeconds.
func (c *Calculator) Compute(view []model.BlockRecord, horizon time.Duration) map[model.Algorithm]AlgorithmStats {
	out := make(map[model.Algorithm]AlgorithmStats, len(model.Algorithms()))

	counts := make(map[model.Algorithm]int)
	diffSums := make(map[model.Algorithm]float64)
	for _, rec := range view {
		counts[rec.Algorithm]++
		diffSums[rec.Algorithm] += rec.Difficulty
	}

	horizonSeconds := horizon.Seconds()
	expectedBlocks := horizonSeconds / c.constants.PerAlgorithmTargetInterval().Seconds()

	for _, algo := range model.Algorithms() {
		count := counts[algo]
		if count == 0 || horizonSeconds <= 0 {
			out[algo] = AlgorithmStats{BlockCount: count}
			continue
		}

		avgDifficulty := diffSums[algo] / float64(count)
		avgInterval := horizonSeconds / float64(count)
		hashrate := (float64(count) / expectedBlocks) * avgDifficulty * (1 << 32) /
			c.constants.CombinedTargetInterval.Seconds()

		out[algo] = AlgorithmStats{
			BlockCount:       count,
			HashrateEstimate: &hashrate,
			AvgDifficulty:    &avgDifficulty,
			AvgBlockInterval: &avgInterval,
		}
	}
	return out
}
