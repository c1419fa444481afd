package stream

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/algowatch-backend/internal/model"
)

// Reference difficulties per algorithm for synthetic data. Rough mainnet
// magnitudes; the exact values only matter for producing plausible non-empty
// charts while no live data has arrived.
var syntheticDifficulty = map[model.Algorithm]float64{
	model.AlgoSHA256D: 450_000_000,
	model.AlgoScrypt:  14_000_000,
	model.AlgoSkein:   18_000_000,
	model.AlgoQubit:   16_000_000,
	model.AlgoOdo:     1_200_000,
}

// SyntheticSnapshot builds a deterministic placeholder window of size records,
// round-robin across the algorithms, newest first, one block per combined
// target interval ending at now. Callers flag the resulting snapshot as
// fallback data; the records themselves carry no miner attribution.
func SyntheticSnapshot(size int, now time.Time) []model.BlockRecord {
	if size <= 0 {
		return nil
	}
	algos := model.Algorithms()
	out := make([]model.BlockRecord, 0, size)
	for i := 0; i < size; i++ {
		height := uint64(size - i)
		algo := algos[int(height)%len(algos)]
		out = append(out, model.BlockRecord{
			Height:     height,
			Hash:       fmt.Sprintf("synthetic-%d", height),
			Timestamp:  now.Add(-time.Duration(i) * 15 * time.Second).UTC(),
			Algorithm:  algo,
			Difficulty: syntheticDifficulty[algo],
			TxCount:    1,
		})
	}
	return out
}
