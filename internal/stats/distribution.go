package stats

import (
	"errors"
	"sort"

	"github.com/goodnatureofminers/algowatch-backend/internal/model"
)

// AlgorithmShare is one algorithm's slice of the window.
type AlgorithmShare struct {
	Count      int
	Percentage float64
}

// MultiBlockMiner is an address that mined more than one block in the window.
type MultiBlockMiner struct {
	Address   string
	Count     int
	PoolLabel string
	Rank      int
}

// SingleBlockMiner is an address that mined exactly one block in the window.
type SingleBlockMiner struct {
	Address   string
	Height    uint64
	PoolLabel string
	Rank      int
}

// DistributionSnapshot is an immutable value object derived from the full
// window. Counts are exact and uncollapsed; threshold consolidation is a
// presentation concern handled by ConsolidateShares.
type DistributionSnapshot struct {
	TotalBlocks       int
	ByAlgorithm       map[model.Algorithm]AlgorithmShare
	MultiBlockMiners  []MultiBlockMiner
	SingleBlockMiners []SingleBlockMiner
}

// Aggregator computes distribution snapshots. Repeated calls over unchanged
// input yield identical ranked output.
type Aggregator struct {
	singleMinerCap int
}

// NewAggregator constructs an Aggregator. singleMinerCap bounds the
// single-block miner list and must be positive.
func NewAggregator(singleMinerCap int) (*Aggregator, error) {
	if singleMinerCap <= 0 {
		return nil, errors.New("single miner display cap must be positive")
	}
	return &Aggregator{singleMinerCap: singleMinerCap}, nil
}

// Compute aggregates the entire window view.
func (a *Aggregator) Compute(view []model.BlockRecord) DistributionSnapshot {
	snap := DistributionSnapshot{
		TotalBlocks: len(view),
		ByAlgorithm: make(map[model.Algorithm]AlgorithmShare, len(model.Algorithms())),
	}

	counts := make(map[model.Algorithm]int)
	for _, rec := range view {
		counts[rec.Algorithm]++
	}
	for _, algo := range model.Algorithms() {
		share := AlgorithmShare{Count: counts[algo]}
		if snap.TotalBlocks > 0 {
			share.Percentage = float64(share.Count) / float64(snap.TotalBlocks) * 100
		}
		snap.ByAlgorithm[algo] = share
	}

	type minerAgg struct {
		address   string
		count     int
		topHeight uint64
		poolLabel string
	}

	// View is newest-first, so the first record seen per address carries the
	// most recent height and pool label. Insertion order keeps the base
	// ordering deterministic before the stable sorts below.
	byAddress := make(map[string]*minerAgg)
	var order []*minerAgg
	for _, rec := range view {
		if !rec.HasMiner() {
			continue
		}
		agg, ok := byAddress[rec.MinerAddress]
		if !ok {
			agg = &minerAgg{
				address:   rec.MinerAddress,
				topHeight: rec.Height,
				poolLabel: rec.PoolIdentifier,
			}
			byAddress[rec.MinerAddress] = agg
			order = append(order, agg)
		}
		agg.count++
		if rec.Height > agg.topHeight {
			agg.topHeight = rec.Height
		}
		if agg.poolLabel == "" {
			agg.poolLabel = rec.PoolIdentifier
		}
	}

	var multi, single []*minerAgg
	for _, agg := range order {
		if agg.count > 1 {
			multi = append(multi, agg)
		} else {
			single = append(single, agg)
		}
	}

	sort.SliceStable(multi, func(i, j int) bool {
		if multi[i].count != multi[j].count {
			return multi[i].count > multi[j].count
		}
		return multi[i].topHeight > multi[j].topHeight
	})
	sort.SliceStable(single, func(i, j int) bool {
		return single[i].topHeight > single[j].topHeight
	})
	if len(single) > a.singleMinerCap {
		single = single[:a.singleMinerCap]
	}

	for i, agg := range multi {
		snap.MultiBlockMiners = append(snap.MultiBlockMiners, MultiBlockMiner{
			Address:   agg.address,
			Count:     agg.count,
			PoolLabel: agg.poolLabel,
			Rank:      i + 1,
		})
	}
	for i, agg := range single {
		snap.SingleBlockMiners = append(snap.SingleBlockMiners, SingleBlockMiner{
			Address:   agg.address,
			Height:    agg.topHeight,
			PoolLabel: agg.poolLabel,
			Rank:      i + 1,
		})
	}
	return snap
}
