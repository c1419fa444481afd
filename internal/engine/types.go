package engine

import (
	"context"
	"time"

	"github.com/goodnatureofminers/algowatch-backend/internal/model"
	"github.com/goodnatureofminers/algowatch-backend/internal/stats"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// StatsCalculator derives per-algorithm statistics from a horizon-filtered view.
	StatsCalculator interface {
		Compute(view []model.BlockRecord, horizon time.Duration) map[model.Algorithm]stats.AlgorithmStats
	}

	// DistributionAggregator derives share percentages and miner rankings from
	// the full window view.
	DistributionAggregator interface {
		Compute(view []model.BlockRecord) stats.DistributionSnapshot
	}

	// Listener receives published aggregates after every confirmed window
	// mutation. Callbacks run on the event-processing goroutine and must not
	// block.
	Listener interface {
		OnSnapshotApplied(view []model.BlockRecord)
		OnStatsUpdated(s map[model.Algorithm]stats.AlgorithmStats)
		OnDistributionUpdated(d stats.DistributionSnapshot)
		OnStatusChanged(status model.ConnectionStatus)
	}

	// BlockSink receives every genuine accepted block, e.g. for archival.
	BlockSink interface {
		Add(ctx context.Context, rec model.BlockRecord) error
	}

	// Metrics tracks pipeline instrumentation.
	Metrics interface {
		ObserveRecompute(started time.Time)
		ObserveRejection(reason string)
		ObserveWindowLength(length int)
	}
)
