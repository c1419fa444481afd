package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/algowatch-backend/internal/model"
)

const insertBlocksQuery = `
INSERT INTO algowatch_blocks (
	height,
	hash,
	timestamp,
	algo,
	difficulty,
	miner_address,
	pool,
	taproot_signaling,
	tx_count
) VALUES`

// InsertBlocks stores block rows. The table is a ReplacingMergeTree keyed by
// hash, so re-inserting blocks already archived is safe.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.BlockRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(
			block.Height,
			block.Hash,
			block.Timestamp,
			string(block.Algorithm),
			block.Difficulty,
			block.MinerAddress,
			block.PoolIdentifier,
			block.TaprootSignaling,
			block.TxCount,
		); err != nil {
			return fmt.Errorf("append block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
