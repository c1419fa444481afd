package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const maxBlockHeightQuery = `SELECT max(height) FROM algowatch_blocks`

// MaxBlockHeight returns the highest archived height, or 0 for an empty archive.
func (r *Repository) MaxBlockHeight(ctx context.Context) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_block_height", err, start)
	}()

	var height uint64
	if err = r.conn.QueryRow(ctx, maxBlockHeightQuery).Scan(&height); err != nil {
		return 0, fmt.Errorf("query max block height: %w", err)
	}
	return height, nil
}
