// Package archive persists observed blocks to long-term storage through a
// buffered, rate-limited batch writer.
package archive

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goodnatureofminers/algowatch-backend/internal/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Repository is the storage backend batches are flushed to.
type Repository interface {
	InsertBlocks(ctx context.Context, blocks []model.BlockRecord) error
}

// Archiver buffers block records and flushes them either by size or interval.
// The storage layer deduplicates replays, so re-archiving a snapshot after a
// reconnect is harmless.
type Archiver struct {
	logger        *zap.Logger
	repo          Repository
	itemsCh       chan model.BlockRecord
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter

	wg   sync.WaitGroup
	stop chan struct{}
}

// New constructs an Archiver.
func New(logger *zap.Logger, repo Repository, flushSize int, flushInterval time.Duration, rps int) (*Archiver, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if repo == nil {
		return nil, errors.New("repository is required")
	}
	if flushSize <= 0 {
		return nil, errors.New("flush size must be positive")
	}
	if flushInterval <= 0 {
		return nil, errors.New("flush interval must be positive")
	}
	if rps <= 0 {
		return nil, errors.New("rps must be positive")
	}
	return &Archiver{
		logger:        logger.Named("archiver"),
		repo:          repo,
		itemsCh:       make(chan model.BlockRecord, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            ratelimit.New(rps),
		stop:          make(chan struct{}),
	}, nil
}

// Start begins the background flushing loop.
func (a *Archiver) Start(ctx context.Context) {
	a.wg.Add(1)
	go a.run(ctx)
}

// Stop flushes pending records and stops the loop.
func (a *Archiver) Stop() {
	close(a.stop)
	a.wg.Wait()
}

// Add queues one record for archival, respecting context cancellation.
func (a *Archiver) Add(ctx context.Context, rec model.BlockRecord) error {
	select {
	case <-a.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case a.itemsCh <- rec:
		return nil
	}
}

func (a *Archiver) run(ctx context.Context) {
	defer a.wg.Done()

	ticker := time.NewTicker(a.flushInterval)
	defer ticker.Stop()

	buf := make([]model.BlockRecord, 0, a.flushSize)

	flush := func() {
		if len(buf) == 0 {
			return
		}
		a.rl.Take()
		if err := a.repo.InsertBlocks(ctx, buf); err != nil {
			a.logger.Error("archive batch not flushed", zap.Error(err), zap.Int("size", len(buf)))
		} else {
			a.logger.Debug("archive batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return

		case <-a.stop:
			// Drain whatever was queued before Stop.
			for {
				select {
				case rec := <-a.itemsCh:
					buf = append(buf, rec)
					if len(buf) >= a.flushSize {
						flush()
					}
					continue
				default:
				}
				break
			}
			flush()
			return

		case rec := <-a.itemsCh:
			buf = append(buf, rec)
			if len(buf) >= a.flushSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}
