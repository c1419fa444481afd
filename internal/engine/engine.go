// Package engine runs the single serialized pipeline that turns delivered
// stream events into published aggregates.
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goodnatureofminers/algowatch-backend/internal/model"
	"github.com/goodnatureofminers/algowatch-backend/internal/stats"
	"github.com/goodnatureofminers/algowatch-backend/internal/window"
	"go.uber.org/zap"
)

// Config carries the engine's dependencies and tuning.
type Config struct {
	WindowCapacity  int
	HeightTolerance uint64
	Horizon         time.Duration
	Calculator      StatsCalculator
	Aggregator      DistributionAggregator
	Metrics         Metrics
	Archive         BlockSink // optional
	Logger          *zap.Logger
	Now             func() time.Time // optional, defaults to time.Now
}

// Engine owns the window buffer and recomputes both aggregates synchronously
// after every mutation. All mutation entry points are serialized by one mutex;
// readers always receive copies, never references into live state.
type Engine struct {
	mu sync.Mutex

	logger  *zap.Logger
	buffer  *window.Buffer
	calc    StatsCalculator
	agg     DistributionAggregator
	metrics Metrics
	archive BlockSink
	horizon time.Duration
	now     func() time.Time

	listeners     []Listener
	closed        bool
	usingFallback bool
	connStatus    model.ConnectionStatus
	lastStatus    model.ConnectionStatus

	lastStats map[model.Algorithm]stats.AlgorithmStats
	lastDist  stats.DistributionSnapshot
}

// New validates the configuration and constructs an Engine.
func New(cfg Config) (*Engine, error) {
	if cfg.Calculator == nil {
		return nil, errors.New("stats calculator is required")
	}
	if cfg.Aggregator == nil {
		return nil, errors.New("distribution aggregator is required")
	}
	if cfg.Metrics == nil {
		return nil, errors.New("engine metrics is required")
	}
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.Horizon <= 0 {
		return nil, errors.New("horizon must be positive")
	}
	buf, err := window.New(cfg.WindowCapacity, cfg.HeightTolerance)
	if err != nil {
		return nil, err
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	e := &Engine{
		logger:     cfg.Logger.Named("engine"),
		buffer:     buf,
		calc:       cfg.Calculator,
		agg:        cfg.Aggregator,
		metrics:    cfg.Metrics,
		archive:    cfg.Archive,
		horizon:    cfg.Horizon,
		now:        now,
		connStatus: model.StatusReconnecting,
		lastStatus: model.StatusReconnecting,
	}
	e.lastStats = cfg.Calculator.Compute(nil, cfg.Horizon)
	e.lastDist = cfg.Aggregator.Compute(nil)
	return e, nil
}

// Subscribe registers a listener for published aggregates.
func (e *Engine) Subscribe(l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, l)
}

// Close makes the engine inert. No mutation or recomputation happens after it
// returns.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
}

// ApplySnapshot replaces the window wholesale. A fallback snapshot marks the
// published data as synthetic; a genuine snapshot clears that mark and is
// forwarded to the archive sink.
func (e *Engine) ApplySnapshot(records []model.BlockRecord, fallback bool) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.buffer.ApplySnapshot(records)
	e.usingFallback = fallback
	view, listeners, statusChange := e.recomputeLocked()
	e.mu.Unlock()

	if !fallback {
		e.archiveRecords(records)
	}
	for _, l := range listeners {
		l.OnSnapshotApplied(view)
	}
	e.publish(listeners, statusChange)
}

// ApplyIncrement adds one record to the window. Rejected records leave the
// window, the aggregates, and the listeners untouched.
func (e *Engine) ApplyIncrement(rec model.BlockRecord) window.ApplyResult {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return window.RejectedClosed
	}
	res := e.buffer.ApplyIncrement(rec)
	if res != window.Accepted {
		e.mu.Unlock()
		e.metrics.ObserveRejection(res.String())
		e.logger.Debug("increment rejected",
			zap.String("reason", res.String()),
			zap.Uint64("height", rec.Height),
			zap.String("hash", rec.Hash))
		return res
	}
	_, listeners, statusChange := e.recomputeLocked()
	e.mu.Unlock()

	e.archiveRecords([]model.BlockRecord{rec})
	e.publish(listeners, statusChange)
	return res
}

// SetStatus records the transport-level connection status. The published
// status stays usingFallback while the window holds synthetic data.
func (e *Engine) SetStatus(status model.ConnectionStatus) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.connStatus = status
	effective := e.effectiveStatusLocked()
	changed := effective != e.lastStatus
	e.lastStatus = effective
	listeners := e.listenersLocked()
	e.mu.Unlock()

	if changed {
		for _, l := range listeners {
			l.OnStatusChanged(effective)
		}
	}
}

// Stats returns the latest per-algorithm statistics.
func (e *Engine) Stats() map[model.Algorithm]stats.AlgorithmStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[model.Algorithm]stats.AlgorithmStats, len(e.lastStats))
	for k, v := range e.lastStats {
		out[k] = v
	}
	return out
}

// Distribution returns the latest distribution snapshot.
func (e *Engine) Distribution() stats.DistributionSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastDist
}

// WindowView returns a copy of the full window, newest first.
func (e *Engine) WindowView() []model.BlockRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buffer.View(0, e.now())
}

// Status returns the consumer-visible connection status.
func (e *Engine) Status() model.ConnectionStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.effectiveStatusLocked()
}

// UsingFallback reports whether the window currently holds synthetic data.
func (e *Engine) UsingFallback() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.usingFallback
}

type statusChange struct {
	changed bool
	status  model.ConnectionStatus
}

// recomputeLocked runs both calculators over the mutated buffer. Callers hold
// the mutex and fan the results out after releasing it.
func (e *Engine) recomputeLocked() ([]model.BlockRecord, []Listener, statusChange) {
	started := e.now()
	now := e.now()
	horizonView := e.buffer.View(e.horizon, now)
	fullView := e.buffer.View(0, now)

	e.lastStats = e.calc.Compute(horizonView, e.horizon)
	e.lastDist = e.agg.Compute(fullView)

	e.metrics.ObserveRecompute(started)
	e.metrics.ObserveWindowLength(e.buffer.Len())

	effective := e.effectiveStatusLocked()
	change := statusChange{changed: effective != e.lastStatus, status: effective}
	e.lastStatus = effective

	return fullView, e.listenersLocked(), change
}

func (e *Engine) effectiveStatusLocked() model.ConnectionStatus {
	if e.usingFallback {
		return model.StatusUsingFallback
	}
	return e.connStatus
}

func (e *Engine) listenersLocked() []Listener {
	out := make([]Listener, len(e.listeners))
	copy(out, e.listeners)
	return out
}

func (e *Engine) publish(listeners []Listener, change statusChange) {
	e.mu.Lock()
	st := e.lastStats
	dist := e.lastDist
	e.mu.Unlock()

	statsCopy := make(map[model.Algorithm]stats.AlgorithmStats, len(st))
	for k, v := range st {
		statsCopy[k] = v
	}
	for _, l := range listeners {
		l.OnStatsUpdated(statsCopy)
		l.OnDistributionUpdated(dist)
		if change.changed {
			l.OnStatusChanged(change.status)
		}
	}
}

func (e *Engine) archiveRecords(records []model.BlockRecord) {
	if e.archive == nil {
		return
	}
	for _, rec := range records {
		if err := e.archive.Add(context.Background(), rec); err != nil {
			e.logger.Warn("archive enqueue failed", zap.Error(err), zap.Uint64("height", rec.Height))
			return
		}
	}
}
