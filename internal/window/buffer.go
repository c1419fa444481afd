// Package window maintains the bounded recent-history store of block records.
package window

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/goodnatureofminers/algowatch-backend/internal/model"
)

// ApplyResult reports the outcome of applying an increment.
type ApplyResult int

const (
	// Accepted means the record was added to the window.
	Accepted ApplyResult = iota
	// RejectedDuplicate means a record with the same hash is already present.
	RejectedDuplicate
	// RejectedStale means the record's height regressed beyond the configured
	// tolerance and was discarded.
	RejectedStale
	// RejectedClosed means the owning pipeline has shut down and no longer
	// accepts records. The Buffer itself never returns it.
	RejectedClosed
)

func (r ApplyResult) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectedDuplicate:
		return "rejected-duplicate"
	case RejectedStale:
		return "rejected-stale"
	case RejectedClosed:
		return "rejected-closed"
	default:
		return fmt.Sprintf("ApplyResult(%d)", int(r))
	}
}

// Buffer is a bounded, newest-first store of block records. It is not
// goroutine-safe; callers serialize access.
type Buffer struct {
	capacity        int
	heightTolerance uint64
	records         []model.BlockRecord
	hashes          map[string]struct{}
}

// New constructs an empty Buffer. Capacity must be positive. heightTolerance
// bounds how far below the current tip an incoming height may sit before the
// record is rejected as stale.
func New(capacity int, heightTolerance uint64) (*Buffer, error) {
	if capacity <= 0 {
		return nil, errors.New("window capacity must be positive")
	}
	return &Buffer{
		capacity:        capacity,
		heightTolerance: heightTolerance,
		records:         make([]model.BlockRecord, 0, capacity),
		hashes:          make(map[string]struct{}, capacity),
	}, nil
}

// Capacity returns the configured maximum window length.
func (b *Buffer) Capacity() int {
	return b.capacity
}

// Len returns the current number of records.
func (b *Buffer) Len() int {
	return len(b.records)
}

// ApplySnapshot replaces the window wholesale. Records are sorted newest-first
// by height, deduplicated by hash, and truncated to capacity.
func (b *Buffer) ApplySnapshot(records []model.BlockRecord) {
	sorted := make([]model.BlockRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Height > sorted[j].Height
	})

	b.records = b.records[:0]
	b.hashes = make(map[string]struct{}, b.capacity)
	for _, rec := range sorted {
		if len(b.records) >= b.capacity {
			break
		}
		if _, dup := b.hashes[rec.Hash]; dup {
			continue
		}
		b.records = append(b.records, rec)
		b.hashes[rec.Hash] = struct{}{}
	}
}

// ApplyIncrement adds a single record. A record whose hash is already present
// is rejected and the window is unchanged. A record whose height sits more
// than the tolerance below the current tip is rejected as stale. Otherwise the
// record is inserted at its height position near the front and the oldest
// entry is evicted once the window exceeds capacity.
func (b *Buffer) ApplyIncrement(rec model.BlockRecord) ApplyResult {
	if _, dup := b.hashes[rec.Hash]; dup {
		return RejectedDuplicate
	}
	if len(b.records) > 0 {
		tip := b.records[0].Height
		if tip > rec.Height && tip-rec.Height > b.heightTolerance {
			return RejectedStale
		}
	}

	// Bounded out-of-order delivery: insert at the height-sorted position.
	// Existing records are never moved relative to each other.
	pos := 0
	for pos < len(b.records) && b.records[pos].Height > rec.Height {
		pos++
	}
	b.records = append(b.records, model.BlockRecord{})
	copy(b.records[pos+1:], b.records[pos:])
	b.records[pos] = rec
	b.hashes[rec.Hash] = struct{}{}

	if len(b.records) > b.capacity {
		evicted := b.records[len(b.records)-1]
		delete(b.hashes, evicted.Hash)
		b.records = b.records[:len(b.records)-1]
	}
	return Accepted
}

// View returns a copy of the window filtered to records at or after
// now-horizon. A non-positive horizon returns the full window. Mutating the
// returned slice never affects the buffer.
func (b *Buffer) View(horizon time.Duration, now time.Time) []model.BlockRecord {
	if horizon <= 0 {
		out := make([]model.BlockRecord, len(b.records))
		copy(out, b.records)
		return out
	}
	cutoff := now.Add(-horizon)
	out := make([]model.BlockRecord, 0, len(b.records))
	for _, rec := range b.records {
		if !rec.Timestamp.Before(cutoff) {
			out = append(out, rec)
		}
	}
	return out
}
