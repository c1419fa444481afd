// Package model defines domain models for the block statistics engine.
package model

import (
	"strings"
	"time"
)

// Algorithm identifies one of the chain's five proof-of-work functions.
type Algorithm string

const (
	AlgoSHA256D Algorithm = "sha256d"
	AlgoScrypt  Algorithm = "scrypt"
	AlgoSkein   Algorithm = "skein"
	AlgoQubit   Algorithm = "qubit"
	AlgoOdo     Algorithm = "odo"
)

// Algorithms returns all supported algorithms in canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoSHA256D, AlgoScrypt, AlgoSkein, AlgoQubit, AlgoOdo}
}

// ParseAlgorithm maps a wire-level algorithm label to its canonical value.
// Labels are matched case-insensitively; "odocrypt" is accepted as an alias
// used by older node versions.
func ParseAlgorithm(s string) (Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sha256d":
		return AlgoSHA256D, true
	case "scrypt":
		return AlgoScrypt, true
	case "skein":
		return AlgoSkein, true
	case "qubit":
		return AlgoQubit, true
	case "odo", "odocrypt":
		return AlgoOdo, true
	default:
		return "", false
	}
}

// BlockRecord is a single observed block. Records are immutable once created.
// MinerAddress and PoolIdentifier are optional; absent values are empty strings.
type BlockRecord struct {
	Height           uint64
	Hash             string
	Timestamp        time.Time
	Algorithm        Algorithm
	Difficulty       float64
	MinerAddress     string
	PoolIdentifier   string
	TaprootSignaling bool
	TxCount          uint32
}

// HasMiner reports whether the record carries miner attribution.
func (r BlockRecord) HasMiner() bool {
	return r.MinerAddress != ""
}

// ConnectionStatus is the consumer-visible state of the live subscription.
type ConnectionStatus string

const (
	// StatusConnected means live data is flowing.
	StatusConnected ConnectionStatus = "connected"
	// StatusReconnecting means the subscription is down and previously
	// computed aggregates are stale but still visible.
	StatusReconnecting ConnectionStatus = "reconnecting"
	// StatusUsingFallback means the window holds synthetic placeholder data.
	StatusUsingFallback ConnectionStatus = "usingFallback"
)
