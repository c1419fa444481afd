package transport

import (
	"time"

	"github.com/goodnatureofminers/algowatch-backend/internal/model"
	"github.com/goodnatureofminers/algowatch-backend/internal/stats"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Engine is the read side of the aggregation engine the API serves from.
type Engine interface {
	Status() model.ConnectionStatus
	UsingFallback() bool
	Stats() map[model.Algorithm]stats.AlgorithmStats
	Distribution() stats.DistributionSnapshot
	WindowView() []model.BlockRecord
}

type statusResponse struct {
	Status        model.ConnectionStatus `json:"status"`
	UsingFallback bool                   `json:"usingFallback"`
}

type algorithmStatsResponse struct {
	BlockCount       int      `json:"blockCount"`
	HashrateEstimate *float64 `json:"hashrateEstimate"`
	AvgDifficulty    *float64 `json:"avgDifficulty"`
	AvgBlockInterval *float64 `json:"avgBlockInterval"`
}

type statsResponse struct {
	Algorithms map[model.Algorithm]algorithmStatsResponse `json:"algorithms"`
}

type algorithmShareResponse struct {
	Algorithm  model.Algorithm `json:"algorithm"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

type multiBlockMinerResponse struct {
	Rank      int    `json:"rank"`
	Address   string `json:"address"`
	Count     int    `json:"count"`
	PoolLabel string `json:"poolLabel,omitempty"`
}

type singleBlockMinerResponse struct {
	Rank      int    `json:"rank"`
	Address   string `json:"address"`
	Height    uint64 `json:"height"`
	PoolLabel string `json:"poolLabel,omitempty"`
}

type consolidatedShareResponse struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type distributionResponse struct {
	TotalBlocks       int                         `json:"totalBlocks"`
	ByAlgorithm       []algorithmShareResponse    `json:"byAlgorithm"`
	Consolidated      []consolidatedShareResponse `json:"consolidated,omitempty"`
	MultiBlockMiners  []multiBlockMinerResponse   `json:"multiBlockMiners"`
	SingleBlockMiners []singleBlockMinerResponse  `json:"singleBlockMiners"`
}

type blockResponse struct {
	Height           uint64          `json:"height"`
	Hash             string          `json:"hash"`
	Timestamp        time.Time       `json:"timestamp"`
	Algorithm        model.Algorithm `json:"algorithm"`
	Difficulty       float64         `json:"difficulty"`
	MinerAddress     string          `json:"minerAddress,omitempty"`
	PoolIdentifier   string          `json:"poolIdentifier,omitempty"`
	TaprootSignaling bool            `json:"taprootSignaling"`
	TxCount          uint32          `json:"txCount"`
}

type blocksResponse struct {
	Blocks []blockResponse `json:"blocks"`
}

type errorResponse struct {
	Error string `json:"error"`
}
