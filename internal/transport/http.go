// Package transport exposes the aggregated window over a read-only JSON API.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/algowatch-backend/internal/model"
	"github.com/goodnatureofminers/algowatch-backend/internal/stats"
)

const defaultBlocksLimit = 50

// Handler serves the v1 read API.
type Handler struct {
	logger *zap.Logger
	engine Engine
}

// NewHandler constructs the API handler.
func NewHandler(logger *zap.Logger, engine Engine) (*Handler, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if engine == nil {
		return nil, errors.New("engine is required")
	}
	return &Handler{logger: logger.Named("api"), engine: engine}, nil
}

// Router builds the route table. Callers mount it alongside /metrics.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/status", h.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/v1/stats", h.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/v1/distribution", h.handleDistribution).Methods(http.MethodGet)
	r.HandleFunc("/v1/blocks", h.handleBlocks).Methods(http.MethodGet)
	return r
}

func (h *Handler) handleStatus(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, statusResponse{
		Status:        h.engine.Status(),
		UsingFallback: h.engine.UsingFallback(),
	})
}

func (h *Handler) handleStats(w http.ResponseWriter, _ *http.Request) {
	computed := h.engine.Stats()
	resp := statsResponse{
		Algorithms: make(map[model.Algorithm]algorithmStatsResponse, len(computed)),
	}
	for algo, s := range computed {
		resp.Algorithms[algo] = algorithmStatsResponse{
			BlockCount:       s.BlockCount,
			HashrateEstimate: s.HashrateEstimate,
			AvgDifficulty:    s.AvgDifficulty,
			AvgBlockInterval: s.AvgBlockInterval,
		}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDistribution(w http.ResponseWriter, r *http.Request) {
	var threshold float64
	if raw := r.URL.Query().Get("consolidateBelow"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 || parsed > 100 {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "consolidateBelow must be a percentage between 0 and 100"})
			return
		}
		threshold = parsed
	}

	snap := h.engine.Distribution()

	resp := distributionResponse{
		TotalBlocks:       snap.TotalBlocks,
		ByAlgorithm:       make([]algorithmShareResponse, 0, len(snap.ByAlgorithm)),
		MultiBlockMiners:  make([]multiBlockMinerResponse, 0, len(snap.MultiBlockMiners)),
		SingleBlockMiners: make([]singleBlockMinerResponse, 0, len(snap.SingleBlockMiners)),
	}
	for _, algo := range model.Algorithms() {
		share := snap.ByAlgorithm[algo]
		resp.ByAlgorithm = append(resp.ByAlgorithm, algorithmShareResponse{
			Algorithm:  algo,
			Count:      share.Count,
			Percentage: share.Percentage,
		})
	}
	if threshold > 0 {
		for _, share := range stats.ConsolidateShares(snap, threshold) {
			resp.Consolidated = append(resp.Consolidated, consolidatedShareResponse{
				Label:      share.Label,
				Count:      share.Count,
				Percentage: share.Percentage,
			})
		}
	}
	for _, m := range snap.MultiBlockMiners {
		resp.MultiBlockMiners = append(resp.MultiBlockMiners, multiBlockMinerResponse{
			Rank:      m.Rank,
			Address:   m.Address,
			Count:     m.Count,
			PoolLabel: m.PoolLabel,
		})
	}
	for _, m := range snap.SingleBlockMiners {
		resp.SingleBlockMiners = append(resp.SingleBlockMiners, singleBlockMinerResponse{
			Rank:      m.Rank,
			Address:   m.Address,
			Height:    m.Height,
			PoolLabel: m.PoolLabel,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleBlocks(w http.ResponseWriter, r *http.Request) {
	limit := defaultBlocksLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	view := h.engine.WindowView()
	if len(view) > limit {
		view = view[:limit]
	}

	resp := blocksResponse{Blocks: make([]blockResponse, 0, len(view))}
	for _, rec := range view {
		resp.Blocks = append(resp.Blocks, blockResponse{
			Height:           rec.Height,
			Hash:             rec.Hash,
			Timestamp:        rec.Timestamp,
			Algorithm:        rec.Algorithm,
			Difficulty:       rec.Difficulty,
			MinerAddress:     rec.MinerAddress,
			PoolIdentifier:   rec.PoolIdentifier,
			TaprootSignaling: rec.TaprootSignaling,
			TxCount:          rec.TxCount,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}
