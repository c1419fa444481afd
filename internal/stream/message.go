// Package stream owns the live block subscription: the websocket transport,
// the wire codec, and the reconnect and fallback policies.
package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/algowatch-backend/internal/model"
	"github.com/goodnatureofminers/algowatch-backend/pkg/safe"
)

// Kind tags a decoded inbound message.
type Kind string

const (
	// KindSnapshot is a full window replacement.
	KindSnapshot Kind = "recentBlocks"
	// KindIncrement is a single new block.
	KindIncrement Kind = "newBlock"
	// KindUnknown is any other message type; it is ignored, not an error.
	KindUnknown Kind = "unknown"
)

// Message is a parsed inbound stream message.
type Message struct {
	Kind   Kind
	Blocks []model.BlockRecord // set for KindSnapshot
	Block  model.BlockRecord   // set for KindIncrement
}

type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// wireBlock mirrors the feed's block payload. Pointer fields distinguish
// absent from zero. The timestamp and miner-address field names vary across
// node versions, so both spellings are accepted.
type wireBlock struct {
	Height           *int64   `json:"height"`
	Hash             string   `json:"hash"`
	Time             *int64   `json:"time"`
	Timestamp        *int64   `json:"timestamp"`
	Algo             string   `json:"algo"`
	Difficulty       *float64 `json:"difficulty"`
	Miner            string   `json:"miner"`
	MinerAddress     string   `json:"minerAddress"`
	PoolIdentifier   string   `json:"poolIdentifier"`
	TaprootSignaling bool     `json:"taprootSignaling"`
	TxCount          int64    `json:"txCount"`
}

// Decode parses one raw inbound message into a tagged Message. Unrecognized
// message types yield KindUnknown with no error; malformed payloads of known
// types yield an error and must be dropped by the caller.
func Decode(data []byte) (Message, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Message{}, fmt.Errorf("unmarshal envelope: %w", err)
	}

	switch env.Type {
	case string(KindSnapshot):
		var raw []wireBlock
		if err := json.Unmarshal(env.Data, &raw); err != nil {
			return Message{}, fmt.Errorf("unmarshal snapshot data: %w", err)
		}
		blocks := make([]model.BlockRecord, 0, len(raw))
		for i, wb := range raw {
			rec, err := wb.toRecord()
			if err != nil {
				return Message{}, fmt.Errorf("snapshot block %d: %w", i, err)
			}
			blocks = append(blocks, rec)
		}
		return Message{Kind: KindSnapshot, Blocks: blocks}, nil

	case string(KindIncrement):
		var wb wireBlock
		if err := json.Unmarshal(env.Data, &wb); err != nil {
			return Message{}, fmt.Errorf("unmarshal block data: %w", err)
		}
		rec, err := wb.toRecord()
		if err != nil {
			return Message{}, err
		}
		return Message{Kind: KindIncrement, Block: rec}, nil

	default:
		return Message{Kind: KindUnknown}, nil
	}
}

func (wb wireBlock) toRecord() (model.BlockRecord, error) {
	if wb.Height == nil {
		return model.BlockRecord{}, errors.New("missing height")
	}
	height, err := safe.Uint64(*wb.Height)
	if err != nil {
		return model.BlockRecord{}, fmt.Errorf("invalid height: %w", err)
	}
	if wb.Hash == "" {
		return model.BlockRecord{}, errors.New("missing hash")
	}

	var epoch int64
	switch {
	case wb.Time != nil:
		epoch = *wb.Time
	case wb.Timestamp != nil:
		epoch = *wb.Timestamp
	default:
		return model.BlockRecord{}, errors.New("missing timestamp")
	}

	algo, ok := model.ParseAlgorithm(wb.Algo)
	if !ok {
		return model.BlockRecord{}, fmt.Errorf("unknown algorithm %q", wb.Algo)
	}

	if wb.Difficulty == nil {
		return model.BlockRecord{}, errors.New("missing difficulty")
	}
	if *wb.Difficulty < 0 {
		return model.BlockRecord{}, fmt.Errorf("negative difficulty %f", *wb.Difficulty)
	}

	txCount, err := safe.Uint32(wb.TxCount)
	if err != nil {
		return model.BlockRecord{}, fmt.Errorf("invalid txCount: %w", err)
	}

	miner := wb.MinerAddress
	if miner == "" {
		miner = wb.Miner
	}

	return model.BlockRecord{
		Height:           height,
		Hash:             wb.Hash,
		Timestamp:        time.Unix(epoch, 0).UTC(),
		Algorithm:        algo,
		Difficulty:       *wb.Difficulty,
		MinerAddress:     miner,
		PoolIdentifier:   wb.PoolIdentifier,
		TaprootSignaling: wb.TaprootSignaling,
		TxCount:          txCount,
	}, nil
}
