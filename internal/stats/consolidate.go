package stats

import (
	"sort"

	"github.com/goodnatureofminers/algowatch-backend/internal/model"
)

// OtherLabel names the consolidated bucket produced by ConsolidateShares.
const OtherLabel = "Other"

// ConsolidatedShare is a presentation-ready slice of the algorithm pie.
type ConsolidatedShare struct {
	Label      string
	Count      int
	Percentage float64
}

// ConsolidateShares folds algorithm shares below thresholdPercent into a
// single "Other" bucket. Shares at or above the threshold are returned sorted
// by descending count, label ascending on ties, with the "Other" bucket last.
// Every record is counted exactly once.
func ConsolidateShares(snap DistributionSnapshot, thresholdPercent float64) []ConsolidatedShare {
	var kept []ConsolidatedShare
	other := ConsolidatedShare{Label: OtherLabel}

	for _, algo := range model.Algorithms() {
		share, ok := snap.ByAlgorithm[algo]
		if !ok || share.Count == 0 {
			continue
		}
		if share.Percentage < thresholdPercent {
			other.Count += share.Count
			other.Percentage += share.Percentage
			continue
		}
		kept = append(kept, ConsolidatedShare{
			Label:      string(algo),
			Count:      share.Count,
			Percentage: share.Percentage,
		})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Count != kept[j].Count {
			return kept[i].Count > kept[j].Count
		}
		return kept[i].Label < kept[j].Label
	})
	if other.Count > 0 {
		kept = append(kept, other)
	}
	return kept
}
