// Package reports holds the pure derived-view builders: they fold collection
// snapshots into display-ready aggregates and never mutate their inputs.
package reports

import (
	"sort"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
)

// CriticalThreshold is the stock level at or below which an item or lot is
// considered critical.
const CriticalThreshold = 10

// ProfitEntry is the computed margin for a harvest that has both prices.
type ProfitEntry struct {
	ID               string  `json:"id"`
	Crop             string  `json:"crop"`
	Margin           float64 `json:"margin"`
	PurchasePriceClp int     `json:"purchasePriceClp"`
	SalePriceClp     int     `json:"salePriceClp"`
}

// EconomicStats aggregates profit margins across harvests.
type EconomicStats struct {
	AverageMargin float64       `json:"averageMargin"`
	Entries       []ProfitEntry `json:"entries"`
}

// profitEntries computes margins for every harvest carrying both prices with a
// positive purchase price, sorted by margin descending. Harvests missing either
// price are excluded entirely, they do not weigh in as zero.
func profitEntries(harvests []models.Harvest) []ProfitEntry {
	entries := make([]ProfitEntry, 0, len(harvests))
	for _, harvest := range harvests {
		if harvest.PurchasePriceClp == nil || harvest.SalePriceClp == nil || *harvest.PurchasePriceClp <= 0 {
			continue
		}
		purchase := *harvest.PurchasePriceClp
		sale := *harvest.SalePriceClp
		entries = append(entries, ProfitEntry{
			ID:               harvest.ID,
			Crop:             harvest.Crop,
			Margin:           float64(sale-purchase) / float64(purchase) * 100,
			PurchasePriceClp: purchase,
			SalePriceClp:     sale,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Margin > entries[j].Margin
	})
	return entries
}

func economicStats(harvests []models.Harvest, limit int) EconomicStats {
	entries := profitEntries(harvests)

	var average float64
	if len(entries) > 0 {
		var sum float64
		for _, entry := range entries {
			sum += entry.Margin
		}
		average = sum / float64(len(entries))
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return EconomicStats{AverageMargin: average, Entries: entries}
}
