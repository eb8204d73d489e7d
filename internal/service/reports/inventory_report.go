package reports

import (
	"sort"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
)

// HarvestSummary aggregates the harvest collection for the reports screen.
type HarvestSummary struct {
	TotalHarvests   int              `json:"totalHarvests"`
	TotalQuantity   int              `json:"totalQuantity"`
	AverageQuantity float64          `json:"averageQuantity"`
	ByCategory      map[string]int   `json:"byCategory"`
	RecentHarvests  []models.Harvest `json:"recentHarvests"`
}

// InventoryReport is the full reports-screen aggregate over both collections.
type InventoryReport struct {
	TotalStock     int                    `json:"totalStock"`
	InventoryStock int                    `json:"inventoryStock"`
	HarvestStock   int                    `json:"harvestStock"`
	HealthyCount   int                    `json:"healthyCount"`
	CriticalItems  []models.InventoryItem `json:"criticalItems"`
	CategoryTotals map[string]int         `json:"categoryTotals"`
	HighestStock   *models.InventoryItem  `json:"highestStock,omitempty"`
	LowestStock    *models.InventoryItem  `json:"lowestStock,omitempty"`
	AverageStock   float64                `json:"averageStock"`
	HarvestSummary HarvestSummary         `json:"harvestSummary"`
	HarvestProfit  EconomicStats          `json:"harvestProfit"`
}

// BuildInventoryReport folds the inventory and harvest snapshots into the
// reports-screen aggregates.
func BuildInventoryReport(inventory []models.InventoryItem, harvests []models.Harvest) InventoryReport {
	inventoryStock := 0
	for _, item := range inventory {
		inventoryStock += item.Quantity
	}
	harvestStock := 0
	for _, harvest := range harvests {
		harvestStock += harvest.Quantity
	}

	healthy := 0
	criticalItems := make([]models.InventoryItem, 0)
	categoryTotals := make(map[string]int)
	for _, item := range inventory {
		if item.Quantity > CriticalThreshold {
			healthy++
		} else {
			criticalItems = append(criticalItems, item)
		}
		categoryTotals[string(item.Category)] += item.Quantity
	}
	sort.SliceStable(criticalItems, func(i, j int) bool {
		return criticalItems[i].Quantity < criticalItems[j].Quantity
	})

	var highest, lowest *models.InventoryItem
	for i := range inventory {
		item := inventory[i]
		if highest == nil || item.Quantity > highest.Quantity {
			copied := item
			highest = &copied
		}
		if lowest == nil || item.Quantity < lowest.Quantity {
			copied := item
			lowest = &copied
		}
	}

	averageStock := 0.0
	if len(inventory) > 0 {
		averageStock = float64(inventoryStock+harvestStock) / float64(len(inventory))
	}

	byCategory := make(map[string]int)
	for _, harvest := range harvests {
		byCategory[string(harvest.Category)] += harvest.Quantity
	}

	recent := make([]models.Harvest, len(harvests))
	copy(recent, harvests)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > 5 {
		recent = recent[:5]
	}

	averageQuantity := 0.0
	if len(harvests) > 0 {
		averageQuantity = float64(harvestStock) / float64(len(harvests))
	}

	return InventoryReport{
		TotalStock:     inventoryStock + harvestStock,
		InventoryStock: inventoryStock,
		HarvestStock:   harvestStock,
		HealthyCount:   healthy,
		CriticalItems:  criticalItems,
		CategoryTotals: categoryTotals,
		HighestStock:   highest,
		LowestStock:    lowest,
		AverageStock:   averageStock,
		HarvestSummary: HarvestSummary{
			TotalHarvests:   len(harvests),
			TotalQuantity:   harvestStock,
			AverageQuantity: averageQuantity,
			ByCategory:      byCategory,
			RecentHarvests:  recent,
		},
		HarvestProfit: economicStats(harvests, 6),
	}
}
