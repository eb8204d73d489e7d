package reports

import (
	"sort"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
)

// CategoryTotal is the summed quantity for a category key.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
}

// DashboardSummary is the aggregate view shown on the dashboard screen.
type DashboardSummary struct {
	TotalHarvests        int                    `json:"totalHarvests"`
	TotalHarvestQuantity int                    `json:"totalHarvestQuantity"`
	InventoryCount       int                    `json:"inventoryCount"`
	HealthyInventory     int                    `json:"healthyInventory"`
	CriticalItems        []models.InventoryItem `json:"criticalItems"`
	RecentHarvests       []models.Harvest       `json:"recentHarvests"`
	StockByCategory      []CategoryTotal        `json:"stockByCategory"`
	MaxCategoryTotal     int                    `json:"maxCategoryTotal"`
	TopInventoryItems    []models.InventoryItem `json:"topInventoryItems"`
	EconomicStats        EconomicStats          `json:"economicStats"`
}

// BuildDashboardSummary folds the harvest and inventory snapshots into the
// dashboard aggregates.
func BuildDashboardSummary(harvests []models.Harvest, inventory []models.InventoryItem) DashboardSummary {
	criticalItems := make([]models.InventoryItem, 0)
	healthy := 0
	for _, item := range inventory {
		if item.Quantity <= CriticalThreshold {
			criticalItems = append(criticalItems, item)
		} else {
			healthy++
		}
	}
	sort.SliceStable(criticalItems, func(i, j int) bool {
		return criticalItems[i].Quantity < criticalItems[j].Quantity
	})

	recent := harvests
	if len(recent) > 3 {
		recent = recent[:3]
	}
	recentHarvests := make([]models.Harvest, len(recent))
	copy(recentHarvests, recent)

	totalHarvestQuantity := 0
	for _, harvest := range harvests {
		totalHarvestQuantity += harvest.Quantity
	}

	stockByCategory := categoryTotalsSorted(inventory)
	maxCategoryTotal := 0
	for _, stat := range stockByCategory {
		if stat.Total > maxCategoryTotal {
			maxCategoryTotal = stat.Total
		}
	}

	topItems := make([]models.InventoryItem, len(inventory))
	copy(topItems, inventory)
	sort.SliceStable(topItems, func(i, j int) bool {
		return topItems[i].Quantity > topItems[j].Quantity
	})
	if len(topItems) > 5 {
		topItems = topItems[:5]
	}

	return DashboardSummary{
		TotalHarvests:        len(harvests),
		TotalHarvestQuantity: totalHarvestQuantity,
		InventoryCount:       len(inventory),
		HealthyInventory:     healthy,
		CriticalItems:        criticalItems,
		RecentHarvests:       recentHarvests,
		StockByCategory:      stockByCategory,
		MaxCategoryTotal:     maxCategoryTotal,
		TopInventoryItems:    topItems,
		EconomicStats:        economicStats(harvests, 5),
	}
}

// categoryTotalsSorted sums inventory quantities per category and orders the
// result by total descending.
func categoryTotalsSorted(inventory []models.InventoryItem) []CategoryTotal {
	totals := make(map[string]int)
	order := make([]string, 0)
	for _, item := range inventory {
		key := string(item.Category)
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += item.Quantity
	}

	stats := make([]CategoryTotal, 0, len(order))
	for _, key := range order {
		stats = append(stats, CategoryTotal{Category: key, Total: totals[key]})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Total > stats[j].Total
	})
	return stats
}
