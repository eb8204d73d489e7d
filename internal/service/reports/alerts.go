package reports

import (
	"sort"
	"time"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
)

// StockAlert is one row of the stock-alerts screen, covering both inventory
// items and harvest lots.
type StockAlert struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Quantity int        `json:"quantity"`
	Category string     `json:"category"`
	Source   string     `json:"source"`
	Date     *time.Time `json:"date,omitempty"`
	Critical bool       `json:"critical"`
}

// StockAlerts is the stock-alerts view: all rows ordered by quantity ascending
// (ties keep original order, inventory before harvests) plus the critical count.
type StockAlerts struct {
	Ordered       []StockAlert `json:"ordered"`
	CriticalCount int          `json:"criticalCount"`
}

// BuildStockAlerts merges inventory and harvests into the alert list.
func BuildStockAlerts(inventory []models.InventoryItem, harvests []models.Harvest) StockAlerts {
	alerts := make([]StockAlert, 0, len(inventory)+len(harvests))

	for _, item := range inventory {
		alerts = append(alerts, StockAlert{
			ID:       "inventory-" + item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Category: "Inventario · " + string(item.Category),
			Source:   "inventario",
			Critical: item.Quantity <= CriticalThreshold,
		})
	}

	for _, harvest := range harvests {
		date := harvest.Date
		alerts = append(alerts, StockAlert{
			ID:       "harvest-" + harvest.ID,
			Name:     harvest.Crop,
			Quantity: harvest.Quantity,
			Category: "Cosecha · " + string(harvest.Category),
			Source:   "cosecha",
			Date:     &date,
			Critical: harvest.Quantity <= CriticalThreshold,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Quantity < alerts[j].Quantity
	})

	critical := 0
	for _, alert := range alerts {
		if alert.Critical {
			critical++
		}
	}
	return StockAlerts{Ordered: alerts, CriticalCount: critical}
}
