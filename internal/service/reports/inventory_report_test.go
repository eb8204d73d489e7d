package reports

import (
	"testing"
	"time"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
)

func TestBuildInventoryReportAggregates(t *testing.T) {
	inventory := []models.InventoryItem{
		{ID: "i1", Name: "Semillas", Quantity: 25, Category: models.CategoryPlanta},
		{ID: "i2", Name: "Guantes", Quantity: 6, Category: models.CategoryHerramienta},
		{ID: "i3", Name: "Mangueras", Quantity: 14, Category: models.CategoryHerramienta},
	}
	harvests := []models.Harvest{
		{ID: "h1", Crop: "Café", Quantity: 13, Category: models.CategoryPrimera, Date: time.Now()},
		{ID: "h2", Crop: "Cacao", Quantity: 8, Category: models.CategorySegunda, Date: time.Now().Add(-time.Hour)},
	}

	report := BuildInventoryReport(inventory, harvests)

	if report.InventoryStock != 45 || report.HarvestStock != 21 || report.TotalStock != 66 {
		t.Errorf("stock totals = %d/%d/%d, want 45/21/66",
			report.InventoryStock, report.HarvestStock, report.TotalStock)
	}
	if report.HealthyCount != 2 {
		t.Errorf("HealthyCount = %d, want 2", report.HealthyCount)
	}
	if len(report.CriticalItems) != 1 || report.CriticalItems[0].ID != "i2" {
		t.Errorf("CriticalItems = %+v, want only Guantes", report.CriticalItems)
	}
	if report.CategoryTotals["herramienta"] != 20 {
		t.Errorf("herramienta total = %d, want 20", report.CategoryTotals["herramienta"])
	}
	if report.HighestStock == nil || report.HighestStock.ID != "i1" {
		t.Errorf("HighestStock = %+v, want Semillas", report.HighestStock)
	}
	if report.LowestStock == nil || report.LowestStock.ID != "i2" {
		t.Errorf("LowestStock = %+v, want Guantes", report.LowestStock)
	}

	// Combined stock spread over the inventory items: 66 / 3.
	if report.AverageStock != 22 {
		t.Errorf("AverageStock = %f, want 22", report.AverageStock)
	}

	summary := report.HarvestSummary
	if summary.TotalHarvests != 2 || summary.TotalQuantity != 21 {
		t.Errorf("harvest summary = %+v", summary)
	}
	if summary.AverageQuantity != 10.5 {
		t.Errorf("AverageQuantity = %f, want 10.5", summary.AverageQuantity)
	}
	if summary.ByCategory["primera"] != 13 || summary.ByCategory["segunda"] != 8 {
		t.Errorf("ByCategory = %+v", summary.ByCategory)
	}
	if len(summary.RecentHarvests) != 2 || summary.RecentHarvests[0].ID != "h1" {
		t.Errorf("RecentHarvests = %+v, want newest first", summary.RecentHarvests)
	}
}

func TestBuildInventoryReportEmptyCollections(t *testing.T) {
	report := BuildInventoryReport(nil, nil)

	if report.TotalStock != 0 || report.AverageStock != 0 {
		t.Errorf("empty report totals = %+v", report)
	}
	if report.HighestStock != nil || report.LowestStock != nil {
		t.Error("extremes must be absent for an empty inventory")
	}
	if len(report.CriticalItems) != 0 {
		t.Errorf("CriticalItems = %+v, want empty", report.CriticalItems)
	}
}

func TestRecentHarvestsCappedAtFive(t *testing.T) {
	now := time.Now()
	harvests := make([]models.Harvest, 7)
	for i := range harvests {
		harvests[i] = models.Harvest{
			ID:   string(rune('a' + i)),
			Date: now.Add(-time.Duration(i) * time.Hour),
		}
	}

	report := BuildInventoryReport(nil, harvests)

	recent := report.HarvestSummary.RecentHarvests
	if len(recent) != 5 {
		t.Fatalf("len(RecentHarvests) = %d, want 5", len(recent))
	}
	if recent[0].ID != "a" || recent[4].ID != "e" {
		t.Errorf("recent window = %s..%s, want a..e", recent[0].ID, recent[4].ID)
	}
}
