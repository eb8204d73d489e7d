package reports

import (
	"math"
	"testing"
	"time"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
)

func TestBuildLossReportFiltersAndOrders(t *testing.T) {
	losses := []models.Loss{
		{ID: "a", ProductName: "Semillas", Quantity: 5, RecordedBy: models.RoleSocio, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "b", ProductName: "Guantes", Quantity: 3, RecordedBy: models.RolePresidente, Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "c", ProductName: "Semillas", Quantity: 2, RecordedBy: models.RoleSocio, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	report := BuildLossReport(losses, models.RoleSocio)

	if len(report.Losses) != 2 {
		t.Fatalf("len(filtered) = %d, want 2", len(report.Losses))
	}
	if report.Losses[0].ID != "c" || report.Losses[1].ID != "a" {
		t.Error("filtered losses not in descending date order")
	}
	if report.TotalQuantity != 7 {
		t.Errorf("TotalQuantity = %d, want 7", report.TotalQuantity)
	}
}

func TestDistributionArcLayout(t *testing.T) {
	losses := []models.Loss{
		{ID: "a", ProductName: "Semillas", Quantity: 6},
		{ID: "b", ProductName: "Guantes", Quantity: 2},
	}

	report := BuildLossReport(losses, "")

	if len(report.Distribution) != 2 {
		t.Fatalf("len(Distribution) = %d, want 2", len(report.Distribution))
	}

	first := report.Distribution[0]
	second := report.Distribution[1]

	if first.Label != "Semillas" || second.Label != "Guantes" {
		t.Errorf("slices ordered %s, %s; want largest first", first.Label, second.Label)
	}
	if first.Percentage != 75.0 {
		t.Errorf("first.Percentage = %v, want 75.0", first.Percentage)
	}
	if second.Percentage != 25.0 {
		t.Errorf("second.Percentage = %v, want 25.0", second.Percentage)
	}
	if first.DashOffset != 0 {
		t.Errorf("first.DashOffset = %v, want 0", first.DashOffset)
	}

	wantOffset := -0.75 * ChartCircumference
	if math.Abs(second.DashOffset-wantOffset) > 1e-6 {
		t.Errorf("second.DashOffset = %v, want %v (cumulative)", second.DashOffset, wantOffset)
	}
	if first.Color == "" || second.Color == "" {
		t.Error("slices must carry palette colors")
	}
}

func TestDistributionEmptyWhenTotalZero(t *testing.T) {
	if got := BuildLossReport(nil, "").Distribution; len(got) != 0 {
		t.Errorf("distribution of no losses = %+v, want empty", got)
	}

	zeroed := []models.Loss{{ID: "a", ProductName: "Semillas", Quantity: 0}}
	if got := BuildLossReport(zeroed, "").Distribution; len(got) != 0 {
		t.Errorf("distribution of zero-quantity losses = %+v, want empty", got)
	}
}

func TestDistributionPercentageRounding(t *testing.T) {
	losses := []models.Loss{
		{ID: "a", ProductName: "A", Quantity: 1},
		{ID: "b", ProductName: "B", Quantity: 2},
	}

	report := BuildLossReport(losses, "")

	// 2/3 -> 66.7, 1/3 -> 33.3 (one decimal place)
	if report.Distribution[0].Percentage != 66.7 {
		t.Errorf("Percentage = %v, want 66.7", report.Distribution[0].Percentage)
	}
	if report.Distribution[1].Percentage != 33.3 {
		t.Errorf("Percentage = %v, want 33.3", report.Distribution[1].Percentage)
	}
}
