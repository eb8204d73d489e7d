package reports

import (
	"fmt"
	"math"
	"sort"

	"github.com/pedrocontreras2007/floricoop/internal/domain/models"
)

// Donut chart geometry shared with the losses screen.
const (
	ChartRadius        = 64.0
	ChartCircumference = 2 * math.Pi * ChartRadius
)

var chartPalette = []string{"#1b5e20", "#2e7d32", "#388e3c", "#43a047", "#66bb6a", "#81c784", "#a5d6a7"}

// DistributionSlice is one proportional arc of the loss donut chart.
type DistributionSlice struct {
	Label      string  `json:"label"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
	DashArray  string  `json:"dashArray"`
	DashOffset float64 `json:"dashOffset"`
}

// LossReport is the losses-screen view: the filtered losses ordered newest
// first, their total and the donut distribution by product.
type LossReport struct {
	Losses        []models.Loss       `json:"losses"`
	TotalQuantity int                 `json:"totalQuantity"`
	Distribution  []DistributionSlice `json:"distribution"`
}

// BuildLossReport filters losses by recording role (empty role means all),
// orders them by date descending and lays out the distribution chart.
func BuildLossReport(losses []models.Loss, filter models.UserRole) LossReport {
	filtered := make([]models.Loss, 0, len(losses))
	for _, loss := range losses {
		if filter == "" || loss.RecordedBy == filter {
			filtered = append(filtered, loss)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	total := 0
	for _, loss := range filtered {
		total += loss.Quantity
	}

	return LossReport{
		Losses:        filtered,
		TotalQuantity: total,
		Distribution:  buildDistribution(filtered, total),
	}
}

// buildDistribution groups losses by product, computes each group's share of
// the total and assigns proportional arc lengths with cumulative offsets.
// Zero-total groups are excluded; a zero total yields an empty distribution.
func buildDistribution(losses []models.Loss, totalQuantity int) []DistributionSlice {
	if totalQuantity == 0 {
		return []DistributionSlice{}
	}

	totals := make(map[string]int)
	order := make([]string, 0)
	for _, loss := range losses {
		if _, seen := totals[loss.ProductName]; !seen {
			order = append(order, loss.ProductName)
		}
		totals[loss.ProductName] += loss.Quantity
	}

	labels := make([]string, 0, len(order))
	for _, label := range order {
		if totals[label] > 0 {
			labels = append(labels, label)
		}
	}
	sort.SliceStable(labels, func(i, j int) bool {
		return totals[labels[i]] > totals[labels[j]]
	})

	slices := make([]DistributionSlice, 0, len(labels))
	offset := 0.0
	for i, label := range labels {
		ratio := float64(totals[label]) / float64(totalQuantity)
		length := ratio * ChartCircumference
		slices = append(slices, DistributionSlice{
			Label:      label,
			Total:      totals[label],
			Percentage: math.Round(ratio*1000) / 10,
			Color:      chartPalette[i%len(chartPalette)],
			DashArray:  fmt.Sprintf("%.3f %.3f", math.Max(length, 0), ChartCircumference),
			DashOffset: -offset,
		})
		offset += length
	}
	return slices
}
