package services

import (
	"sort"

	"fleetdash-backend/models"

	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// AggregateCosts rolls up estimated and actual cost across a set of
// maintenance items. Variance is actual minus estimated (positive = over
// budget); variance percent is 0 when nothing was estimated, never a
// division error. Items missing an actual cost contribute 0 to the actual
// totals.
func AggregateCosts(items []models.MaintenanceItem) models.CostSummary {
	summary := models.CostSummary{
		ByVehicle: make(map[string]models.VehicleCost),
		ByType:    make(map[string]models.TypeCost),
	}

	for _, item := range items {
		summary.TotalEstimated = summary.TotalEstimated.Add(item.EstimatedCost)
		summary.TotalActual = summary.TotalActual.Add(item.ActualCost)

		vc := summary.ByVehicle[item.VehicleID]
		vc.Estimated = vc.Estimated.Add(item.EstimatedCost)
		vc.Actual = vc.Actual.Add(item.ActualCost)
		vc.Variance = vc.Actual.Sub(vc.Estimated)
		summary.ByVehicle[item.VehicleID] = vc

		tc := summary.ByType[item.Type]
		tc.Estimated = tc.Estimated.Add(item.EstimatedCost)
		tc.Actual = tc.Actual.Add(item.ActualCost)
		tc.Count++
		summary.ByType[item.Type] = tc

		if item.Status == models.MaintenanceStatusCompleted {
			summary.CompletedCount++
		} else {
			summary.PendingCount++
		}
	}

	summary.Variance = summary.TotalActual.Sub(summary.TotalEstimated)
	if summary.TotalEstimated.IsPositive() {
		summary.VariancePercent = summary.Variance.Div(summary.TotalEstimated).Mul(decimalHundred)
	} else {
		summary.VariancePercent = decimal.Zero
	}

	return summary
}

// RankedTypes returns the by-type rollup in display order: descending by
// estimated cost, type name as tiebreak. The average-per-item estimate is
// derived here, not stored.
func RankedTypes(summary models.CostSummary) []models.RankedTypeCost {
	ranked := make([]models.RankedTypeCost, 0, len(summary.ByType))
	for name, tc := range summary.ByType {
		entry := models.RankedTypeCost{
			Type:      name,
			Estimated: tc.Estimated,
			Actual:    tc.Actual,
			Count:     tc.Count,
		}
		if tc.Count > 0 {
			entry.AverageEstimated = tc.Estimated.Div(decimal.NewFromInt(int64(tc.Count)))
		}
		ranked = append(ranked, entry)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Estimated.Equal(ranked[j].Estimated) {
			return ranked[i].Estimated.GreaterThan(ranked[j].Estimated)
		}
		return ranked[i].Type < ranked[j].Type
	})

	return ranked
}
