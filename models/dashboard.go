package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusBadge is the render hint for a maintenance status
type StatusBadge struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// MaintenanceItemView is a maintenance item annotated with the derived
// display fields the dashboard renders alongside it
type MaintenanceItemView struct {
	MaintenanceItem
	Badge           StatusBadge `json:"badge"`
	MileageProgress float64     `json:"mileage_progress"` // 0..100
}

// MaintenanceListView is a page of annotated maintenance items
type MaintenanceListView struct {
	Items      []MaintenanceItemView `json:"items"`
	Pagination Pagination            `json:"pagination"`
}

// DaySchedule is one cell of the 6x7 month calendar grid
type DaySchedule struct {
	Date           time.Time         `json:"date"`
	Items          []MaintenanceItem `json:"items"`
	IsToday        bool              `json:"is_today"`
	IsCurrentMonth bool              `json:"is_current_month"`
}

// VehicleCost is the per-vehicle cost rollup
type VehicleCost struct {
	Estimated decimal.Decimal `json:"estimated"`
	Actual    decimal.Decimal `json:"actual"`
	Variance  decimal.Decimal `json:"variance"`
}

// TypeCost is the per-maintenance-type cost rollup
type TypeCost struct {
	Estimated decimal.Decimal `json:"estimated"`
	Actual    decimal.Decimal `json:"actual"`
	Count     int             `json:"count"`
}

// RankedTypeCost is a TypeCost entry in display order, carrying its key and
// the derived average-per-item estimate
type RankedTypeCost struct {
	Type             string          `json:"type"`
	Estimated        decimal.Decimal `json:"estimated"`
	Actual           decimal.Decimal `json:"actual"`
	Count            int             `json:"count"`
	AverageEstimated decimal.Decimal `json:"average_estimated"`
}

// CostSummary is the cost-analytics rollup across a set of maintenance items.
// Variance is actual minus estimated; positive means over budget.
type CostSummary struct {
	TotalEstimated  decimal.Decimal        `json:"total_estimated"`
	TotalActual     decimal.Decimal        `json:"total_actual"`
	Variance        decimal.Decimal        `json:"variance"`
	VariancePercent decimal.Decimal        `json:"variance_percent"`
	ByVehicle       map[string]VehicleCost `json:"by_vehicle"`
	ByType          map[string]TypeCost    `json:"by_type"`
	CompletedCount  int                    `json:"completed_count"`
	PendingCount    int                    `json:"pending_count"`
}

// CostAnalyticsView is the cost summary plus its display-ordered type
// breakdown
type CostAnalyticsView struct {
	CostSummary
	RankedTypes []RankedTypeCost `json:"ranked_types"`
}

// PartView is an inventory part annotated with its derived low-stock flag
type PartView struct {
	Part
	LowStock bool `json:"low_stock"`
}

// ScheduleView decorates a recurring schedule with its derived display fields.
// NextOccurrence is nil when it cannot be projected from calendar time
// (mileage-based cadences; the owning service must supply it instead).
type ScheduleView struct {
	RecurringSchedule
	CadenceLabel   string     `json:"cadence_label"`
	NextOccurrence *time.Time `json:"next_occurrence,omitempty"`
}

// ScheduleListView is the schedules payload plus the fleet-wide monthly cost
// estimate tile
type ScheduleListView struct {
	Schedules           []ScheduleView  `json:"schedules"`
	MonthlyCostEstimate decimal.Decimal `json:"monthly_cost_estimate"`
}

// DashboardSummary is the worker-refreshed snapshot served by the summary tile
type DashboardSummary struct {
	Costs               CostSummary     `json:"costs"`
	OverdueCount        int             `json:"overdue_count"`
	UpcomingCount       int             `json:"upcoming_count"`
	ActiveScheduleCount int             `json:"active_schedule_count"`
	MonthlyCostEstimate decimal.Decimal `json:"monthly_cost_estimate"`
	RefreshedAt         time.Time       `json:"refreshed_at"`
}
