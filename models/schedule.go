package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency represents how often a recurring schedule fires. MileageBased
// intervals are distances in kilometers, not time units.
type Frequency string

const (
	FrequencyDaily        Frequency = "daily"
	FrequencyWeekly       Frequency = "weekly"
	FrequencyMonthly      Frequency = "monthly"
	FrequencyQuarterly    Frequency = "quarterly"
	FrequencyYearly       Frequency = "yearly"
	FrequencyMileageBased Frequency = "mileage-based"
)

// Valid reports whether the frequency is a known cadence.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly,
		FrequencyQuarterly, FrequencyYearly, FrequencyMileageBased:
		return true
	}
	return false
}

// RecurringSchedule is a recurring maintenance plan as served by the
// maintenance microservice. TotalExecutions is incremented upstream.
type RecurringSchedule struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	VehicleID       string          `json:"vehicle_id"`
	MaintenanceType string          `json:"maintenance_type"`
	Description     string          `json:"description,omitempty"`
	Frequency       Frequency       `json:"frequency"`
	FrequencyValue  int             `json:"frequency_value"` // interval count, or km when mileage-based
	EstimatedCost   decimal.Decimal `json:"estimated_cost"`
	IsActive        bool            `json:"is_active"`
	LastExecuted    *time.Time      `json:"last_executed,omitempty"`
	NextScheduled   *time.Time      `json:"next_scheduled,omitempty"`
	TotalExecutions int             `json:"total_executions"`
}
