package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaintenanceStatus represents the lifecycle state of a maintenance item.
// The upstream maintenance service owns status; this layer renders it and
// never re-derives it from dates.
type MaintenanceStatus string

const (
	MaintenanceStatusScheduled  MaintenanceStatus = "scheduled"
	MaintenanceStatusDueSoon    MaintenanceStatus = "due_soon"
	MaintenanceStatusOverdue    MaintenanceStatus = "overdue"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "completed"
	MaintenanceStatusCancelled  MaintenanceStatus = "cancelled"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusScheduled, MaintenanceStatusDueSoon, MaintenanceStatusOverdue,
		MaintenanceStatusInProgress, MaintenanceStatusCompleted, MaintenanceStatusCancelled:
		return true
	}
	return false
}

// MaintenancePriority represents the urgency of a maintenance item
type MaintenancePriority string

const (
	MaintenancePriorityLow    MaintenancePriority = "low"
	MaintenancePriorityMedium MaintenancePriority = "medium"
	MaintenancePriorityHigh   MaintenancePriority = "high"
)

// Valid reports whether the priority is one of the known urgency levels.
func (p MaintenancePriority) Valid() bool {
	switch p {
	case MaintenancePriorityLow, MaintenancePriorityMedium, MaintenancePriorityHigh:
		return true
	}
	return false
}

// MaintenanceItem is a maintenance record as served by the maintenance
// microservice. ActualCost stays zero until the item is completed.
type MaintenanceItem struct {
	ID             string              `json:"id"`
	VehicleID      string              `json:"vehicle_id"`
	Type           string              `json:"type"` // free-text category, e.g. "Oil Change"
	Description    string              `json:"description,omitempty"`
	Status         MaintenanceStatus   `json:"status"`
	Priority       MaintenancePriority `json:"priority"`
	DueDate        time.Time           `json:"due_date"`
	CurrentMileage int                 `json:"current_mileage"`
	DueMileage     int                 `json:"due_mileage"`
	EstimatedCost  decimal.Decimal     `json:"estimated_cost"`
	ActualCost     decimal.Decimal     `json:"actual_cost"`
	AssignedTo     string              `json:"assigned_to,omitempty"`
	CreatedAt      time.Time           `json:"created_at,omitempty"`
	UpdatedAt      time.Time           `json:"updated_at,omitempty"`
}

// MaintenanceListResponse is the paginated list payload returned by the
// maintenance service
type MaintenanceListResponse struct {
	Items   []MaintenanceItem `json:"items"`
	Total   int               `json:"total"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
}

// MaintenanceFilter narrows a maintenance list request
type MaintenanceFilter struct {
	Page     int
	PerPage  int
	Status   MaintenanceStatus
	Priority MaintenancePriority
}
