package services

import (
	"context"
	"time"

	"fleetdash-backend/models"
)

// DashboardServiceInterface defines the contract for the dashboard
// view-model service
type DashboardServiceInterface interface {
	GetMaintenanceList(ctx context.Context, filter models.MaintenanceFilter) (*models.MaintenanceListView, error)
	GetOverdue(ctx context.Context) ([]models.MaintenanceItemView, error)
	GetUpcoming(ctx context.Context) ([]models.MaintenanceItemView, error)
	GetCalendar(ctx context.Context, year int, month time.Month) ([]models.DaySchedule, error)
	GetCostAnalytics(ctx context.Context) (*models.CostAnalyticsView, error)
	GetSchedules(ctx context.Context) (*models.ScheduleListView, error)
	GetParts(ctx context.Context) ([]models.PartView, error)
	GetTechnicians(ctx context.Context) ([]models.Technician, error)
	GetVehicles(ctx context.Context) ([]models.Vehicle, error)
	BuildSummary(ctx context.Context) (*models.DashboardSummary, error)
}
