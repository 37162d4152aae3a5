package repository

import (
	"context"

	"fleetdash-backend/models"
)

// MaintenanceRepositoryInterface defines the contract for the maintenance
// service client
type MaintenanceRepositoryInterface interface {
	ListMaintenance(ctx context.Context, filter models.MaintenanceFilter) (*models.MaintenanceListResponse, error)
	GetOverdue(ctx context.Context) ([]models.MaintenanceItem, error)
	GetUpcoming(ctx context.Context) ([]models.MaintenanceItem, error)
	ListRecurringSchedules(ctx context.Context) ([]models.RecurringSchedule, error)
	ListParts(ctx context.Context) ([]models.Part, error)
	ListTechnicians(ctx context.Context) ([]models.Technician, error)
}

// VehicleRepositoryInterface defines the contract for the vehicle service
// client
type VehicleRepositoryInterface interface {
	ListVehicles(ctx context.Context) ([]models.Vehicle, error)
}
