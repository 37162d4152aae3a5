package repository

import (
	"fleetdash-backend/dal"
	"fleetdash-backend/models"
	"fleetdash-backend/utils/logger"
)

// Repository bundles the upstream service clients
type Repository struct {
	Maintenance *MaintenanceRepository
	Vehicle     *VehicleRepository
}

// NewRepository wires a client per configured upstream base URL
func NewRepository(cfg *models.Config, log logger.Logger) *Repository {
	maintenanceClient := dal.NewServiceClient("maintenance", cfg.MaintenanceServiceURL, cfg.UpstreamTimeout, log)
	vehicleClient := dal.NewServiceClient("vehicle", cfg.VehicleServiceURL, cfg.UpstreamTimeout, log)

	return &Repository{
		Maintenance: NewMaintenanceRepository(maintenanceClient, log),
		Vehicle:     NewVehicleRepository(vehicleClient, log),
	}
}
