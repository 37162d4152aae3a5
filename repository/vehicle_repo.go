package repository

import (
	"context"

	"fleetdash-backend/dal"
	"fleetdash-backend/models"
	"fleetdash-backend/utils/logger"
)

// VehicleRepository reads the fleet roster from the vehicle microservice
type VehicleRepository struct {
	client *dal.ServiceClient
	logger logger.Logger
}

// NewVehicleRepository creates a new vehicle service client
func NewVehicleRepository(client *dal.ServiceClient, log logger.Logger) *VehicleRepository {
	return &VehicleRepository{
		client: client,
		logger: log,
	}
}

// ListVehicles fetches the full vehicle roster
func (r *VehicleRepository) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.client.GetJSON(ctx, "/api/vehicles", nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}
