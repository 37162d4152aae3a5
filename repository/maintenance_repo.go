package repository

import (
	"context"
	"net/url"
	"strconv"

	"fleetdash-backend/dal"
	"fleetdash-backend/models"
	"fleetdash-backend/utils/logger"
)

// MaintenanceRepository reads maintenance data from the maintenance
// microservice. This service holds no copy of the data; every call goes
// upstream and the response is discarded after the view-models are built.
type MaintenanceRepository struct {
	client *dal.ServiceClient
	logger logger.Logger
}

// NewMaintenanceRepository creates a new maintenance service client
func NewMaintenanceRepository(client *dal.ServiceClient, log logger.Logger) *MaintenanceRepository {
	return &MaintenanceRepository{
		client: client,
		logger: log,
	}
}

// ListMaintenance fetches a page of maintenance items with optional status
// and priority filters
func (r *MaintenanceRepository) ListMaintenance(ctx context.Context, filter models.MaintenanceFilter) (*models.MaintenanceListResponse, error) {
	query := url.Values{}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(filter.PerPage))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.Priority != "" {
		query.Set("priority", string(filter.Priority))
	}

	var resp models.MaintenanceListResponse
	if err := r.client.GetJSON(ctx, "/api/maintenance", query, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetOverdue fetches the items the maintenance service classifies as overdue.
// Status classification is owned upstream; this layer never re-derives it.
func (r *MaintenanceRepository) GetOverdue(ctx context.Context) ([]models.MaintenanceItem, error) {
	var items []models.MaintenanceItem
	if err := r.client.GetJSON(ctx, "/api/maintenance/overdue", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetUpcoming fetches the items due soon per the maintenance service's
// threshold
func (r *MaintenanceRepository) GetUpcoming(ctx context.Context) ([]models.MaintenanceItem, error) {
	var items []models.MaintenanceItem
	if err := r.client.GetJSON(ctx, "/api/maintenance/upcoming", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListRecurringSchedules fetches all recurring maintenance schedules
func (r *MaintenanceRepository) ListRecurringSchedules(ctx context.Context) ([]models.RecurringSchedule, error) {
	var schedules []models.RecurringSchedule
	if err := r.client.GetJSON(ctx, "/api/maintenance/recurring-schedules", nil, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// ListParts fetches the spare-part inventory
func (r *MaintenanceRepository) ListParts(ctx context.Context) ([]models.Part, error) {
	var parts []models.Part
	if err := r.client.GetJSON(ctx, "/api/maintenance/parts", nil, &parts); err != nil {
		return nil, err
	}
	return parts, nil
}

// ListTechnicians fetches the technician roster
func (r *MaintenanceRepository) ListTechnicians(ctx context.Context) ([]models.Technician, error) {
	var technicians []models.Technician
	if err := r.client.GetJSON(ctx, "/api/maintenance/technicians", nil, &technicians); err != nil {
		return nil, err
	}
	return technicians, nil
}
