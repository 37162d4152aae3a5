package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleetdash-backend/dal"
	"fleetdash-backend/models"
	"fleetdash-backend/utils/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func newTestRepo(t *testing.T, handler http.HandlerFunc) (*MaintenanceRepository, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logger.NewLogger("error", "text")
	client := dal.NewServiceClient("maintenance", server.URL, 5*time.Second, log)
	return NewMaintenanceRepository(client, log), server
}

func TestListMaintenancePassesFilterParams(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/maintenance", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("per_page"))
		assert.Equal(t, "overdue", r.URL.Query().Get("status"))
		assert.Equal(t, "high", r.URL.Query().Get("priority"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"id":"m1","vehicle_id":"VH-01","type":"Oil Change","status":"overdue","priority":"high",
				 "due_date":"2024-03-10T00:00:00Z","current_mileage":9000,"due_mileage":10000,
				 "estimated_cost":100.50,"actual_cost":0}
			],
			"total": 1, "page": 2, "per_page": 25
		}`))
	})

	resp, err := repo.ListMaintenance(context.Background(), models.MaintenanceFilter{
		Page:     2,
		PerPage:  25,
		Status:   models.MaintenanceStatusOverdue,
		Priority: models.MaintenancePriorityHigh,
	})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "m1", resp.Items[0].ID)
	assert.Equal(t, models.MaintenanceStatusOverdue, resp.Items[0].Status)
	assert.True(t, resp.Items[0].EstimatedCost.Equal(decimalFromString(t, "100.50")))
	assert.Equal(t, 1, resp.Total)
}

func TestListMaintenanceOmitsEmptyFilterParams(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`{"items":[],"total":0}`))
	})

	resp, err := repo.ListMaintenance(context.Background(), models.MaintenanceFilter{})
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestGetOverdueAndUpcomingHitTheirEndpoints(t *testing.T) {
	var paths []string
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`[{"id":"m1"}]`))
	})

	overdue, err := repo.GetOverdue(context.Background())
	require.NoError(t, err)
	assert.Len(t, overdue, 1)

	upcoming, err := repo.GetUpcoming(context.Background())
	require.NoError(t, err)
	assert.Len(t, upcoming, 1)

	assert.Equal(t, []string{"/api/maintenance/overdue", "/api/maintenance/upcoming"}, paths)
}

func TestListRecurringSchedulesDecodesFrequencies(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/maintenance/recurring-schedules", r.URL.Path)
		w.Write([]byte(`[
			{"id":"rs1","name":"Oil cadence","frequency":"monthly","frequency_value":1,
			 "estimated_cost":85,"is_active":true,"last_executed":"2024-02-01T00:00:00Z","total_executions":4},
			{"id":"rs2","name":"Major service","frequency":"mileage-based","frequency_value":15000,"is_active":true}
		]`))
	})

	schedules, err := repo.ListRecurringSchedules(context.Background())

	require.NoError(t, err)
	require.Len(t, schedules, 2)
	assert.Equal(t, models.FrequencyMonthly, schedules[0].Frequency)
	require.NotNil(t, schedules[0].LastExecuted)
	assert.Equal(t, 4, schedules[0].TotalExecutions)
	assert.Equal(t, models.FrequencyMileageBased, schedules[1].Frequency)
	assert.Nil(t, schedules[1].LastExecuted)
}

func TestListPartsAndTechnicians(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/maintenance/parts":
			w.Write([]byte(`[{"id":"p1","name":"Oil filter","quantity":2,"min_quantity":5}]`))
		case "/api/maintenance/technicians":
			w.Write([]byte(`[{"id":"t1","name":"Sam","is_available":true}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	parts, err := repo.ListParts(context.Background())
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.True(t, parts[0].LowStock())

	technicians, err := repo.ListTechnicians(context.Background())
	require.NoError(t, err)
	require.Len(t, technicians, 1)
	assert.True(t, technicians[0].IsAvailable)
}

func TestUpstreamFailureSurfacesTypedError(t *testing.T) {
	repo, _ := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"message":"maintenance db down"}`))
	})

	_, err := repo.GetOverdue(context.Background())

	var upErr *dal.UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, "maintenance db down", upErr.Message)
	assert.Equal(t, http.StatusServiceUnavailable, upErr.StatusCode)
}

func TestVehicleRepositoryListVehicles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vehicles", r.URL.Path)
		w.Write([]byte(`[{"id":"VH-01","plate":"ABC-123","make":"Ford","model":"Transit","year":2021,"status":"active","current_mileage":84000}]`))
	}))
	t.Cleanup(server.Close)

	log := logger.NewLogger("error", "text")
	repo := NewVehicleRepository(dal.NewServiceClient("vehicle", server.URL, 5*time.Second, log), log)

	vehicles, err := repo.ListVehicles(context.Background())

	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, models.VehicleStatusActive, vehicles[0].Status)
	assert.Equal(t, 84000, vehicles[0].CurrentMileage)
}
