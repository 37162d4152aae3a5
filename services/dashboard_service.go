package services

import (
	"context"
	"time"

	"fleetdash-backend/models"
	"fleetdash-backend/repository"
	"fleetdash-backend/utils/logger"
)

// fetchPageSize is how many maintenance items each upstream page request
// asks for when a derivation needs the whole collection.
const fetchPageSize = 500

// DashboardService composes the upstream repositories with the view-model
// derivation. It owns no durable state: every call re-derives from a fresh
// upstream snapshot.
type DashboardService struct {
	maintenanceRepo repository.MaintenanceRepositoryInterface
	vehicleRepo     repository.VehicleRepositoryInterface
	logger          logger.Logger
	now             func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(maintenanceRepo repository.MaintenanceRepositoryInterface, vehicleRepo repository.VehicleRepositoryInterface, log logger.Logger) *DashboardService {
	return &DashboardService{
		maintenanceRepo: maintenanceRepo,
		vehicleRepo:     vehicleRepo,
		logger:          log,
		now:             time.Now,
	}
}

// WithClock overrides the service clock. Tests use this to pin "today" for
// calendar assertions.
func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

// GetMaintenanceList returns a page of maintenance items annotated with
// their badge and mileage progress
func (s *DashboardService) GetMaintenanceList(ctx context.Context, filter models.MaintenanceFilter) (*models.MaintenanceListView, error) {
	resp, err := s.maintenanceRepo.ListMaintenance(ctx, filter)
	if err != nil {
		return nil, err
	}

	perPage := resp.PerPage
	if perPage <= 0 {
		perPage = len(resp.Items)
	}
	totalPages := 0
	if perPage > 0 {
		totalPages = (resp.Total + perPage - 1) / perPage
	}

	return &models.MaintenanceListView{
		Items: AnnotateItems(resp.Items),
		Pagination: models.Pagination{
			Page:       resp.Page,
			PerPage:    resp.PerPage,
			Total:      resp.Total,
			TotalPages: totalPages,
		},
	}, nil
}

// GetOverdue returns the upstream-classified overdue items, annotated
func (s *DashboardService) GetOverdue(ctx context.Context) ([]models.MaintenanceItemView, error) {
	items, err := s.maintenanceRepo.GetOverdue(ctx)
	if err != nil {
		return nil, err
	}
	return AnnotateItems(items), nil
}

// GetUpcoming returns the upstream-classified due-soon items, annotated
func (s *DashboardService) GetUpcoming(ctx context.Context) ([]models.MaintenanceItemView, error) {
	items, err := s.maintenanceRepo.GetUpcoming(ctx)
	if err != nil {
		return nil, err
	}
	return AnnotateItems(items), nil
}

// fetchAllMaintenance walks the upstream pages until the whole collection is
// in hand. Fleet-wide derivations (calendar, cost analytics, summary) must
// see every item; truncating at one page would silently skew the totals.
func (s *DashboardService) fetchAllMaintenance(ctx context.Context) ([]models.MaintenanceItem, error) {
	var items []models.MaintenanceItem
	for page := 1; ; page++ {
		resp, err := s.maintenanceRepo.ListMaintenance(ctx, models.MaintenanceFilter{Page: page, PerPage: fetchPageSize})
		if err != nil {
			return nil, err
		}

		items = append(items, resp.Items...)

		if len(resp.Items) < fetchPageSize {
			break
		}
		if resp.Total > 0 && len(items) >= resp.Total {
			break
		}
	}
	return items, nil
}

// GetCalendar builds the 6x7 month grid for the given year and month from a
// fresh upstream snapshot
func (s *DashboardService) GetCalendar(ctx context.Context, year int, month time.Month) ([]models.DaySchedule, error) {
	items, err := s.fetchAllMaintenance(ctx)
	if err != nil {
		return nil, err
	}
	return BuildMonthGrid(year, month, items, s.now()), nil
}

// GetCostAnalytics aggregates cost totals and breakdowns across all items
func (s *DashboardService) GetCostAnalytics(ctx context.Context) (*models.CostAnalyticsView, error) {
	items, err := s.fetchAllMaintenance(ctx)
	if err != nil {
		return nil, err
	}

	summary := AggregateCosts(items)
	return &models.CostAnalyticsView{
		CostSummary: summary,
		RankedTypes: RankedTypes(summary),
	}, nil
}

// GetSchedules returns the recurring schedules with their cadence labels,
// projected next occurrences and the monthly cost estimate tile
func (s *DashboardService) GetSchedules(ctx context.Context) (*models.ScheduleListView, error) {
	schedules, err := s.maintenanceRepo.ListRecurringSchedules(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]models.ScheduleView, 0, len(schedules))
	for _, schedule := range schedules {
		views = append(views, BuildScheduleView(schedule, now))
	}

	return &models.ScheduleListView{
		Schedules:           views,
		MonthlyCostEstimate: MonthlyCostEstimate(schedules),
	}, nil
}

// GetParts returns the inventory with the derived low-stock flag
func (s *DashboardService) GetParts(ctx context.Context) ([]models.PartView, error) {
	parts, err := s.maintenanceRepo.ListParts(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.PartView, 0, len(parts))
	for _, part := range parts {
		views = append(views, models.PartView{Part: part, LowStock: part.LowStock()})
	}
	return views, nil
}

// GetTechnicians returns the technician roster
func (s *DashboardService) GetTechnicians(ctx context.Context) ([]models.Technician, error) {
	return s.maintenanceRepo.ListTechnicians(ctx)
}

// GetVehicles returns the fleet roster from the vehicle service
func (s *DashboardService) GetVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return s.vehicleRepo.ListVehicles(ctx)
}

// BuildSummary derives the dashboard summary snapshot. The snapshot worker
// calls this on its cron schedule; every upstream fetch failure aborts the
// refresh so a stale-but-consistent snapshot stays in place.
func (s *DashboardService) BuildSummary(ctx context.Context) (*models.DashboardSummary, error) {
	items, err := s.fetchAllMaintenance(ctx)
	if err != nil {
		return nil, err
	}

	overdue, err := s.maintenanceRepo.GetOverdue(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.maintenanceRepo.GetUpcoming(ctx)
	if err != nil {
		return nil, err
	}

	schedules, err := s.maintenanceRepo.ListRecurringSchedules(ctx)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, schedule := range schedules {
		if schedule.IsActive {
			active++
		}
	}

	return &models.DashboardSummary{
		Costs:               AggregateCosts(items),
		OverdueCount:        len(overdue),
		UpcomingCount:       len(upcoming),
		ActiveScheduleCount: active,
		MonthlyCostEstimate: MonthlyCostEstimate(schedules),
		RefreshedAt:         s.now(),
	}, nil
}
