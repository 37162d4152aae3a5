package controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"fleetdash-backend/dal"
	"fleetdash-backend/models"
	"fleetdash-backend/services"
	"fleetdash-backend/utils/logger"
	"fleetdash-backend/worker"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// DashboardController serves the derived dashboard view-models
type DashboardController struct {
	ctx       context.Context
	dashboard services.DashboardServiceInterface
	snapshots *worker.Service
	logger    logger.Logger
	validator *validator.Validate
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(ctx context.Context, dashboard services.DashboardServiceInterface, snapshots *worker.Service, log logger.Logger) *DashboardController {
	return &DashboardController{
		ctx:       ctx,
		dashboard: dashboard,
		snapshots: snapshots,
		logger:    log,
		validator: validator.New(),
	}
}

// respondUpstreamError maps a fetch failure onto the API envelope. Upstream
// rejections become 502 with the server-provided message; everything else
// is a plain 500. Failures never crash the view.
func (h *DashboardController) respondUpstreamError(c *gin.Context, err error) {
	var upErr *dal.UpstreamError
	if errors.As(err, &upErr) {
		c.JSON(http.StatusBadGateway, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadGateway,
			Message: upErr.Message,
			Error: &models.APIError{
				Type:    "UpstreamError",
				Details: upErr.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.APIResponse{
		Status:  "error",
		Code:    http.StatusInternalServerError,
		Message: "Failed to fetch dashboard data",
		Error: &models.APIError{
			Type:    "InternalError",
			Details: err.Error(),
		},
	})
}

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, models.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// GetMaintenanceList handles GET /api/v1/dashboard/maintenance
// @Summary List maintenance items
// @Description Retrieve a page of maintenance items annotated with status badge and mileage progress
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param status query string false "Filter by status (scheduled, due_soon, overdue, in_progress, completed, cancelled)"
// @Param priority query string false "Filter by priority (low, medium, high)"
// @Success 200 {object} models.APIResponse "Maintenance items retrieved"
// @Failure 400 {object} models.APIResponse "Unknown status or priority"
// @Failure 502 {object} models.APIResponse "Maintenance service unavailable"
// @Router /dashboard/maintenance [get]
func (h *DashboardController) GetMaintenanceList(c *gin.Context) {
	filter := models.MaintenanceFilter{Page: 1, PerPage: 20}

	if pageParam := c.Query("page"); pageParam != "" {
		if p, err := strconv.Atoi(pageParam); err == nil && p > 0 {
			filter.Page = p
		}
	}
	if perPageParam := c.Query("per_page"); perPageParam != "" {
		if pp, err := strconv.Atoi(perPageParam); err == nil && pp > 0 && pp <= 100 {
			filter.PerPage = pp
		}
	}

	if status := models.MaintenanceStatus(c.Query("status")); status != "" {
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, models.APIResponse{
				Status:  "error",
				Code:    http.StatusBadRequest,
				Message: "Unknown maintenance status",
				Error: &models.APIError{
					Type:  "ValidationError",
					Field: "status",
				},
			})
			return
		}
		filter.Status = status
	}
	if priority := models.MaintenancePriority(c.Query("priority")); priority != "" {
		if !priority.Valid() {
			c.JSON(http.StatusBadRequest, models.APIResponse{
				Status:  "error",
				Code:    http.StatusBadRequest,
				Message: "Unknown maintenance priority",
				Error: &models.APIError{
					Type:  "ValidationError",
					Field: "priority",
				},
			})
			return
		}
		filter.Priority = priority
	}

	view, err := h.dashboard.GetMaintenanceList(c.Request.Context(), filter)
	if err != nil {
		h.logger.Errorf("Failed to list maintenance items: %v", err)
		h.respondUpstreamError(c, err)
		return
	}

	respondOK(c, "Maintenance items retrieved", view)
}

// GetOverdue handles GET /api/v1/dashboard/maintenance/overdue
// @Summary List overdue maintenance
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Overdue items retrieved"
// @Router /dashboard/maintenance/overdue [get]
func (h *DashboardController) GetOverdue(c *gin.Context) {
	items, err := h.dashboard.GetOverdue(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to fetch overdue items: %v", err)
		h.respondUpstreamError(c, err)
		return
	}
	respondOK(c, "Overdue items retrieved", items)
}

// GetUpcoming handles GET /api/v1/dashboard/maintenance/upcoming
// @Summary List upcoming maintenance
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Upcoming items retrieved"
// @Router /dashboard/maintenance/upcoming [get]
func (h *DashboardController) GetUpcoming(c *gin.Context) {
	items, err := h.dashboard.GetUpcoming(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to fetch upcoming items: %v", err)
		h.respondUpstreamError(c, err)
		return
	}
	respondOK(c, "Upcoming items retrieved", items)
}

// GetCalendar handles GET /api/v1/dashboard/maintenance/calendar
// @Summary Month calendar grid
// @Description Build the fixed 6x7 day grid for a month, each day carrying the maintenance items due on it
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param year query int false "Target year (defaults to current)"
// @Param month query int false "Target month 1-12 (defaults to current)"
// @Success 200 {object} models.APIResponse "Calendar grid built"
// @Failure 400 {object} models.APIResponse "Invalid year or month"
// @Router /dashboard/maintenance/calendar [get]
func (h *DashboardController) GetCalendar(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if yearParam := c.Query("year"); yearParam != "" {
		y, err := strconv.Atoi(yearParam)
		if err != nil || y < 1970 || y > 9999 {
			c.JSON(http.StatusBadRequest, models.APIResponse{
				Status:  "error",
				Code:    http.StatusBadRequest,
				Message: "Invalid year",
				Error:   &models.APIError{Type: "ValidationError", Field: "year"},
			})
			return
		}
		year = y
	}
	if monthParam := c.Query("month"); monthParam != "" {
		m, err := strconv.Atoi(monthParam)
		if err != nil || m < 1 || m > 12 {
			c.JSON(http.StatusBadRequest, models.APIResponse{
				Status:  "error",
				Code:    http.StatusBadRequest,
				Message: "Invalid month",
				Error:   &models.APIError{Type: "ValidationError", Field: "month"},
			})
			return
		}
		month = time.Month(m)
	}

	grid, err := h.dashboard.GetCalendar(c.Request.Context(), year, month)
	if err != nil {
		h.logger.Errorf("Failed to build calendar for %d-%02d: %v", year, month, err)
		h.respondUpstreamError(c, err)
		return
	}

	respondOK(c, "Calendar grid built", gin.H{
		"year":  year,
		"month": int(month),
		"days":  grid,
	})
}

// GetCostAnalytics handles GET /api/v1/dashboard/maintenance/analytics/costs
// @Summary Cost analytics rollup
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Cost analytics computed"
// @Router /dashboard/maintenance/analytics/costs [get]
func (h *DashboardController) GetCostAnalytics(c *gin.Context) {
	analytics, err := h.dashboard.GetCostAnalytics(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to aggregate costs: %v", err)
		h.respondUpstreamError(c, err)
		return
	}
	respondOK(c, "Cost analytics computed", analytics)
}

// GetSchedules handles GET /api/v1/dashboard/maintenance/schedules
// @Summary Recurring schedules with projections
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Schedules retrieved"
// @Router /dashboard/maintenance/schedules [get]
func (h *DashboardController) GetSchedules(c *gin.Context) {
	schedules, err := h.dashboard.GetSchedules(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to fetch recurring schedules: %v", err)
		h.respondUpstreamError(c, err)
		return
	}
	respondOK(c, "Schedules retrieved", schedules)
}

// GetSummary handles GET /api/v1/dashboard/summary
// @Summary Dashboard summary snapshot
// @Description Serve the worker-refreshed summary; falls back to a live build before the first refresh completes
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Summary retrieved"
// @Router /dashboard/summary [get]
func (h *DashboardController) GetSummary(c *gin.Context) {
	if h.snapshots != nil {
		if summary, ok := h.snapshots.Snapshot(); ok {
			respondOK(c, "Summary retrieved", summary)
			return
		}
	}

	summary, err := h.dashboard.BuildSummary(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to build dashboard summary: %v", err)
		h.respondUpstreamError(c, err)
		return
	}
	respondOK(c, "Summary retrieved", summary)
}

// GetParts handles GET /api/v1/dashboard/parts
// @Summary Part inventory with low-stock flags
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Parts retrieved"
// @Router /dashboard/parts [get]
func (h *DashboardController) GetParts(c *gin.Context) {
	parts, err := h.dashboard.GetParts(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to fetch parts: %v", err)
		h.respondUpstreamError(c, err)
		return
	}
	respondOK(c, "Parts retrieved", parts)
}

// GetTechnicians handles GET /api/v1/dashboard/technicians
// @Summary Technician roster
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Technicians retrieved"
// @Router /dashboard/technicians [get]
func (h *DashboardController) GetTechnicians(c *gin.Context) {
	technicians, err := h.dashboard.GetTechnicians(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to fetch technicians: %v", err)
		h.respondUpstreamError(c, err)
		return
	}
	respondOK(c, "Technicians retrieved", technicians)
}

// GetVehicles handles GET /api/v1/dashboard/vehicles
// @Summary Fleet vehicle roster
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Vehicles retrieved"
// @Router /dashboard/vehicles [get]
func (h *DashboardController) GetVehicles(c *gin.Context) {
	vehicles, err := h.dashboard.GetVehicles(c.Request.Context())
	if err != nil {
		h.logger.Errorf("Failed to fetch vehicles: %v", err)
		h.respondUpstreamError(c, err)
		return
	}
	respondOK(c, "Vehicles retrieved", vehicles)
}

// GetWorkerHealth handles GET /api/v1/dashboard/worker/health
// @Summary Snapshot worker health
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.APIResponse "Worker health retrieved"
// @Router /dashboard/worker/health [get]
func (h *DashboardController) GetWorkerHealth(c *gin.Context) {
	if h.snapshots == nil {
		respondOK(c, "Worker not configured", gin.H{"worker_running": false})
		return
	}
	respondOK(c, "Worker health retrieved", h.snapshots.GetHealthStatus())
}
