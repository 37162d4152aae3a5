package controller

import (
	"context"
	"net/http"

	"fleetdash-backend/middelware"
	"fleetdash-backend/models"
	"fleetdash-backend/services"
	"fleetdash-backend/utils/logger"
	"fleetdash-backend/worker"

	"github.com/gin-gonic/gin"
)

// Controller bundles the HTTP handlers and their shared session manager
type Controller struct {
	Dashboard *DashboardController
	Session   *SessionController
	sessions  *middelware.SessionManager
}

// NewController wires the controllers over the dashboard service and the
// snapshot worker
func NewController(ctx context.Context, cfg *models.Config, log logger.Logger, dashboard services.DashboardServiceInterface, snapshots *worker.Service) *Controller {
	sessions := middelware.NewSessionManager(cfg, log)
	sessions.StartCleanup(ctx)

	return &Controller{
		Dashboard: NewDashboardController(ctx, dashboard, snapshots, log),
		Session:   NewSessionController(ctx, sessions, log),
		sessions:  sessions,
	}
}

// RegisterRoutes mounts all routes and runs the HTTP server (blocking)
func (c *Controller) RegisterRoutes(ctx context.Context, config *models.Config, r *gin.Engine, basePath string) error {
	logging := middelware.NewLoggingMiddleware(c.Session.logger)
	r.Use(logging.Recovery())
	r.Use(logging.RequestLogger())
	r.Use(middelware.NewCORSMiddleware(config).CORS())

	v1 := r.Group(basePath)

	// Health check endpoint (no auth required)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": config.AppVersion,
			"service": config.AppName,
		})
	})

	// Session routes
	session := v1.Group("/session")
	session.POST("/login", c.Session.Login)
	session.POST("/validate", c.Session.Validate)
	session.POST("/logout", c.sessions.AuthMiddleware(), c.Session.Logout)

	// Dashboard routes - authentication required
	dashboard := v1.Group("/dashboard", c.sessions.AuthMiddleware())
	dashboard.GET("/maintenance", c.Dashboard.GetMaintenanceList)
	dashboard.GET("/maintenance/overdue", c.Dashboard.GetOverdue)
	dashboard.GET("/maintenance/upcoming", c.Dashboard.GetUpcoming)
	dashboard.GET("/maintenance/calendar", c.Dashboard.GetCalendar)
	dashboard.GET("/maintenance/analytics/costs", c.Dashboard.GetCostAnalytics)
	dashboard.GET("/maintenance/schedules", c.Dashboard.GetSchedules)
	dashboard.GET("/summary", c.Dashboard.GetSummary)
	dashboard.GET("/parts", c.Dashboard.GetParts)
	dashboard.GET("/technicians", c.Dashboard.GetTechnicians)
	dashboard.GET("/vehicles", c.Dashboard.GetVehicles)

	// Worker health is admin-only
	dashboard.GET("/worker/health", c.sessions.RequireRole(models.SessionRoleAdmin), c.Dashboard.GetWorkerHealth)

	// Create HTTP server
	srv := &http.Server{
		Addr:    config.AppHost + ":" + config.AppPort,
		Handler: r,
	}

	log := c.Session.logger
	log.Infof("Starting server on %s:%s", config.AppHost, config.AppPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
