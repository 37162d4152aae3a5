package main

import (
	"context"
	"log"

	"fleetdash-backend/controller"
	"fleetdash-backend/models"
	"fleetdash-backend/repository"
	"fleetdash-backend/services"
	"fleetdash-backend/utils"
	"fleetdash-backend/utils/logger"
	"fleetdash-backend/worker"

	"github.com/gin-gonic/gin"
)

var config *models.Config

func Init() {
	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

// @title FleetDash Backend API
// @version 1.0
// @description Fleet maintenance dashboard aggregation service. Consumes the
// @description vehicle and maintenance microservices and serves derived
// @description view-models: status badges, the month calendar grid, cost
// @description analytics and recurring-schedule projections.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:8082
// @BasePath /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	Init()

	ctx := context.Background()
	appLogger := logger.NewLogger(config.LogLevel, config.LogFormat)
	appLogger.Infof("Config loaded: %s", utils.PrintPrettyJSON(config))

	repo := repository.NewRepository(config, appLogger)
	dashboardService := services.NewDashboardService(repo.Maintenance, repo.Vehicle, appLogger)

	snapshotWorker, err := worker.NewService(ctx, config, dashboardService, appLogger)
	if err != nil {
		log.Fatalf("Failed to create snapshot worker: %v", err)
	}
	if err := snapshotWorker.StartInBackground(); err != nil {
		log.Fatalf("Failed to start snapshot worker: %v", err)
	}

	r := gin.New()
	c := controller.NewController(ctx, config, appLogger, dashboardService, snapshotWorker)

	if err := c.RegisterRoutes(ctx, config, r, config.BasePath); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
}
