package worker

import (
	"context"
	"fmt"

	"fleetdash-backend/models"
	"fleetdash-backend/utils/logger"
)

// Service wraps the snapshot worker for easy integration
type Service struct {
	worker *Worker
	logger logger.Logger
}

// NewService creates a new snapshot worker service
func NewService(ctx context.Context, cfg *models.Config, provider SnapshotProvider, log logger.Logger) (*Service, error) {
	worker, err := NewWorker(ctx, cfg, provider, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot worker: %w", err)
	}

	return &Service{
		worker: worker,
		logger: log,
	}, nil
}

// StartInBackground starts the snapshot worker in the background
func (s *Service) StartInBackground() error {
	s.logger.Info("Starting snapshot worker service in background")

	go func() {
		if err := s.worker.Start(); err != nil {
			s.logger.Errorf("Snapshot worker failed to start: %v", err)
		}
	}()

	return nil
}

// Stop stops the snapshot worker service
func (s *Service) Stop() {
	s.logger.Info("Stopping snapshot worker service")
	s.worker.Stop()
}

// Snapshot returns the latest dashboard summary, or ok=false before the
// first successful refresh
func (s *Service) Snapshot() (*models.DashboardSummary, bool) {
	return s.worker.Snapshot()
}

// GetStatus returns the current refresh status
func (s *Service) GetStatus() models.ExecutionResult {
	return s.worker.Status()
}

// GetHealthStatus returns a health status for monitoring
func (s *Service) GetHealthStatus() map[string]interface{} {
	status := s.worker.Status()

	return map[string]interface{}{
		"status":         string(status.Status),
		"healthy":        status.Status != models.StatusFailed,
		"worker_running": s.worker.IsRunning(),
		"run_count":      status.RunCount,
		"environment":    status.Environment,
		"start_time":     status.StartTime,
		"duration":       status.Duration.String(),
		"error_message":  status.ErrorMessage,
	}
}
