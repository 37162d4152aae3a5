package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fleetdash-backend/models"
	"fleetdash-backend/utils/logger"

	"github.com/robfig/cron"
)

// SnapshotProvider builds the dashboard summary from the upstream services
type SnapshotProvider interface {
	BuildSummary(ctx context.Context) (*models.DashboardSummary, error)
}

// Worker refreshes the dashboard summary snapshot on a cron schedule so the
// summary endpoint does not fan out to every upstream on each request. The
// snapshot lives in memory only; a failed refresh leaves the previous one
// in place.
type Worker struct {
	workerConfig *models.WorkerConfig
	logger       logger.Logger
	provider     SnapshotProvider
	cronJob      *cron.Cron

	mu        sync.RWMutex
	snapshot  *models.DashboardSummary
	result    models.ExecutionResult
	isRunning bool

	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// NewWorker creates a snapshot worker for the given provider
func NewWorker(ctx context.Context, cfg *models.Config, provider SnapshotProvider, log logger.Logger) (*Worker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if provider == nil {
		return nil, fmt.Errorf("snapshot provider cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	schedule := cfg.SnapshotCronSchedule
	if schedule == "" {
		schedule = cronScheduleForEnvironment(cfg.AppEnv)
	}

	workerConfig := &models.WorkerConfig{
		CronSchedule:   schedule,
		RefreshTimeout: 2 * cfg.UpstreamTimeout,
		Environment:    cfg.AppEnv,
		RunOnStart:     true,
	}

	workerCtx, cancel := context.WithCancel(ctx)

	return &Worker{
		workerConfig: workerConfig,
		logger:       log,
		provider:     provider,
		cronJob:      cron.New(),
		result:       models.ExecutionResult{Status: models.StatusIdle, Environment: cfg.AppEnv},
		ctx:          workerCtx,
		cancel:       cancel,
	}, nil
}

// Start registers the cron job and, when configured, performs an immediate
// first refresh so the summary endpoint has data as soon as possible
func (w *Worker) Start() error {
	if err := w.cronJob.AddFunc(w.workerConfig.CronSchedule, w.refresh); err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	w.cronJob.Start()

	w.mu.Lock()
	w.isRunning = true
	w.mu.Unlock()

	w.logger.Infof("Snapshot worker started (schedule %q)", w.workerConfig.CronSchedule)

	if w.workerConfig.RunOnStart {
		go w.refresh()
	}

	return nil
}

// Stop halts the cron scheduler and cancels any in-flight refresh
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		w.cronJob.Stop()
		w.cancel()

		w.mu.Lock()
		w.isRunning = false
		w.mu.Unlock()

		w.logger.Info("Snapshot worker stopped")
	})
}

// IsRunning reports whether the cron scheduler is active
func (w *Worker) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.isRunning
}

// Snapshot returns the latest summary, or ok=false before the first
// successful refresh
func (w *Worker) Snapshot() (*models.DashboardSummary, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.snapshot == nil {
		return nil, false
	}
	return w.snapshot, true
}

// Status returns the state of the most recent refresh
func (w *Worker) Status() models.ExecutionResult {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.result
}

// refresh rebuilds the snapshot under the refresh timeout
func (w *Worker) refresh() {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Errorf("Snapshot refresh panicked: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(w.ctx, w.workerConfig.RefreshTimeout)
	defer cancel()

	start := time.Now()

	w.mu.Lock()
	w.result.Status = models.StatusRunning
	w.result.StartTime = start
	w.result.RunCount++
	w.mu.Unlock()

	summary, err := w.provider.BuildSummary(ctx)
	duration := time.Since(start)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.result.Duration = duration
	if err != nil {
		w.result.Status = models.StatusFailed
		w.result.Success = false
		w.result.ErrorMessage = err.Error()
		w.logger.Errorf("Snapshot refresh failed after %s: %v", duration, err)
		return
	}

	w.snapshot = summary
	w.result.Status = models.StatusCompleted
	w.result.Success = true
	w.result.ErrorMessage = ""
	w.logger.Debugf("Snapshot refreshed in %s", duration)
}

// cronScheduleForEnvironment returns environment-specific refresh cadences
func cronScheduleForEnvironment(env string) string {
	switch env {
	case "development":
		return "*/30 * * * * *" // every 30 seconds for development
	case "testing":
		return "0 */5 * * * *" // every 5 minutes for testing
	case "production":
		return "0 */10 * * * *" // every 10 minutes for production
	default:
		return "0 */5 * * * *"
	}
}
