package models

import "time"

// ExecutionStatus tracks the snapshot worker's run state
type ExecutionStatus string

const (
	StatusIdle      ExecutionStatus = "idle"
	StatusRunning   ExecutionStatus = "running"
	StatusCompleted ExecutionStatus = "completed"
	StatusFailed    ExecutionStatus = "failed"
)

// ExecutionResult describes the most recent snapshot refresh
type ExecutionResult struct {
	Status       ExecutionStatus `json:"status"`
	Success      bool            `json:"success"`
	StartTime    time.Time       `json:"start_time"`
	Duration     time.Duration   `json:"duration"`
	ErrorMessage string          `json:"error_message,omitempty"`
	RunCount     int             `json:"run_count"`
	Environment  string          `json:"environment"`
}

// WorkerConfig holds configuration for the dashboard snapshot worker
type WorkerConfig struct {
	CronSchedule   string        `json:"cron_schedule"`
	RefreshTimeout time.Duration `json:"refresh_timeout"`
	Environment    string        `json:"environment"`
	RunOnStart     bool          `json:"run_on_start"`
}
