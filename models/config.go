package models

import "time"

// DashboardUser is a locally declared dashboard login. There is no user
// store behind this service; accounts live in configuration only.
type DashboardUser struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"` // bcrypt
	Role         string `mapstructure:"role"`
}

// Config holds all configuration for the application
type Config struct {
	// Application
	AppName    string `mapstructure:"app_name"`
	AppVersion string `mapstructure:"app_version"`
	AppEnv     string `mapstructure:"app_env"`
	AppHost    string `mapstructure:"app_host"`
	AppPort    string `mapstructure:"app_port"`

	// JWT / sessions
	JWTSecret    string        `mapstructure:"jwt_secret"`
	JWTExpiresIn time.Duration `mapstructure:"jwt_expires_in"`

	// Upstream microservices
	MaintenanceServiceURL string        `mapstructure:"maintenance_service_url"`
	VehicleServiceURL     string        `mapstructure:"vehicle_service_url"`
	UpstreamTimeout       time.Duration `mapstructure:"upstream_timeout"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// CORS
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Snapshot worker
	SnapshotCronSchedule string `mapstructure:"snapshot_cron_schedule"`

	// Base Path
	BasePath string `mapstructure:"basePath"`

	// Dashboard logins
	Users []DashboardUser `mapstructure:"users"`
}
