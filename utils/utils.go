package utils

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fleetdash-backend/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// GetConfig reads the configuration from environment variables or config files
func GetConfig() (*models.Config, error) {
	config, err := Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return config, nil
}

// Load initializes and returns the application configuration using Viper.
// A .env file next to the binary is loaded first so local development can
// override upstream URLs without exporting variables.
func Load() (*models.Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../")
	v.AddConfigPath("../../")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Config file not found (%v), using defaults and environment variables\n", err)
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config models.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Durations may arrive as strings from config files or env vars
	if s := v.GetString("jwt_expires_in"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			config.JWTExpiresIn = d
		}
	}
	if s := v.GetString("upstream_timeout"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			config.UpstreamTimeout = d
		}
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Application defaults
	v.SetDefault("app_name", "FleetDash Backend")
	v.SetDefault("app_version", "1.0.0")
	v.SetDefault("app_env", "development")
	v.SetDefault("app_host", "0.0.0.0")
	v.SetDefault("app_port", "8082")

	// JWT defaults
	v.SetDefault("jwt_secret", "your-super-secret-jwt-key-change-this-in-production")
	v.SetDefault("jwt_expires_in", 30*time.Minute)

	// Upstream service defaults
	v.SetDefault("maintenance_service_url", "http://localhost:9101")
	v.SetDefault("vehicle_service_url", "http://localhost:9102")
	v.SetDefault("upstream_timeout", 30*time.Second)

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// CORS defaults
	v.SetDefault("cors_origins", []string{"*"})

	// Snapshot worker defaults
	v.SetDefault("snapshot_cron_schedule", "")

	// Base Path default
	v.SetDefault("basePath", "/api/v1")
}

// validate checks if all required configuration is provided
func validate(c *models.Config) error {
	if c.JWTSecret == "your-super-secret-jwt-key-change-this-in-production" && c.AppEnv == "production" {
		return fmt.Errorf("JWT_SECRET must be set in production environment")
	}

	if c.MaintenanceServiceURL == "" {
		return fmt.Errorf("maintenance_service_url is required")
	}
	if c.VehicleServiceURL == "" {
		return fmt.Errorf("vehicle_service_url is required")
	}

	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("upstream_timeout must be positive")
	}

	return nil
}

// HashPassword returns the bcrypt hash of a dashboard login password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// PrintPrettyJSON takes any struct or map and renders it as indented JSON
func PrintPrettyJSON(data interface{}) string {
	prettyJSON, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Sprintf("failed to generate JSON: %v", err)
	}
	return string(prettyJSON)
}
