// Package config provides application configuration loaded from environment variables.
package config

import (
	"os"
	"strings"
)

// Supported store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	Output   OutputConfig
	Chart    ChartConfig
	LogLevel string
}

// DatabaseConfig holds record store settings.
type DatabaseConfig struct {
	Driver string
	Path   string // sqlite file
	DSN    string // postgres connection string
	Debug  bool
}

// OutputConfig holds file sink settings.
type OutputConfig struct {
	CSVPath string
}

// ChartConfig holds chart sink settings.
type ChartConfig struct {
	// Path is optional; the chart is only written to disk when set.
	Path string
	// Display serves the chart locally and blocks until interrupted.
	Display     bool
	DisplayAddr string
}

// Default returns the fixed defaults used when nothing is configured.
func Default() Config {
	return Config{
		Database: DatabaseConfig{
			Driver: DriverSQLite,
			Path:   "sales_data.db",
		},
		Output: OutputConfig{
			CSVPath: "revenue_summary.csv",
		},
		Chart: ChartConfig{
			Display:     true,
			DisplayAddr: "127.0.0.1:8085",
		},
		LogLevel: "info",
	}
}

// Load reads configuration from environment variables.
// Unset variables fall back to Default().
func Load() Config {
	def := Default()
	return Config{
		Database: DatabaseConfig{
			Driver: strings.ToLower(getEnv("SALES_DB_DRIVER", def.Database.Driver)),
			Path:   getEnv("SALES_DB_PATH", def.Database.Path),
			DSN:    getEnv("DATABASE_DSN", def.Database.DSN),
			Debug:  getEnvBool("DB_DEBUG", def.Database.Debug),
		},
		Output: OutputConfig{
			CSVPath: getEnv("SALES_CSV_PATH", def.Output.CSVPath),
		},
		Chart: ChartConfig{
			Path:        getEnv("SALES_CHART_PATH", def.Chart.Path),
			Display:     getEnvBool("SALES_CHART_DISPLAY", def.Chart.Display),
			DisplayAddr: getEnv("SALES_DISPLAY_ADDR", def.Chart.DisplayAddr),
		},
		LogLevel: getEnv("LOG_LEVEL", def.LogLevel),
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}
