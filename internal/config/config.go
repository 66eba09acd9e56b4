package config

import (
	"os"
	"path/filepath"
	"strconv"

	"schoolmap/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Ops    OpsConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds the data source settings
type DataConfig struct {
	// BaseDir is the filesystem root the schools data path is resolved
	// against. Owned by deployment, not by this code.
	BaseDir string
	// DataFile, when set, overrides the resolved schools data path
	// entirely. Useful for pointing at an .xlsx export.
	DataFile string
}

// OpsConfig holds the ops/admin server settings
type OpsConfig struct {
	Port    string
	Enabled bool
}

// SchoolsDataRelPath is the fixed location of the geocoded schools file
// below the base directory.
var SchoolsDataRelPath = filepath.Join("national_schools", "static", "data", "geocoded_schools_national.csv")

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Data: DataConfig{
			BaseDir:  getEnvOrDefault("BASE_DIR", "."),
			DataFile: getEnvOrDefault("DATA_FILE", ""),
		},
		Ops: OpsConfig{
			Port:    getEnvOrDefault("OPS_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("OPS_ENABLED", true),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// SchoolsDataPath resolves the schools data file location for this
// configuration.
func (c *Config) SchoolsDataPath() string {
	if c.Data.DataFile != "" {
		return c.Data.DataFile
	}
	return filepath.Join(c.Data.BaseDir, SchoolsDataRelPath)
}

func validateConfig(config *Config) error {
	if config.Data.BaseDir == "" {
		return errors.ConfigInvalid("base directory is required")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
