package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "shorten-path"

// GetConfigDir returns the configuration directory path
func GetConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// GetConfigFile returns the configuration file path
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// GetLogsDir returns the logs directory path
func GetLogsDir() string {
	return filepath.Join(GetConfigDir(), "logs")
}

// EnsureLogsDir creates the logs directory if it doesn't exist
func EnsureLogsDir() error {
	logsDir := GetLogsDir()
	return os.MkdirAll(logsDir, 0700)
}
