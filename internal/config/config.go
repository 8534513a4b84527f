package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Config holds server settings loaded from environment variables.
type Config struct {
	// HTTPAddr is the MCP HTTP listen address.
	HTTPAddr string `envconfig:"MCP_HTTP_ADDR" default:":3333"`

	// LogLevel sets the minimum log level (debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogDir is where component log files are written. Logs go to files so
	// stdout stays a clean protocol channel in stdio mode.
	LogDir string `envconfig:"LOG_DIR" default:"logs"`
}

// Load reads Config from environment variables using envconfig.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &c, nil
}

// LogrusLevel converts LogLevel to a logrus level. Unknown values default
// to info.
func (c *Config) LogrusLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
