package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults applied after validation
const (
	DefaultTimezone       = "Europe/Berlin"
	DefaultDepartureLimit = 40
	DefaultStopFinderType = "any"
	DefaultTimeoutMS      = 30000
)

// DefaultPaths are searched when LoadAppConfig gets no paths
var DefaultPaths = []string{"efa.yml", "config.yml"}

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the configuration from the first readable
// file among paths (DefaultPaths when none are given)
func LoadAppConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = DefaultPaths
	}

	var data []byte
	err := errors.New("no config path given")
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}

	cfg, err := Parse(data)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Parse decodes and validates a YAML document and fills in defaults
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Client.Timezone == "" {
		cfg.Client.Timezone = DefaultTimezone
	}
	if cfg.Client.TimeoutMS == 0 {
		cfg.Client.TimeoutMS = DefaultTimeoutMS
	}
	if cfg.Departures.Limit == 0 {
		cfg.Departures.Limit = DefaultDepartureLimit
	}
	if cfg.StopFinder.Type == "" {
		cfg.StopFinder.Type = DefaultStopFinderType
	}
	return cfg, nil
}

// Timeout returns the configured HTTP timeout
func (c ClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// Location loads the configured timezone
func (c ClientConfig) Location() (*time.Location, error) {
	tz := c.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	return time.LoadLocation(tz)
}

// SelectEndpoint returns the base URL of the endpoint called name; falls back
// to the first endpoint, then to client.baseURL
func SelectEndpoint(name string) string {
	if name != "" {
		for _, e := range Config.Endpoints {
			if e.Name == name {
				return e.BaseURL
			}
		}
	}
	if len(Config.Endpoints) > 0 {
		return Config.Endpoints[0].BaseURL
	}
	return Config.Client.BaseURL
}
