// Package config defines scanner configuration and its loading rules.
//
// Configuration is layered (low to high precedence): compiled defaults, an
// optional YAML file, then MILESTONES_* environment variables. List-valued
// settings such as the milestone thresholds can only come from defaults or
// the file.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/parkrun-tools/milestones/internal/logger"
	"github.com/parkrun-tools/milestones/internal/milestone"
	"github.com/parkrun-tools/milestones/internal/results"
	"github.com/parkrun-tools/milestones/internal/series"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Location is the event series scanned when no flag overrides it.
	Location string `koanf:"location"`

	// EventsLimit caps how many events a scan walks back through.
	EventsLimit int `koanf:"events_limit"`

	// BaseURL is the root of the parkrun site serving result pages.
	BaseURL string `koanf:"base_url"`

	// UserAgent is sent on every results request.
	UserAgent string `koanf:"user_agent"`

	// TimeoutSeconds bounds a single results page fetch.
	TimeoutSeconds int `koanf:"timeout_seconds"`

	// SeniorMilestones are the run counts celebrated for open age groups.
	SeniorMilestones []int `koanf:"senior_milestones"`

	// JuniorMilestones are the run counts celebrated for junior and
	// unknown age groups.
	JuniorMilestones []int `koanf:"junior_milestones"`

	// DataDir is where scan reports are archived.
	DataDir string `koanf:"data_dir"`
}

// New creates a Config populated with compiled defaults.
func New() *Config {
	thresholds := milestone.DefaultThresholds()
	return &Config{
		LogLevel:         "info",
		Location:         string(series.Cytadela),
		EventsLimit:      5,
		BaseURL:          results.DefaultBaseURL,
		UserAgent:        results.DefaultUserAgent,
		TimeoutSeconds:   int(results.DefaultTimeout / time.Second),
		SeniorMilestones: thresholds.Senior,
		JuniorMilestones: thresholds.Junior,
		DataDir:          "~/.parkrun-milestones",
	}
}

// Timeout returns the per-request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Thresholds returns the configured milestone thresholds.
func (c *Config) Thresholds() milestone.Thresholds {
	return milestone.Thresholds{
		Senior: c.SeniorMilestones,
		Junior: c.JuniorMilestones,
	}
}

// Validate reports the first problem that would make the configuration
// unusable for a scan.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base_url must not be empty")
	}
	if c.EventsLimit < 1 {
		return fmt.Errorf("events_limit must be at least 1, got %d", c.EventsLimit)
	}
	if c.TimeoutSeconds < 1 {
		return fmt.Errorf("timeout_seconds must be at least 1, got %d", c.TimeoutSeconds)
	}
	if len(c.SeniorMilestones) == 0 {
		return errors.New("senior_milestones must not be empty")
	}
	if len(c.JuniorMilestones) == 0 {
		return errors.New("junior_milestones must not be empty")
	}
	for _, n := range c.SeniorMilestones {
		if n < 1 {
			return fmt.Errorf("senior milestone %d is not a positive run count", n)
		}
	}
	for _, n := range c.JuniorMilestones {
		if n < 1 {
			return fmt.Errorf("junior milestone %d is not a positive run count", n)
		}
	}
	if _, err := series.ParseLocation(c.Location); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
