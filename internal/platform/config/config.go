// Package config builds runtime configuration from the environment so main
// stays lean. Only rule thresholds are tunable; entity rule sets themselves
// are fixed in code.
package config

import (
	"os"
	"strconv"
	"time"

	"adms/pkg/validation"
)

// Model captures the tunable knobs of the data model.
type Model struct {
	Rules validation.Rules
	// RecentWindowDays is the default window for Association.IsRecent
	// consumers (audit dashboards).
	RecentWindowDays int
}

// RecentWindowDays is the default recency window for audit reporting.
var RecentWindowDays = 30

// FromEnv builds a Model config from environment variables. Unset or
// malformed variables fall back to the defaults.
func FromEnv() Model {
	rules := validation.DefaultRules()

	if skew := os.Getenv("ADMS_CLOCK_SKEW"); skew != "" {
		if d, err := time.ParseDuration(skew); err == nil && d >= 0 {
			rules.ClockSkew = d
		}
	}

	if floor := os.Getenv("ADMS_HISTORICAL_FLOOR"); floor != "" {
		if t, err := time.Parse("2006-01-02", floor); err == nil {
			rules.HistoricalFloor = t.UTC()
		}
	}

	if days := os.Getenv("ADMS_RECENT_WINDOW_DAYS"); days != "" {
		if n, err := strconv.Atoi(days); err == nil && n > 0 {
			RecentWindowDays = n
		}
	}

	return Model{Rules: rules, RecentWindowDays: RecentWindowDays}
}

// Apply installs the configured rules as the process-wide defaults.
// Call once at startup, before any validation runs.
func (m Model) Apply() {
	validation.Default = m.Rules
}
