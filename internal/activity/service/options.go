package service

import (
	"log/slog"
	"time"

	activitymetrics "adms/internal/activity/metrics"
)

// serviceConfig holds optional dependencies for the recorder.
type serviceConfig struct {
	logger  *slog.Logger
	metrics *activitymetrics.Metrics
	now     func() time.Time
}

// Option configures the recorder.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *activitymetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

// WithClock overrides the time source. Tests use a fixed clock for
// deterministic timestamp defaults and validation.
func WithClock(now func() time.Time) Option {
	return func(c *serviceConfig) {
		c.now = now
	}
}
