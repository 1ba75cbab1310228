// Package service provides the audit recorder: the entry point outer layers
// call to turn a raw activity occurrence into a validated, stored
// association. Invalid input never reaches the store.
package service

import (
	"context"
	"log/slog"
	"time"

	"adms/internal/activity/models"
	id "adms/pkg/domain"
)

// Store is what the recorder needs from audit persistence.
type Store interface {
	Append(ctx context.Context, a models.Association) error
	ListBySubject(ctx context.Context, subject id.SubjectRef) ([]models.Association, error)
}

// Recorder validates and records audit associations.
type Recorder struct {
	store Store
	cfg   serviceConfig
}

// New builds a Recorder backed by the given store.
func New(store Store, opts ...Option) *Recorder {
	cfg := serviceConfig{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Recorder{store: store, cfg: cfg}
}

// Record constructs, validates, and stores an association. A zero occurredAt
// defaults to the recorder's current UTC time. Validation failures are
// returned as coded errors with every violation accumulated; nothing invalid
// is appended.
func (r *Recorder) Record(ctx context.Context, subject id.SubjectRef, activityID id.ActivityID, userID id.UserID, occurredAt time.Time) (models.Association, error) {
	now := r.cfg.now().UTC()
	if occurredAt.IsZero() {
		occurredAt = now
	}

	a, err := models.NewAssociation(subject, activityID, userID, occurredAt)
	if err != nil {
		r.reject(ctx, subject, "construction failed", "error", err)
		return models.Association{}, err
	}

	start := time.Now()
	vs := a.ValidateAt(now)
	if r.cfg.metrics != nil {
		r.cfg.metrics.ObserveValidate(start)
	}
	if !vs.Empty() {
		if n := len(vs.Referential()); n > 0 && r.cfg.metrics != nil {
			r.cfg.metrics.AddReferentialViolations(n)
		}
		r.reject(ctx, subject, "validation failed", "violations", vs.Messages())
		return models.Association{}, vs.AsError()
	}

	if err := r.store.Append(ctx, a); err != nil {
		return models.Association{}, err
	}
	if r.cfg.metrics != nil {
		r.cfg.metrics.IncrementRecorded()
	}
	r.cfg.logger.InfoContext(ctx, "audit association recorded",
		"subject", subject.String(),
		"activity_id", activityID.String(),
		"user_id", userID.String(),
		"log_type", "audit",
	)
	return a, nil
}

// RecordPrepared validates and stores an association the caller already
// built, typically one carrying attached sub-records for referential
// cross-checking.
func (r *Recorder) RecordPrepared(ctx context.Context, a models.Association) error {
	now := r.cfg.now().UTC()

	start := time.Now()
	vs := a.ValidateAt(now)
	if r.cfg.metrics != nil {
		r.cfg.metrics.ObserveValidate(start)
	}
	if !vs.Empty() {
		if n := len(vs.Referential()); n > 0 && r.cfg.metrics != nil {
			r.cfg.metrics.AddReferentialViolations(n)
		}
		r.reject(ctx, a.Subject(), "validation failed", "violations", vs.Messages())
		return vs.AsError()
	}

	if err := r.store.Append(ctx, a); err != nil {
		return err
	}
	if r.cfg.metrics != nil {
		r.cfg.metrics.IncrementRecorded()
	}
	return nil
}

// Trail returns the subject's audit associations in chronological order.
func (r *Recorder) Trail(ctx context.Context, subject id.SubjectRef) ([]models.Association, error) {
	return r.store.ListBySubject(ctx, subject)
}

func (r *Recorder) reject(ctx context.Context, subject id.SubjectRef, reason string, args ...any) {
	if r.cfg.metrics != nil {
		r.cfg.metrics.IncrementRejected()
	}
	logArgs := append([]any{
		"subject", subject.String(),
		"reason", reason,
		"log_type", "audit",
	}, args...)
	r.cfg.logger.WarnContext(ctx, "audit association rejected", logArgs...)
}
