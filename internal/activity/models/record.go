package models

import (
	"time"

	"github.com/google/uuid"

	id "adms/pkg/domain"
	dErrors "adms/pkg/domain-errors"
)

// Record is the raw storage row shape for an association, as the persistence
// layer supplies it. Fields are untyped on purpose; FromRecord is the trust
// boundary that maps them into the domain.
type Record struct {
	SubjectKind string
	SubjectID   uuid.UUID
	ActivityID  uuid.UUID
	UserID      uuid.UUID
	CreatedAt   time.Time
}

// FromRecord maps a stored row into a validated Association. Unlike normal
// input validation, a row that fails full validation here signals upstream
// data corruption: the failure is returned as a conversion error so callers
// surface it instead of treating it as user input.
func FromRecord(rec Record) (Association, error) {
	a := Association{
		subject:    id.NewSubjectRef(id.EntityKind(rec.SubjectKind), rec.SubjectID),
		activityID: id.ActivityID(rec.ActivityID),
		userID:     id.UserID(rec.UserID),
		createdAt:  rec.CreatedAt.UTC(),
	}
	if vs := a.Validate(); !vs.Empty() {
		return Association{}, &dErrors.Error{
			Code:    dErrors.CodeConversion,
			Message: "stored audit record failed validation after mapping",
			Err:     vs.AsError(),
		}
	}
	return a, nil
}

// ToRecord maps the association back to its storage row shape.
func (a Association) ToRecord() Record {
	return Record{
		SubjectKind: string(a.subject.Kind()),
		SubjectID:   a.subject.UUID(),
		ActivityID:  uuid.UUID(a.activityID),
		UserID:      uuid.UUID(a.userID),
		CreatedAt:   a.createdAt,
	}
}
