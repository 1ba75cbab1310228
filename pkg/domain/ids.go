// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "adms/pkg/domain-errors"
)

// Distinct ID types - compiler prevents passing a MatterID where a DocumentID is expected.
type (
	MatterID   uuid.UUID
	DocumentID uuid.UUID
	RevisionID uuid.UUID
	UserID     uuid.UUID
	ActivityID uuid.UUID
)

// Parse functions - use at trust boundaries (store loads, API inputs).

func ParseMatterID(s string) (MatterID, error) {
	id, err := parseUUID(s, "matter ID")
	return MatterID(id), err
}

func ParseDocumentID(s string) (DocumentID, error) {
	id, err := parseUUID(s, "document ID")
	return DocumentID(id), err
}

func ParseRevisionID(s string) (RevisionID, error) {
	id, err := parseUUID(s, "revision ID")
	return RevisionID(id), err
}

func ParseUserID(s string) (UserID, error) {
	id, err := parseUUID(s, "user ID")
	return UserID(id), err
}

func ParseActivityID(s string) (ActivityID, error) {
	id, err := parseUUID(s, "activity ID")
	return ActivityID(id), err
}

// String methods - for logging and display.

func (id MatterID) String() string   { return uuid.UUID(id).String() }
func (id DocumentID) String() string { return uuid.UUID(id).String() }
func (id RevisionID) String() string { return uuid.UUID(id).String() }
func (id UserID) String() string     { return uuid.UUID(id).String() }
func (id ActivityID) String() string { return uuid.UUID(id).String() }

// IsNil checks - used by validators to detect the all-zero sentinel.

func (id MatterID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id DocumentID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id RevisionID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id UserID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id ActivityID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// parseUUID is the shared validation logic.
// Note: Nil UUIDs are allowed here. Use IsNil() in validators for business
// validation, which lets store lookups return proper "not found" errors
// instead of rejecting the lookup key outright.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	return id, nil
}
