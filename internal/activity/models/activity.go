// Package models defines the activity classification and the audit
// association records that link subjects, activities, users, and timestamps
// into the audit trail.
package models

import (
	"hash/fnv"

	id "adms/pkg/domain"
	s "adms/pkg/string"
	"adms/pkg/validation"
)

// Canonical activity names. The per-entity-kind enumerations below are
// closed; custom activities opt out via Activity.Custom.
const (
	ActivityCreated    = "CREATED"
	ActivitySaved      = "SAVED"
	ActivityDeleted    = "DELETED"
	ActivityRestored   = "RESTORED"
	ActivityMoved      = "MOVED"
	ActivityCopied     = "COPIED"
	ActivityCheckedIn  = "CHECKED IN"
	ActivityCheckedOut = "CHECKED OUT"
	ActivityArchived   = "ARCHIVED"
	ActivityViewed     = "VIEWED"
)

// allowedByKind is the closed activity enumeration per entity kind.
var allowedByKind = map[id.EntityKind][]string{
	id.KindMatter: {
		ActivityCreated, ActivitySaved, ActivityDeleted, ActivityRestored,
		ActivityArchived, ActivityViewed,
	},
	id.KindDocument: {
		ActivityCreated, ActivitySaved, ActivityDeleted, ActivityRestored,
		ActivityMoved, ActivityCopied, ActivityCheckedIn, ActivityCheckedOut,
		ActivityArchived, ActivityViewed,
	},
	id.KindRevision: {
		ActivityCreated, ActivitySaved, ActivityDeleted, ActivityRestored,
		ActivityViewed,
	},
}

// AllowedActivities returns the canonical activity names permitted for an
// entity kind. The returned slice is a copy.
func AllowedActivities(kind id.EntityKind) []string {
	names := allowedByKind[kind]
	return append([]string(nil), names...)
}

// ActivityAllowed reports whether a name is in the closed enumeration for
// the kind. Comparison ignores case and whitespace runs.
func ActivityAllowed(kind id.EntityKind, name string) bool {
	for _, allowed := range allowedByKind[kind] {
		if s.NormalizeEqual(name, allowed) {
			return true
		}
	}
	return false
}

// Activity classifies what happened to a subject. Name is drawn from the
// closed per-kind enumeration unless Custom is set.
type Activity struct {
	ID     id.ActivityID
	Name   string
	Custom bool
}

// Validate runs the identifier and name rules.
func (a Activity) Validate() validation.Violations {
	var vs validation.Violations
	vs = append(vs, validation.RequiredID("ActivityID", a.ID)...)
	vs = append(vs, validation.ShortText("Name", a.Name)...)
	return vs
}

// ValidateFor additionally checks membership in the closed enumeration for
// the given entity kind. Custom activities skip the membership check.
func (a Activity) ValidateFor(kind id.EntityKind) validation.Violations {
	vs := a.Validate()
	if !a.Custom && s.Normalize(a.Name) != "" && !ActivityAllowed(kind, a.Name) {
		vs = append(vs, validation.New("is not an allowed activity for "+string(kind)+" records", "Name"))
	}
	return vs
}

// IsValid is the quick check, consistent with Validate.
func (a Activity) IsValid() bool {
	return !a.ID.IsNil() && validation.ShortTextOK(a.Name)
}

// Is reports whether the activity has the given canonical name, ignoring
// case and whitespace runs.
func (a Activity) Is(name string) bool {
	return s.NormalizeEqual(a.Name, name)
}

// Equal compares by identifier when both sides have one, otherwise by
// normalized name and the custom flag.
func (a Activity) Equal(other Activity) bool {
	if !a.ID.IsNil() && !other.ID.IsNil() {
		return a.ID == other.ID
	}
	return s.NormalizeEqual(a.Name, other.Name) && a.Custom == other.Custom
}

// Hash mirrors Equal's branch logic.
func (a Activity) Hash() uint64 {
	h := fnv.New64a()
	if !a.ID.IsNil() {
		raw := [16]byte(a.ID)
		h.Write(raw[:])
		return h.Sum64()
	}
	h.Write([]byte(s.Fold(a.Name)))
	if a.Custom {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// Label returns the canonical display form of the activity name.
func (a Activity) Label() string {
	return s.Normalize(a.Name)
}
