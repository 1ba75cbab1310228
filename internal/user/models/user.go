// Package models defines the User reference used across audit records.
package models

import (
	"hash/fnv"

	id "adms/pkg/domain"
	s "adms/pkg/string"
	"adms/pkg/validation"
)

// User is the reference to a person recorded against audit activity.
// Name must satisfy professional-naming rules: bounded length, a restricted
// character set, and no collision with reserved system account names.
type User struct {
	ID   id.UserID
	Name string
}

// Validate runs the full rule set and accumulates every violation.
func (u User) Validate() validation.Violations {
	var vs validation.Violations
	vs = append(vs, validation.RequiredID("UserID", u.ID)...)
	vs = append(vs, validation.ShortText("Name", u.Name)...)
	return vs
}

// IsValid is the quick check, consistent with Validate by sharing its
// predicates.
func (u User) IsValid() bool {
	return !u.ID.IsNil() && validation.ShortTextOK(u.Name)
}

// Equal compares by identifier when both sides have one, otherwise by
// normalized name. The fallback supports pre-persistence deduplication.
func (u User) Equal(other User) bool {
	if !u.ID.IsNil() && !other.ID.IsNil() {
		return u.ID == other.ID
	}
	return s.NormalizeEqual(u.Name, other.Name)
}

// Hash mirrors Equal's branch logic: identifier when present, otherwise the
// folded name.
func (u User) Hash() uint64 {
	h := fnv.New64a()
	if !u.ID.IsNil() {
		raw := [16]byte(u.ID)
		h.Write(raw[:])
		return h.Sum64()
	}
	h.Write([]byte(s.Fold(u.Name)))
	return h.Sum64()
}

// Label returns the display name used in audit summaries.
func (u User) Label() string {
	return s.Normalize(u.Name)
}
