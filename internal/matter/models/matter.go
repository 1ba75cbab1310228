// Package models defines the Matter entity, the top-level container for
// legal work in the document management model.
package models

import (
	"hash/fnv"

	id "adms/pkg/domain"
	s "adms/pkg/string"
	"adms/pkg/validation"
)

// Matter is a legal matter: the file under which documents and their audit
// trail are organized.
//
// Invariants:
//   - ID, when assigned, is never the nil sentinel
//   - Description satisfies the description rules (length, letter content,
//     alphanumeric edges, no reserved-phrase collision)
//   - A deleted matter stays deleted; flags only move forward under
//     retention policy
//
// Matters may exist briefly without an identifier (pre-persistence); equality
// falls back to normalized content so deduplication works before an ID is
// assigned.
type Matter struct {
	ID          id.MatterID
	Description string
	Archived    bool
	Deleted     bool
}

// Validate runs the full rule set and accumulates every violation.
func (m Matter) Validate() validation.Violations {
	var vs validation.Violations
	vs = append(vs, validation.RequiredID("MatterID", m.ID)...)
	vs = append(vs, validation.Description("Description", m.Description)...)
	return vs
}

// IsValid is the quick check for latency-sensitive paths. It applies the
// same predicates as Validate without building the violation list.
func (m Matter) IsValid() bool {
	return !m.ID.IsNil() && validation.DescriptionOK(m.Description)
}

// Equal compares two matters. When both sides carry an identifier the
// identifiers decide; otherwise normalized description plus lifecycle flags
// decide, so pre-persistence records deduplicate correctly.
func (m Matter) Equal(other Matter) bool {
	if !m.ID.IsNil() && !other.ID.IsNil() {
		return m.ID == other.ID
	}
	return s.NormalizeEqual(m.Description, other.Description) &&
		m.Archived == other.Archived &&
		m.Deleted == other.Deleted
}

// Hash combines exactly the fields Equal uses, in the same branch logic:
// the identifier when present, otherwise folded description and flags.
func (m Matter) Hash() uint64 {
	h := fnv.New64a()
	if !m.ID.IsNil() {
		raw := m.ID
		h.Write(rawMatterID(raw))
		return h.Sum64()
	}
	h.Write([]byte(s.Fold(m.Description)))
	h.Write(flagBytes(m.Archived, m.Deleted))
	return h.Sum64()
}

// Ref returns the subject reference for audit associations.
func (m Matter) Ref() id.SubjectRef {
	return id.MatterSubject(m.ID)
}

// Label returns the human-readable name used in audit summaries.
func (m Matter) Label() string {
	return s.Normalize(m.Description)
}

func rawMatterID(mid id.MatterID) []byte {
	raw := [16]byte(mid)
	return raw[:]
}

func flagBytes(flags ...bool) []byte {
	out := make([]byte, len(flags))
	for i, f := range flags {
		if f {
			out[i] = 1
		}
	}
	return out
}
