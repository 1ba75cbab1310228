// Package models defines the Document and Revision entities.
package models

import (
	"hash/fnv"
	"unicode"

	id "adms/pkg/domain"
	s "adms/pkg/string"
	"adms/pkg/validation"
)

// Document is a file stored under a matter.
//
// Invariants:
//   - ID and MatterID, when assigned, are never the nil sentinel
//   - FileName satisfies the description rules
//   - Extension, when set, is a short alphanumeric token without the dot
type Document struct {
	ID        id.DocumentID
	MatterID  id.MatterID
	FileName  string
	Extension string
	Archived  bool
	Deleted   bool

	// Revisions is the optionally loaded version history. Navigation data:
	// validated recursively when present, absent when nil, and never part
	// of document identity.
	Revisions []Revision
}

const maxExtensionLength = 10

// Validate runs the full rule set and accumulates every violation.
func (d Document) Validate() validation.Violations {
	var vs validation.Violations
	vs = append(vs, validation.RequiredID("DocumentID", d.ID)...)
	vs = append(vs, validation.RequiredID("MatterID", d.MatterID)...)
	vs = append(vs, validation.Description("FileName", d.FileName)...)
	if d.Extension != "" && !extensionOK(d.Extension) {
		vs = append(vs, validation.New("must be a short alphanumeric token", "Extension"))
	}
	vs = append(vs, validation.Each("Revisions", d.Revisions)...)
	return vs
}

// IsValid is the quick check, consistent with Validate by sharing its
// predicates.
func (d Document) IsValid() bool {
	if d.ID.IsNil() || d.MatterID.IsNil() ||
		!validation.DescriptionOK(d.FileName) ||
		(d.Extension != "" && !extensionOK(d.Extension)) {
		return false
	}
	for _, r := range d.Revisions {
		if !r.IsValid() {
			return false
		}
	}
	return true
}

// Equal compares by identifier when both sides have one, otherwise by folded
// file name, extension and lifecycle flags.
func (d Document) Equal(other Document) bool {
	if !d.ID.IsNil() && !other.ID.IsNil() {
		return d.ID == other.ID
	}
	return s.NormalizeEqual(d.FileName, other.FileName) &&
		s.FoldEqual(d.Extension, other.Extension) &&
		d.Archived == other.Archived &&
		d.Deleted == other.Deleted
}

// Hash mirrors Equal's branch logic.
func (d Document) Hash() uint64 {
	h := fnv.New64a()
	if !d.ID.IsNil() {
		raw := [16]byte(d.ID)
		h.Write(raw[:])
		return h.Sum64()
	}
	h.Write([]byte(s.Fold(d.FileName)))
	h.Write([]byte{0})
	h.Write([]byte(s.Fold(d.Extension)))
	h.Write(flagBytes(d.Archived, d.Deleted))
	return h.Sum64()
}

// Ref returns the subject reference for audit associations.
func (d Document) Ref() id.SubjectRef {
	return id.DocumentSubject(d.ID)
}

// Label returns the display name used in audit summaries.
func (d Document) Label() string {
	name := s.Normalize(d.FileName)
	if d.Extension != "" {
		return name + "." + d.Extension
	}
	return name
}

func extensionOK(ext string) bool {
	if len(ext) > maxExtensionLength {
		return false
	}
	for _, r := range ext {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
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
