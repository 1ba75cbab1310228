package models

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	id "adms/pkg/domain"
	"adms/pkg/validation"
)

// Revision is a numbered version of a document. Revision numbers start at 1
// and are unique per document.
type Revision struct {
	ID         id.RevisionID
	DocumentID id.DocumentID
	Number     int
	Deleted    bool
}

// Validate runs the full rule set and accumulates every violation.
func (r Revision) Validate() validation.Violations {
	var vs validation.Violations
	vs = append(vs, validation.RequiredID("RevisionID", r.ID)...)
	vs = append(vs, validation.RequiredID("DocumentID", r.DocumentID)...)
	if r.Number < 1 {
		vs = append(vs, validation.New("must be 1 or greater", "Number"))
	}
	return vs
}

// IsValid is the quick check, consistent with Validate by sharing its
// predicates.
func (r Revision) IsValid() bool {
	return !r.ID.IsNil() && !r.DocumentID.IsNil() && r.Number >= 1
}

// Equal compares by identifier when both sides have one, otherwise by parent
// document and revision number.
func (r Revision) Equal(other Revision) bool {
	if !r.ID.IsNil() && !other.ID.IsNil() {
		return r.ID == other.ID
	}
	return r.DocumentID == other.DocumentID &&
		r.Number == other.Number &&
		r.Deleted == other.Deleted
}

// Hash mirrors Equal's branch logic.
func (r Revision) Hash() uint64 {
	h := fnv.New64a()
	if !r.ID.IsNil() {
		raw := [16]byte(r.ID)
		h.Write(raw[:])
		return h.Sum64()
	}
	raw := [16]byte(r.DocumentID)
	h.Write(raw[:])
	var num [8]byte
	binary.BigEndian.PutUint64(num[:], uint64(r.Number))
	h.Write(num[:])
	h.Write(flagBytes(r.Deleted))
	return h.Sum64()
}

// Ref returns the subject reference for audit associations.
func (r Revision) Ref() id.SubjectRef {
	return id.RevisionSubject(r.ID)
}

// Label returns the display name used in audit summaries.
func (r Revision) Label() string {
	return fmt.Sprintf("revision %d", r.Number)
}
