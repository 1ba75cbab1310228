package domain

import "github.com/google/uuid"

// EntityKind identifies which kind of record an audit association points at.
type EntityKind string

const (
	KindMatter   EntityKind = "matter"
	KindDocument EntityKind = "document"
	KindRevision EntityKind = "revision"
)

// Valid reports whether the kind is one of the known entity kinds.
func (k EntityKind) Valid() bool {
	switch k {
	case KindMatter, KindDocument, KindRevision:
		return true
	}
	return false
}

// SubjectRef is a kind-tagged reference to the subject of an audit
// association. It erases the compile-time ID distinction at the junction
// boundary while keeping the kind explicit, so one association type can
// reference matters, documents, and revisions.
//
// SubjectRef is comparable and safe to use as a map key.
type SubjectRef struct {
	kind EntityKind
	id   uuid.UUID
}

// MatterSubject builds a SubjectRef for a matter.
func MatterSubject(id MatterID) SubjectRef {
	return SubjectRef{kind: KindMatter, id: uuid.UUID(id)}
}

// DocumentSubject builds a SubjectRef for a document.
func DocumentSubject(id DocumentID) SubjectRef {
	return SubjectRef{kind: KindDocument, id: uuid.UUID(id)}
}

// RevisionSubject builds a SubjectRef for a revision.
func RevisionSubject(id RevisionID) SubjectRef {
	return SubjectRef{kind: KindRevision, id: uuid.UUID(id)}
}

// NewSubjectRef builds a SubjectRef from raw parts. Used by conversion
// factories that load records from untyped storage rows.
func NewSubjectRef(kind EntityKind, id uuid.UUID) SubjectRef {
	return SubjectRef{kind: kind, id: id}
}

// Kind returns the entity kind of the referenced record.
func (r SubjectRef) Kind() EntityKind { return r.kind }

// UUID returns the raw identifier of the referenced record.
func (r SubjectRef) UUID() uuid.UUID { return r.id }

// IsNil reports whether the reference carries the all-zero sentinel or an
// unknown kind.
func (r SubjectRef) IsNil() bool {
	return r.id == uuid.Nil || !r.kind.Valid()
}

func (r SubjectRef) String() string {
	return string(r.kind) + ":" + r.id.String()
}

// Compare orders references by raw identifier bytes, then kind. This is the
// stable tie-break used for chronological audit ordering.
func (r SubjectRef) Compare(other SubjectRef) int {
	for i := range r.id {
		switch {
		case r.id[i] < other.id[i]:
			return -1
		case r.id[i] > other.id[i]:
			return 1
		}
	}
	switch {
	case r.kind < other.kind:
		return -1
	case r.kind > other.kind:
		return 1
	}
	return 0
}
