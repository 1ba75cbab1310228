// Package testutil provides deterministic fixtures and builders for tests.
package testutil

import (
	"time"

	"github.com/google/uuid"

	activitymodels "adms/internal/activity/models"
	documentmodels "adms/internal/document/models"
	mattermodels "adms/internal/matter/models"
	usermodels "adms/internal/user/models"
	id "adms/pkg/domain"
)

// TestIDs provides convenient pre-generated IDs for tests.
// Use these for deterministic test data.
var TestIDs = struct {
	MatterID1   id.MatterID
	MatterID2   id.MatterID
	DocumentID1 id.DocumentID
	DocumentID2 id.DocumentID
	RevisionID1 id.RevisionID
	UserID1     id.UserID
	UserID2     id.UserID
}{
	MatterID1:   id.MatterID(uuid.MustParse("11111111-1111-1111-1111-111111111111")),
	MatterID2:   id.MatterID(uuid.MustParse("22222222-2222-2222-2222-222222222222")),
	DocumentID1: id.DocumentID(uuid.MustParse("dddd0000-0000-0000-0000-000000000001")),
	DocumentID2: id.DocumentID(uuid.MustParse("dddd0000-0000-0000-0000-000000000002")),
	RevisionID1: id.RevisionID(uuid.MustParse("eeee0000-0000-0000-0000-000000000001")),
	UserID1:     id.UserID(uuid.MustParse("aaaa0000-0000-0000-0000-000000000001")),
	UserID2:     id.UserID(uuid.MustParse("aaaa0000-0000-0000-0000-000000000002")),
}

// TestTime is a fixed reference instant used as "now" in deterministic tests.
var TestTime = time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)

// NewMatter returns a valid matter with sensible defaults.
func NewMatter() mattermodels.Matter {
	return mattermodels.Matter{
		ID:          TestIDs.MatterID1,
		Description: "Smith Family Trust",
	}
}

// NewDocument returns a valid document with sensible defaults.
func NewDocument() documentmodels.Document {
	return documentmodels.Document{
		ID:        TestIDs.DocumentID1,
		MatterID:  TestIDs.MatterID1,
		FileName:  "Trust Deed",
		Extension: "pdf",
	}
}

// NewUser returns a valid user with sensible defaults.
func NewUser() usermodels.User {
	return usermodels.User{
		ID:   TestIDs.UserID1,
		Name: "Jane Smith",
	}
}

// AssociationBuilder provides a fluent interface for building test
// associations.
type AssociationBuilder struct {
	subject    id.SubjectRef
	activityID id.ActivityID
	userID     id.UserID
	createdAt  time.Time
}

// NewAssociationBuilder starts from a valid association: the default matter,
// the seeded CREATED activity, the default user, and TestTime.
func NewAssociationBuilder() *AssociationBuilder {
	return &AssociationBuilder{
		subject:    id.MatterSubject(TestIDs.MatterID1),
		activityID: activitymodels.SeededCreated,
		userID:     TestIDs.UserID1,
		createdAt:  TestTime,
	}
}

func (b *AssociationBuilder) WithSubject(ref id.SubjectRef) *AssociationBuilder {
	b.subject = ref
	return b
}

func (b *AssociationBuilder) WithActivityID(aid id.ActivityID) *AssociationBuilder {
	b.activityID = aid
	return b
}

func (b *AssociationBuilder) WithUserID(uid id.UserID) *AssociationBuilder {
	b.userID = uid
	return b
}

func (b *AssociationBuilder) WithCreatedAt(t time.Time) *AssociationBuilder {
	b.createdAt = t
	return b
}

// Build constructs the association, panicking on invalid fixture setup so
// broken test data fails loudly at the call site.
func (b *AssociationBuilder) Build() activitymodels.Association {
	a, err := activitymodels.NewAssociation(b.subject, b.activityID, b.userID, b.createdAt)
	if err != nil {
		panic("testutil: invalid association fixture: " + err.Error())
	}
	return a
}
