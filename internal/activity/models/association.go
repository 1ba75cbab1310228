package models

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	usermodels "adms/internal/user/models"
	id "adms/pkg/domain"
	dErrors "adms/pkg/domain-errors"
	s "adms/pkg/string"
	"adms/pkg/validation"
)

// Subject is the capability an entity needs to be attached to an association
// as its full subject record. Matter, Document and Revision satisfy it.
type Subject interface {
	Ref() id.SubjectRef
	Label() string
	Validate() validation.Violations
}

// Association is one occurrence of an activity: the junction record linking
// a subject entity, an activity classification, a user, and the moment it
// happened. Associations are write-once facts.
//
// Composite key: (subject reference, activity ID, user ID, timestamp).
//
// Invariants:
//   - All identifier components are non-empty
//   - CreatedAt is UTC, not zero, not in the future beyond clock skew, and
//     not before the historical floor
//   - When a full sub-record is attached, its own identifier equals the
//     corresponding foreign key
//
// Sub-records (subject entity, activity, user) are optional attachments for
// display and cross-checking; the foreign keys alone carry identity.
type Association struct {
	subject    id.SubjectRef
	activityID id.ActivityID
	userID     id.UserID
	createdAt  time.Time

	subjectRecord Subject
	activity      *Activity
	user          *usermodels.User
}

// NewAssociation constructs an association from its composite-key parts.
// A zero createdAt defaults to the current UTC time. Construction fails with
// a coded error when any identifier component is empty; it never panics.
func NewAssociation(subject id.SubjectRef, activityID id.ActivityID, userID id.UserID, createdAt time.Time) (Association, error) {
	if subject.IsNil() {
		return Association{}, dErrors.New(dErrors.CodeInvalidInput, "subject reference cannot be empty")
	}
	if activityID.IsNil() {
		return Association{}, dErrors.New(dErrors.CodeInvalidInput, "activity ID cannot be empty")
	}
	if userID.IsNil() {
		return Association{}, dErrors.New(dErrors.CodeInvalidInput, "user ID cannot be empty")
	}
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	return Association{
		subject:    subject,
		activityID: activityID,
		userID:     userID,
		createdAt:  createdAt,
	}, nil
}

// Accessors. The composite key reads back exactly as constructed.

func (a Association) Subject() id.SubjectRef    { return a.subject }
func (a Association) ActivityID() id.ActivityID { return a.activityID }
func (a Association) UserID() id.UserID         { return a.userID }
func (a Association) CreatedAt() time.Time      { return a.createdAt }

// Attachment builders. Each returns a copy; the receiver is unchanged.

// WithSubjectRecord attaches the full subject entity for display and
// referential cross-checking.
func (a Association) WithSubjectRecord(rec Subject) Association {
	a.subjectRecord = rec
	return a
}

// WithActivity attaches the full activity classification.
func (a Association) WithActivity(act Activity) Association {
	a.activity = &act
	return a
}

// WithUser attaches the full user record.
func (a Association) WithUser(u usermodels.User) Association {
	a.user = &u
	return a
}

// SubjectRecord returns the attached subject entity, if any.
func (a Association) SubjectRecord() (Subject, bool) {
	return a.subjectRecord, a.subjectRecord != nil
}

// Activity returns the attached activity classification, if any.
func (a Association) Activity() (Activity, bool) {
	if a.activity == nil {
		return Activity{}, false
	}
	return *a.activity, true
}

// User returns the attached user record, if any.
func (a Association) User() (usermodels.User, bool) {
	if a.user == nil {
		return usermodels.User{}, false
	}
	return *a.user, true
}

// Validate runs the full rule set against the system clock.
func (a Association) Validate() validation.Violations {
	return a.ValidateAt(time.Now().UTC())
}

// ValidateAt runs identifier and timestamp checks, recursively validates any
// attached sub-records, and cross-checks each sub-record's own identifier
// against the corresponding foreign key. All violations are accumulated.
func (a Association) ValidateAt(now time.Time) validation.Violations {
	var vs validation.Violations
	vs = append(vs, validation.RequiredID("SubjectID", a.subject)...)
	vs = append(vs, validation.RequiredID("ActivityID", a.activityID)...)
	vs = append(vs, validation.RequiredID("UserID", a.userID)...)
	vs = append(vs, validation.Timestamp("CreatedAt", a.createdAt, now)...)

	if a.subjectRecord != nil {
		vs = append(vs, prefixed("subject", a.subjectRecord.Validate())...)
		if ref := a.subjectRecord.Ref(); ref != a.subject {
			vs = append(vs, validation.NewReferential(
				fmt.Sprintf("attached subject record %s does not match subject_id %s", ref, a.subject),
				"SubjectID", "Subject.ID"))
		}
	}

	if a.activity != nil {
		if a.subject.Kind().Valid() {
			vs = append(vs, prefixed("activity", a.activity.ValidateFor(a.subject.Kind()))...)
		} else {
			vs = append(vs, prefixed("activity", a.activity.Validate())...)
		}
		if a.activity.ID != a.activityID {
			vs = append(vs, validation.NewReferential(
				fmt.Sprintf("attached activity record %s does not match activity_id %s", a.activity.ID, a.activityID),
				"ActivityID", "Activity.ID"))
		}
	}

	if a.user != nil {
		vs = append(vs, prefixed("user", a.user.Validate())...)
		if a.user.ID != a.userID {
			vs = append(vs, validation.NewReferential(
				fmt.Sprintf("attached user record %s does not match user_id %s", a.user.ID, a.userID),
				"UserID", "User.ID"))
		}
	}

	return vs
}

// IsValid is the quick check for latency-sensitive paths, consistent with
// ValidateAt by sharing its predicates.
func (a Association) IsValid() bool {
	return a.IsValidAt(time.Now().UTC())
}

func (a Association) IsValidAt(now time.Time) bool {
	if a.subject.IsNil() || a.activityID.IsNil() || a.userID.IsNil() {
		return false
	}
	if !validation.TimestampOK(a.createdAt, now) {
		return false
	}
	if a.subjectRecord != nil &&
		(!a.subjectRecord.Validate().Empty() || a.subjectRecord.Ref() != a.subject) {
		return false
	}
	if a.activity != nil {
		if a.subject.Kind().Valid() {
			if !a.activity.ValidateFor(a.subject.Kind()).Empty() {
				return false
			}
		} else if !a.activity.Validate().Empty() {
			return false
		}
		if a.activity.ID != a.activityID {
			return false
		}
	}
	if a.user != nil && (!a.user.IsValid() || a.user.ID != a.userID) {
		return false
	}
	return true
}

// prefixed namespaces sub-record violations under the attachment name.
func prefixed(prefix string, vs validation.Violations) validation.Violations {
	out := make(validation.Violations, 0, len(vs))
	for _, v := range vs {
		fields := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = prefix + "." + f
		}
		out = append(out, validation.Violation{Fields: fields, Message: v.Message, Referential: v.Referential})
	}
	return out
}

// Classification queries. These are convenience predicates over the activity
// name, not separate state. When no activity record is attached the name is
// recovered from the seeded identifier constants.

func (a Association) IsCreation() bool { return a.isNamed(ActivityCreated) }
func (a Association) IsDeletion() bool { return a.isNamed(ActivityDeleted) }
func (a Association) IsCheckIn() bool  { return a.isNamed(ActivityCheckedIn) }
func (a Association) IsCheckOut() bool { return a.isNamed(ActivityCheckedOut) }

// IsTransfer reports whether the activity moves content between containers:
// MOVED or COPIED.
func (a Association) IsTransfer() bool {
	return a.isNamed(ActivityMoved) || a.isNamed(ActivityCopied)
}

func (a Association) isNamed(canonical string) bool {
	return s.NormalizeEqual(a.activityName(), canonical)
}

func (a Association) activityName() string {
	if a.activity != nil {
		return a.activity.Name
	}
	for name, aid := range seededByName {
		if aid == a.activityID {
			return name
		}
	}
	return ""
}

// AppropriateFor reports whether this activity makes sense given the
// subject's current lifecycle state. There is no state machine here; the
// caller supplies the external facts and gets a pure predicate back.
func (a Association) AppropriateFor(subjectExists, subjectDeleted bool) bool {
	switch {
	case a.IsCreation():
		return !subjectExists
	case a.IsDeletion():
		return subjectExists && !subjectDeleted
	case a.isNamed(ActivityRestored):
		return subjectDeleted
	default:
		return subjectExists && !subjectDeleted
	}
}

// AgeInDays returns how many whole days have passed since the activity.
func (a Association) AgeInDays(now time.Time) int {
	return int(now.Sub(a.createdAt).Hours() / 24)
}

// IsRecent reports whether the activity happened within the given window.
func (a Association) IsRecent(now time.Time, withinDays int) bool {
	return a.AgeInDays(now) <= withinDays
}

// DisplayText builds the audit summary "<subject> <ACTIVITY> by <user>".
// Missing sub-records render as the given placeholder; the summary never
// fails on absent navigation data.
func (a Association) DisplayText(missing string) string {
	subject := missing
	if a.subjectRecord != nil {
		if label := a.subjectRecord.Label(); label != "" {
			subject = label
		}
	}
	activity := missing
	if name := s.Normalize(a.activityName()); name != "" {
		activity = strings.ToUpper(name)
	}
	user := missing
	if a.user != nil {
		if label := a.user.Label(); label != "" {
			user = label
		}
	}
	return fmt.Sprintf("%s %s by %s", subject, activity, user)
}

// Summary is DisplayText with the standard placeholder.
func (a Association) Summary() string {
	return a.DisplayText("(unknown)")
}

// Key is the comparable composite key of an association, usable directly as
// a map key for deduplication. The timestamp is captured as the UTC instant.
type Key struct {
	Subject    id.SubjectRef
	ActivityID id.ActivityID
	UserID     id.UserID
	UnixNano   int64
}

// Key returns the association's composite key.
func (a Association) Key() Key {
	return Key{
		Subject:    a.subject,
		ActivityID: a.activityID,
		UserID:     a.userID,
		UnixNano:   a.createdAt.UTC().UnixNano(),
	}
}

// Equal reports whether two associations share the whole composite key.
// Attached sub-records do not participate in identity.
func (a Association) Equal(other Association) bool {
	return a.Key() == other.Key()
}

// Hash combines exactly the composite-key fields Equal uses, so equal
// associations always hash identically.
func (a Association) Hash() uint64 {
	h := fnv.New64a()
	raw := a.subject.UUID()
	h.Write(raw[:])
	h.Write([]byte(a.subject.Kind()))
	act := [16]byte(a.activityID)
	h.Write(act[:])
	usr := [16]byte(a.userID)
	h.Write(usr[:])
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(a.createdAt.UTC().UnixNano()))
	h.Write(ts[:])
	return h.Sum64()
}

// Compare orders associations chronologically: timestamp ascending, then
// subject reference ascending as a stable tie-break. The result is a total
// order suitable for sorting audit logs reproducibly.
func (a Association) Compare(other Association) int {
	switch {
	case a.createdAt.Before(other.createdAt):
		return -1
	case a.createdAt.After(other.createdAt):
		return 1
	}
	return a.subject.Compare(other.subject)
}
