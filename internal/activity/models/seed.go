package models

import (
	"github.com/google/uuid"

	id "adms/pkg/domain"
	s "adms/pkg/string"
)

// Seeded activity identifiers. These are the fixed identifiers the canonical
// activities are created with in every deployment, so audit records written
// by different installations agree on classification keys.
var (
	SeededCreated    = id.ActivityID(uuid.MustParse("ac000000-0000-0000-0000-000000000001"))
	SeededSaved      = id.ActivityID(uuid.MustParse("ac000000-0000-0000-0000-000000000002"))
	SeededDeleted    = id.ActivityID(uuid.MustParse("ac000000-0000-0000-0000-000000000003"))
	SeededRestored   = id.ActivityID(uuid.MustParse("ac000000-0000-0000-0000-000000000004"))
	SeededMoved      = id.ActivityID(uuid.MustParse("ac000000-0000-0000-0000-000000000005"))
	SeededCopied     = id.ActivityID(uuid.MustParse("ac000000-0000-0000-0000-000000000006"))
	SeededCheckedIn  = id.ActivityID(uuid.MustParse("ac000000-0000-0000-0000-000000000007"))
	SeededCheckedOut = id.ActivityID(uuid.MustParse("ac000000-0000-0000-0000-000000000008"))
	SeededArchived   = id.ActivityID(uuid.MustParse("ac000000-0000-0000-0000-000000000009"))
	SeededViewed     = id.ActivityID(uuid.MustParse("ac000000-0000-0000-0000-00000000000a"))
)

var seededByName = map[string]id.ActivityID{
	ActivityCreated:    SeededCreated,
	ActivitySaved:      SeededSaved,
	ActivityDeleted:    SeededDeleted,
	ActivityRestored:   SeededRestored,
	ActivityMoved:      SeededMoved,
	ActivityCopied:     SeededCopied,
	ActivityCheckedIn:  SeededCheckedIn,
	ActivityCheckedOut: SeededCheckedOut,
	ActivityArchived:   SeededArchived,
	ActivityViewed:     SeededViewed,
}

// SeededActivityID returns the fixed identifier for a canonical activity
// name. Lookup ignores case and whitespace runs; unknown names return the
// nil sentinel.
func SeededActivityID(name string) id.ActivityID {
	_, aid, ok := seededLookup(name)
	if !ok {
		return id.ActivityID(uuid.Nil)
	}
	return aid
}

// SeededActivity returns the full seeded Activity record for a canonical
// name, with ok reporting whether the name is known. The returned record
// carries the canonical spelling regardless of the input's casing.
func SeededActivity(name string) (Activity, bool) {
	canonical, aid, ok := seededLookup(name)
	if !ok {
		return Activity{}, false
	}
	return Activity{ID: aid, Name: canonical}, true
}

func seededLookup(name string) (string, id.ActivityID, bool) {
	for canonical, aid := range seededByName {
		if s.NormalizeEqual(name, canonical) {
			return canonical, aid, true
		}
	}
	return "", id.ActivityID(uuid.Nil), false
}
