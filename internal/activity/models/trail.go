package models

import "sort"

// Trail is a deduplicating, chronologically ordered collection of
// associations, the in-memory shape of an audit trail. Duplicate records
// (same composite key) are dropped on append; iteration order is timestamp
// ascending with the subject reference as a stable tie-break.
type Trail struct {
	byKey map[Key]struct{}
	items []Association
}

// NewTrail returns an empty trail.
func NewTrail() *Trail {
	return &Trail{byKey: make(map[Key]struct{})}
}

// Append adds an association unless an equal one is already present.
// Returns true when the association was added.
func (t *Trail) Append(a Association) bool {
	key := a.Key()
	if _, ok := t.byKey[key]; ok {
		return false
	}
	t.byKey[key] = struct{}{}
	t.items = append(t.items, a)
	return true
}

// Contains reports whether an equal association is already recorded.
func (t *Trail) Contains(a Association) bool {
	_, ok := t.byKey[a.Key()]
	return ok
}

// Len returns the number of distinct associations recorded.
func (t *Trail) Len() int { return len(t.items) }

// Sorted returns the associations in chronological order. The underlying
// trail keeps insertion order; the returned slice is a sorted copy.
func (t *Trail) Sorted() []Association {
	out := append([]Association(nil), t.items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Compare(out[j]) < 0
	})
	return out
}

// Render returns the human-readable summary lines in chronological order,
// substituting the given placeholder for missing sub-records.
func (t *Trail) Render(missing string) []string {
	sorted := t.Sorted()
	out := make([]string, len(sorted))
	for i, a := range sorted {
		out[i] = a.DisplayText(missing)
	}
	return out
}
