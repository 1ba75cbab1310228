package models

// Direction distinguishes the two sides of a move or copy operation.
type Direction string

const (
	DirectionFrom Direction = "from"
	DirectionTo   Direction = "to"
)

// Valid reports whether the direction is one of the two known sides.
func (d Direction) Valid() bool {
	return d == DirectionFrom || d == DirectionTo
}

// Transfer is the directional variant of an association, recorded for both
// sides of a MOVED or COPIED operation: one "from" the source container and
// one "to" the destination.
type Transfer struct {
	Association
	Direction Direction
}

// NewTransfer wraps an association with a direction.
func NewTransfer(a Association, dir Direction) Transfer {
	return Transfer{Association: a, Direction: dir}
}

// PairedWith reports whether two transfers account for the two sides of the
// same operation: opposite directions with the same activity, user, and
// timestamp. The subjects differ because the record points at the source on
// one side and the destination on the other. A record with an unknown
// direction pairs with nothing.
func (t Transfer) PairedWith(other Transfer) bool {
	if !t.Direction.Valid() || !other.Direction.Valid() || t.Direction == other.Direction {
		return false
	}
	return t.ActivityID() == other.ActivityID() &&
		t.UserID() == other.UserID() &&
		t.CreatedAt().Equal(other.CreatedAt())
}

// Equal compares the full composite key including direction.
func (t Transfer) Equal(other Transfer) bool {
	return t.Direction == other.Direction && t.Association.Equal(other.Association)
}

// UnmatchedFroms returns every "from" transfer that has no paired "to" in
// the batch. An unmatched "from" is a compliance concern worth reporting,
// not a hard invariant: the destination record may simply not have been
// written yet.
func UnmatchedFroms(transfers []Transfer) []Transfer {
	var unmatched []Transfer
	for i, t := range transfers {
		if t.Direction != DirectionFrom {
			continue
		}
		paired := false
		for j, other := range transfers {
			if i != j && t.PairedWith(other) {
				paired = true
				break
			}
		}
		if !paired {
			unmatched = append(unmatched, t)
		}
	}
	return unmatched
}
