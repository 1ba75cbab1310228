package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "adms/pkg/domain"
)

func transferPair(t *testing.T) (Transfer, Transfer) {
	t.Helper()
	source := id.DocumentID(uuid.MustParse("dddd0000-0000-0000-0000-000000000001"))
	dest := id.DocumentID(uuid.MustParse("dddd0000-0000-0000-0000-000000000002"))

	from, err := NewAssociation(id.DocumentSubject(source), SeededMoved, testUserID, testTime)
	require.NoError(t, err)
	to, err := NewAssociation(id.DocumentSubject(dest), SeededMoved, testUserID, testTime)
	require.NoError(t, err)
	return NewTransfer(from, DirectionFrom), NewTransfer(to, DirectionTo)
}

func TestDirectionValid(t *testing.T) {
	assert.True(t, DirectionFrom.Valid())
	assert.True(t, DirectionTo.Valid())
	assert.False(t, Direction("").Valid())
	assert.False(t, Direction("sideways").Valid())
}

func TestTransferPairedWith(t *testing.T) {
	from, to := transferPair(t)

	t.Run("opposite sides of one operation pair up", func(t *testing.T) {
		assert.True(t, from.PairedWith(to))
		assert.True(t, to.PairedWith(from))
	})

	t.Run("same direction never pairs", func(t *testing.T) {
		other, _ := transferPair(t)
		assert.False(t, from.PairedWith(other))
	})

	t.Run("different user breaks the pairing", func(t *testing.T) {
		otherUser := id.UserID(uuid.MustParse("aaaa0000-0000-0000-0000-000000000009"))
		a, err := NewAssociation(to.Subject(), SeededMoved, otherUser, testTime)
		require.NoError(t, err)
		assert.False(t, from.PairedWith(NewTransfer(a, DirectionTo)))
	})

	t.Run("different timestamp breaks the pairing", func(t *testing.T) {
		a, err := NewAssociation(to.Subject(), SeededMoved, testUserID, testTime.Add(time.Second))
		require.NoError(t, err)
		assert.False(t, from.PairedWith(NewTransfer(a, DirectionTo)))
	})

	t.Run("invalid direction never pairs", func(t *testing.T) {
		bad := from
		bad.Direction = ""
		assert.False(t, bad.PairedWith(to))
	})

	t.Run("direction-less counterpart never pairs", func(t *testing.T) {
		malformed := NewTransfer(to.Association, "")
		assert.False(t, from.PairedWith(malformed))
		assert.False(t, malformed.PairedWith(from))
	})
}

func TestTransferEqual(t *testing.T) {
	from, to := transferPair(t)
	again, _ := transferPair(t)

	assert.True(t, from.Equal(again))
	assert.False(t, from.Equal(to))

	flipped := NewTransfer(from.Association, DirectionTo)
	assert.False(t, from.Equal(flipped))
}

func TestUnmatchedFroms(t *testing.T) {
	from, to := transferPair(t)

	t.Run("complete pair reports nothing", func(t *testing.T) {
		assert.Empty(t, UnmatchedFroms([]Transfer{from, to}))
	})

	t.Run("missing destination is reported", func(t *testing.T) {
		unmatched := UnmatchedFroms([]Transfer{from})
		require.Len(t, unmatched, 1)
		assert.True(t, unmatched[0].Equal(from))
	})

	t.Run("unpaired to records are not reported", func(t *testing.T) {
		assert.Empty(t, UnmatchedFroms([]Transfer{to}))
	})

	t.Run("direction-less record does not satisfy a from", func(t *testing.T) {
		malformed := NewTransfer(to.Association, "")
		unmatched := UnmatchedFroms([]Transfer{from, malformed})
		require.Len(t, unmatched, 1)
		assert.True(t, unmatched[0].Equal(from))
	})

	t.Run("mixed batch reports only the orphaned froms", func(t *testing.T) {
		orphanSubject := id.DocumentSubject(id.DocumentID(uuid.MustParse("dddd0000-0000-0000-0000-00000000000f")))
		a, err := NewAssociation(orphanSubject, SeededCopied, testUserID, testTime.Add(time.Hour))
		require.NoError(t, err)
		orphan := NewTransfer(a, DirectionFrom)

		unmatched := UnmatchedFroms([]Transfer{from, to, orphan})
		require.Len(t, unmatched, 1)
		assert.True(t, unmatched[0].Equal(orphan))
	})
}
