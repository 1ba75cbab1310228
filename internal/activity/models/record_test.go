package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "adms/pkg/domain"
	dErrors "adms/pkg/domain-errors"
)

func validRecord() Record {
	return Record{
		SubjectKind: string(id.KindMatter),
		SubjectID:   uuid.UUID(testMatterID),
		ActivityID:  uuid.UUID(SeededCreated),
		UserID:      uuid.UUID(testUserID),
		CreatedAt:   time.Now().UTC().Add(-time.Hour),
	}
}

func TestFromRecord(t *testing.T) {
	t.Run("well-formed row maps into the domain", func(t *testing.T) {
		rec := validRecord()
		a, err := FromRecord(rec)
		require.NoError(t, err)

		assert.Equal(t, id.MatterSubject(testMatterID), a.Subject())
		assert.Equal(t, SeededCreated, a.ActivityID())
		assert.Equal(t, testUserID, a.UserID())
		assert.True(t, rec.CreatedAt.Equal(a.CreatedAt()))
	})

	t.Run("non-UTC storage timestamps are converted", func(t *testing.T) {
		rec := validRecord()
		rec.CreatedAt = rec.CreatedAt.In(time.FixedZone("CET", 3600))

		a, err := FromRecord(rec)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, a.CreatedAt().Location())
	})

	t.Run("corrupt row surfaces as a conversion error", func(t *testing.T) {
		rec := validRecord()
		rec.UserID = uuid.Nil

		_, err := FromRecord(rec)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConversion))
		assert.True(t, errors.Is(err, &dErrors.Error{Code: dErrors.CodeValidation}), "wraps the validation failure")
	})

	t.Run("unknown subject kind surfaces as a conversion error", func(t *testing.T) {
		rec := validRecord()
		rec.SubjectKind = "folder"

		_, err := FromRecord(rec)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConversion))
	})
}

func TestToRecord(t *testing.T) {
	a, err := FromRecord(validRecord())
	require.NoError(t, err)

	round, err := FromRecord(a.ToRecord())
	require.NoError(t, err)
	assert.True(t, a.Equal(round))
}
