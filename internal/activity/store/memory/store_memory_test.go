package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adms/internal/activity/models"
	id "adms/pkg/domain"
	"adms/pkg/testutil"
)

func TestInMemoryStoreAppend(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	a := testutil.NewAssociationBuilder().Build()

	require.NoError(t, store.Append(ctx, a))

	t.Run("duplicate composite keys are dropped", func(t *testing.T) {
		require.NoError(t, store.Append(ctx, testutil.NewAssociationBuilder().Build()))
		rows, err := store.ListBySubject(ctx, a.Subject())
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("distinct keys accumulate", func(t *testing.T) {
		later := testutil.NewAssociationBuilder().
			WithActivityID(models.SeededViewed).
			WithCreatedAt(testutil.TestTime.Add(time.Minute)).
			Build()
		require.NoError(t, store.Append(ctx, later))

		rows, err := store.ListBySubject(ctx, a.Subject())
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})
}

func TestInMemoryStoreListBySubject(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	matterSubject := id.MatterSubject(testutil.TestIDs.MatterID1)
	docSubject := id.DocumentSubject(testutil.TestIDs.DocumentID1)

	second := testutil.NewAssociationBuilder().
		WithActivityID(models.SeededSaved).
		WithCreatedAt(testutil.TestTime.Add(time.Minute)).
		Build()
	first := testutil.NewAssociationBuilder().Build()
	other := testutil.NewAssociationBuilder().
		WithSubject(docSubject).
		Build()

	for _, a := range []models.Association{second, first, other} {
		require.NoError(t, store.Append(ctx, a))
	}

	t.Run("returns only the subject's rows, chronologically", func(t *testing.T) {
		rows, err := store.ListBySubject(ctx, matterSubject)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.True(t, rows[0].Equal(first))
		assert.True(t, rows[1].Equal(second))
	})

	t.Run("unknown subject returns an empty trail", func(t *testing.T) {
		rows, err := store.ListBySubject(ctx, id.RevisionSubject(testutil.TestIDs.RevisionID1))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		rows, err := store.ListBySubject(ctx, matterSubject)
		require.NoError(t, err)
		rows[0] = other
		again, err := store.ListBySubject(ctx, matterSubject)
		require.NoError(t, err)
		assert.True(t, again[0].Equal(first))
	})
}

func TestInMemoryStoreListAll(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()

	matter := testutil.NewAssociationBuilder().
		WithCreatedAt(testutil.TestTime.Add(time.Hour)).
		Build()
	doc := testutil.NewAssociationBuilder().
		WithSubject(id.DocumentSubject(testutil.TestIDs.DocumentID1)).
		Build()
	require.NoError(t, store.Append(ctx, matter))
	require.NoError(t, store.Append(ctx, doc))

	rows, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Equal(doc))
	assert.True(t, rows[1].Equal(matter))
}

func TestInMemoryStoreClear(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore()
	require.NoError(t, store.Append(ctx, testutil.NewAssociationBuilder().Build()))

	store.Clear()

	rows, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
