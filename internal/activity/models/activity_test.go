package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "adms/pkg/domain"
)

func TestActivityValidate(t *testing.T) {
	t.Run("seeded activity passes", func(t *testing.T) {
		a, ok := SeededActivity("CHECKED IN")
		require.True(t, ok)
		assert.True(t, a.Validate().Empty())
		assert.True(t, a.IsValid())
	})

	t.Run("reserved word as name rejected", func(t *testing.T) {
		a := Activity{ID: SeededCreated, Name: "SYSTEM"}
		assert.False(t, a.Validate().Empty())
		assert.False(t, a.IsValid())
	})

	t.Run("IsValid agrees with Validate", func(t *testing.T) {
		cases := []Activity{
			{ID: SeededCreated, Name: ActivityCreated},
			{},
			{ID: SeededCreated},
			{Name: ActivityCreated},
		}
		for _, a := range cases {
			assert.Equal(t, a.Validate().Empty(), a.IsValid(), "activity %+v", a)
		}
	})
}

func TestActivityValidateFor(t *testing.T) {
	t.Run("membership is enforced per entity kind", func(t *testing.T) {
		a := Activity{ID: SeededCheckedIn, Name: ActivityCheckedIn}
		assert.True(t, a.ValidateFor(id.KindDocument).Empty())

		// Matters cannot be checked in.
		vs := a.ValidateFor(id.KindMatter)
		require.Len(t, vs, 1)
		assert.Contains(t, vs[0].Message, "not an allowed activity")
	})

	t.Run("membership comparison ignores case and whitespace", func(t *testing.T) {
		a := Activity{ID: SeededCheckedIn, Name: " checked  in "}
		assert.True(t, a.ValidateFor(id.KindDocument).Empty())
	})

	t.Run("custom activities skip the membership check", func(t *testing.T) {
		a := Activity{ID: SeededCreated, Name: "Conflict Review", Custom: true}
		assert.True(t, a.ValidateFor(id.KindMatter).Empty())
	})
}

func TestActivityAllowed(t *testing.T) {
	assert.True(t, ActivityAllowed(id.KindDocument, "moved"))
	assert.False(t, ActivityAllowed(id.KindRevision, ActivityMoved))
	assert.False(t, ActivityAllowed(id.KindMatter, "SHREDDED"))
}

func TestAllowedActivities(t *testing.T) {
	names := AllowedActivities(id.KindRevision)
	assert.Contains(t, names, ActivitySaved)
	assert.NotContains(t, names, ActivityCheckedOut)

	// Mutating the copy must not affect the enumeration.
	names[0] = "TAMPERED"
	assert.NotContains(t, AllowedActivities(id.KindRevision), "TAMPERED")
}

func TestActivityEqual(t *testing.T) {
	t.Run("identifier decides when both sides have one", func(t *testing.T) {
		a := Activity{ID: SeededCreated, Name: ActivityCreated}
		b := Activity{ID: SeededCreated, Name: "renamed"}
		assert.True(t, a.Equal(b))
		assert.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("name fallback ignores case", func(t *testing.T) {
		a := Activity{Name: "Checked  In"}
		b := Activity{Name: "CHECKED IN"}
		assert.True(t, a.Equal(b))
		assert.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("custom flag participates in fallback", func(t *testing.T) {
		a := Activity{Name: "Conflict Review"}
		b := Activity{Name: "Conflict Review", Custom: true}
		assert.False(t, a.Equal(b))
	})
}

func TestActivityIs(t *testing.T) {
	a := Activity{ID: SeededCheckedIn, Name: " checked  in "}
	assert.True(t, a.Is(ActivityCheckedIn))
	assert.False(t, a.Is(ActivityCheckedOut))
}

func TestSeededActivityID(t *testing.T) {
	t.Run("canonical names map to fixed identifiers", func(t *testing.T) {
		assert.Equal(t, SeededCheckedIn, SeededActivityID("CHECKED IN"))
		assert.Equal(t, SeededCreated, SeededActivityID("created"))
		assert.Equal(t, SeededMoved, SeededActivityID("  moved "))
	})

	t.Run("unknown names return the nil sentinel", func(t *testing.T) {
		assert.True(t, SeededActivityID("SHREDDED").IsNil())
		assert.True(t, SeededActivityID("").IsNil())
	})

	t.Run("seeded identifiers are distinct", func(t *testing.T) {
		seen := map[id.ActivityID]string{}
		for _, name := range AllowedActivities(id.KindDocument) {
			aid := SeededActivityID(name)
			require.False(t, aid.IsNil(), "no seed for %s", name)
			prev, dup := seen[aid]
			require.False(t, dup, "%s and %s share an identifier", prev, name)
			seen[aid] = name
		}
	})
}

func TestSeededActivity(t *testing.T) {
	t.Run("returns canonical spelling", func(t *testing.T) {
		a, ok := SeededActivity("  checked   in ")
		require.True(t, ok)
		assert.Equal(t, "CHECKED IN", a.Name)
		assert.Equal(t, SeededCheckedIn, a.ID)
	})

	t.Run("unknown names report not ok", func(t *testing.T) {
		_, ok := SeededActivity("SHREDDED")
		assert.False(t, ok)
	})
}
