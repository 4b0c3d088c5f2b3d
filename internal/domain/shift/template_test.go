//go:build unit

package shift_test

import (
	"strings"
	"testing"

	"venuebook/internal/domain/shift"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimeOfDay(t *testing.T, s string) shift.TimeOfDay {
	t.Helper()
	tod, err := shift.NewTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func TestNewTemplate(t *testing.T) {
	start := mustTimeOfDay(t, "18:00")
	end := mustTimeOfDay(t, "22:00")

	t.Run("valid template", func(t *testing.T) {
		venueID := uuid.New()
		tmpl, err := shift.NewTemplate("  Dinner  ", start, end, []uuid.UUID{venueID, venueID})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, tmpl.ID())
		assert.Equal(t, "Dinner", tmpl.Label())
		assert.Equal(t, []uuid.UUID{venueID}, tmpl.VenueIDs(), "duplicate venue assignments collapse")
	})

	t.Run("empty label", func(t *testing.T) {
		_, err := shift.NewTemplate("   ", start, end, nil)
		assert.ErrorIs(t, err, shift.ErrEmptyLabel)
	})

	t.Run("label too long", func(t *testing.T) {
		_, err := shift.NewTemplate(strings.Repeat("x", 101), start, end, nil)
		assert.ErrorIs(t, err, shift.ErrLabelTooLong)
	})

	t.Run("window must be non-empty", func(t *testing.T) {
		_, err := shift.NewTemplate("Dinner", end, start, nil)
		assert.ErrorIs(t, err, shift.ErrEmptyWindow)

		_, err = shift.NewTemplate("Dinner", start, start, nil)
		assert.ErrorIs(t, err, shift.ErrEmptyWindow)
	})
}

func TestTemplateEligibility(t *testing.T) {
	venueA := uuid.New()
	venueB := uuid.New()
	tmpl, err := shift.NewTemplate("Lunch", mustTimeOfDay(t, "11:30"), mustTimeOfDay(t, "14:00"), []uuid.UUID{venueA})
	require.NoError(t, err)

	assert.True(t, tmpl.EligibleFor(venueA))
	assert.False(t, tmpl.EligibleFor(venueB))

	tmpl.AssignVenues([]uuid.UUID{venueB})
	assert.False(t, tmpl.EligibleFor(venueA))
	assert.True(t, tmpl.EligibleFor(venueB))
}

func TestTemplateReschedule(t *testing.T) {
	tmpl, err := shift.NewTemplate("Dinner", mustTimeOfDay(t, "18:00"), mustTimeOfDay(t, "22:00"), nil)
	require.NoError(t, err)

	err = tmpl.Reschedule(mustTimeOfDay(t, "19:00"), mustTimeOfDay(t, "23:00"))
	require.NoError(t, err)
	assert.Equal(t, "19:00", tmpl.StartsAt().String())

	err = tmpl.Reschedule(mustTimeOfDay(t, "23:00"), mustTimeOfDay(t, "19:00"))
	assert.ErrorIs(t, err, shift.ErrEmptyWindow)
	assert.Equal(t, "19:00", tmpl.StartsAt().String(), "failed reschedule leaves the window untouched")
}
