//go:build unit

package shift_test

import (
	"testing"
	"time"

	"venuebook/internal/domain/shift"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeOfDay(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "evening", input: "18:30", want: "18:30"},
		{name: "last minute of day", input: "23:59", want: "23:59"},
		{name: "single digit hour", input: "9:05", want: "09:05"},
		{name: "hour out of range", input: "24:00", errIs: shift.ErrInvalidTimeOfDay},
		{name: "minute out of range", input: "12:60", errIs: shift.ErrInvalidTimeOfDay},
		{name: "garbage", input: "noon", errIs: shift.ErrInvalidTimeOfDay},
		{name: "empty", input: "", errIs: shift.ErrInvalidTimeOfDay},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := shift.NewTimeOfDay(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestTimeOfDayFromMinutes(t *testing.T) {
	got, err := shift.TimeOfDayFromMinutes(18*60 + 30)
	require.NoError(t, err)
	assert.Equal(t, "18:30", got.String())
	assert.Equal(t, 1110, got.Minutes())

	_, err = shift.TimeOfDayFromMinutes(-1)
	assert.ErrorIs(t, err, shift.ErrInvalidTimeOfDay)

	_, err = shift.TimeOfDayFromMinutes(24 * 60)
	assert.ErrorIs(t, err, shift.ErrInvalidTimeOfDay)
}

func TestTimeOfDayBefore(t *testing.T) {
	lunch, _ := shift.NewTimeOfDay("12:00")
	dinner, _ := shift.NewTimeOfDay("18:00")

	assert.True(t, lunch.Before(dinner))
	assert.False(t, dinner.Before(lunch))
	assert.False(t, lunch.Before(lunch))
}

func TestParseDate(t *testing.T) {
	d, err := shift.ParseDate("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, shift.NewDate(2026, time.March, 10), d)
	assert.Equal(t, "2026-03-10", d.String())

	_, err = shift.ParseDate("10/03/2026")
	assert.ErrorIs(t, err, shift.ErrInvalidRange)

	_, err = shift.ParseDate("2026-13-01")
	assert.ErrorIs(t, err, shift.ErrInvalidRange)
}

func TestDateOfNormalizesTime(t *testing.T) {
	loc := time.FixedZone("JST", 9*3600)
	d := shift.DateOf(time.Date(2026, 3, 10, 23, 45, 12, 0, loc))

	assert.Equal(t, shift.NewDate(2026, time.March, 10), d)
	assert.Equal(t, time.UTC, d.Time().Location())
}

func TestDateRange(t *testing.T) {
	start := shift.NewDate(2026, time.March, 10)
	end := shift.NewDate(2026, time.March, 12)

	t.Run("days are inclusive and ascending", func(t *testing.T) {
		r, err := shift.NewDateRange(start, end)
		require.NoError(t, err)

		days := r.Days()
		require.Len(t, days, 3)
		assert.Equal(t, "2026-03-10", days[0].String())
		assert.Equal(t, "2026-03-11", days[1].String())
		assert.Equal(t, "2026-03-12", days[2].String())
	})

	t.Run("single day range", func(t *testing.T) {
		r, err := shift.NewDateRange(start, start)
		require.NoError(t, err)
		assert.Len(t, r.Days(), 1)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := shift.NewDateRange(end, start)
		assert.ErrorIs(t, err, shift.ErrInvalidRange)
	})
}
