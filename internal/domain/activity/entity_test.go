//go:build unit

package activity_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/activity"
	"slotbook/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestActivity(t *testing.T, status activity.Status) *activity.Activity {
	t.Helper()
	a, err := activity.NewActivity(
		uuid.New(),
		"Scuba Intro Dive",
		"Blue Bay Dive Center",
		"12 Marine Drive, Goa",
		status,
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC),
		[]time.Weekday{time.Saturday, time.Sunday},
		[]activity.SlotWindow{
			{Start: "10:00", End: "12:00", Capacity: 10},
			{Start: "14:00", End: "16:00", Capacity: 6},
		},
		150000,
		nil,
		4,
	)
	require.NoError(t, err)
	return a
}

func TestNewActivity(t *testing.T) {
	t.Run("requires a title and at least one slot", func(t *testing.T) {
		_, err := activity.NewActivity(uuid.New(), "", "v", "a", activity.StatusActive,
			time.Time{}, time.Time{}, nil,
			[]activity.SlotWindow{{Start: "10:00", End: "12:00", Capacity: 1}}, 100, nil, 0)
		assert.ErrorIs(t, err, activity.ErrEmptyTitle)

		_, err = activity.NewActivity(uuid.New(), "t", "v", "a", activity.StatusActive,
			time.Time{}, time.Time{}, nil, nil, 100, nil, 0)
		assert.ErrorIs(t, err, activity.ErrNoSlots)
	})

	t.Run("discounted price may not exceed base", func(t *testing.T) {
		_, err := activity.NewActivity(uuid.New(), "t", "v", "a", activity.StatusActive,
			time.Time{}, time.Time{}, nil,
			[]activity.SlotWindow{{Start: "10:00", End: "12:00", Capacity: 1}}, 100, ptr.To(int64(200)), 0)
		assert.ErrorIs(t, err, activity.ErrInvalidPrices)
	})
}

func TestIsBookable(t *testing.T) {
	assert.True(t, newTestActivity(t, activity.StatusActive).IsBookable())
	assert.False(t, newTestActivity(t, activity.StatusInactive).IsBookable())
}

func TestDatePolicy(t *testing.T) {
	a := newTestActivity(t, activity.StatusActive)

	t.Run("season window is inclusive", func(t *testing.T) {
		assert.True(t, a.AllowsDate(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
		assert.True(t, a.AllowsDate(time.Date(2026, 10, 31, 23, 0, 0, 0, time.UTC)))
		assert.False(t, a.AllowsDate(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)))
		assert.False(t, a.AllowsDate(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("weekday policy", func(t *testing.T) {
		assert.True(t, a.AllowsWeekday(time.Saturday))
		assert.True(t, a.AllowsWeekday(time.Sunday))
		assert.False(t, a.AllowsWeekday(time.Monday))
	})

	t.Run("allowed weekdays list in week order", func(t *testing.T) {
		assert.Equal(t, []string{"Sunday", "Saturday"}, a.AllowedWeekdays())
	})
}

func TestFindSlot(t *testing.T) {
	a := newTestActivity(t, activity.StatusActive)

	t.Run("exact match", func(t *testing.T) {
		w, ok := a.FindSlot("14:00", "16:00")
		require.True(t, ok)
		assert.Equal(t, int32(6), w.Capacity)
	})

	t.Run("near miss does not match", func(t *testing.T) {
		_, ok := a.FindSlot("14:00", "16:30")
		assert.False(t, ok)
		_, ok = a.FindSlot("14:30", "16:00")
		assert.False(t, ok)
	})
}
