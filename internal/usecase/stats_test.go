//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/usecase"
	"slotbook/internal/usecase/readmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatsRepo struct {
	daily      []*readmodel.DailyStatsRM
	byActivity []*readmodel.ActivityStatsRM
	err        error
}

func (r *stubStatsRepo) Daily(context.Context, time.Time, time.Time) ([]*readmodel.DailyStatsRM, error) {
	return r.daily, r.err
}

func (r *stubStatsRepo) ByActivity(context.Context, time.Time, time.Time) ([]*readmodel.ActivityStatsRM, error) {
	return r.byActivity, r.err
}

func TestStatsRange(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	repo := &stubStatsRepo{
		daily: []*readmodel.DailyStatsRM{{Day: from, Bookings: 3, Participants: 7, Revenue: 450000, CheckedIn: 2}},
	}
	uc := usecase.NewStatsUseCase(repo)

	t.Run("passes the range through", func(t *testing.T) {
		rows, err := uc.Daily(ctx, from, to)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(450000), rows[0].Revenue)
	})

	t.Run("single-day range is allowed", func(t *testing.T) {
		_, err := uc.Daily(ctx, from, from)
		assert.NoError(t, err)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, err := uc.Daily(ctx, to, from)
		assert.ErrorIs(t, err, usecase.ErrValidation)

		_, err = uc.ByActivity(ctx, to, from)
		assert.ErrorIs(t, err, usecase.ErrValidation)
	})
}
