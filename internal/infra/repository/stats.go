package repository

import (
	"context"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepository aggregates directly over the bookings table. Revenue
// counts completed payments only; cancelled rows still count as
// bookings so conversion is visible.
type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) usecase.StatsRepository {
	return &StatsRepository{pool: pool}
}

func (r *StatsRepository) Daily(ctx context.Context, from, to time.Time) ([]*readmodel.DailyStatsRM, error) {
	query := `
		SELECT date,
		       COUNT(*),
		       COALESCE(SUM(participants), 0),
		       COALESCE(SUM(final_amount) FILTER (WHERE payment_state = 'completed'), 0),
		       COUNT(*) FILTER (WHERE checked_in)
		FROM bookings
		WHERE date BETWEEN $1 AND $2
		GROUP BY date
		ORDER BY date`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load daily stats", err)
	}
	defer rows.Close()

	stats := make([]*readmodel.DailyStatsRM, 0)
	for rows.Next() {
		rm := &readmodel.DailyStatsRM{}
		if err := rows.Scan(&rm.Day, &rm.Bookings, &rm.Participants, &rm.Revenue, &rm.CheckedIn); err != nil {
			return nil, infra.WrapRepoErr("failed to scan daily stats row", err)
		}
		stats = append(stats, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate daily stats rows", err)
	}
	return stats, nil
}

func (r *StatsRepository) ByActivity(ctx context.Context, from, to time.Time) ([]*readmodel.ActivityStatsRM, error) {
	query := `
		SELECT activity_id,
		       MIN(activity_title),
		       COUNT(*),
		       COALESCE(SUM(participants), 0),
		       COALESCE(SUM(final_amount) FILTER (WHERE payment_state = 'completed'), 0)
		FROM bookings
		WHERE date BETWEEN $1 AND $2
		GROUP BY activity_id
		ORDER BY COUNT(*) DESC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load activity stats", err)
	}
	defer rows.Close()

	stats := make([]*readmodel.ActivityStatsRM, 0)
	for rows.Next() {
		rm := &readmodel.ActivityStatsRM{}
		if err := rows.Scan(&rm.ActivityID, &rm.Title, &rm.Bookings, &rm.Participants, &rm.Revenue); err != nil {
			return nil, infra.WrapRepoErr("failed to scan activity stats row", err)
		}
		stats = append(stats, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate activity stats rows", err)
	}
	return stats, nil
}
