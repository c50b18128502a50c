package repository

import (
	"context"
	"errors"

	"slotbook/internal/infra"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) usecase.ActivityRepository {
	return &ActivityRepository{pool: pool}
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ActivityRM, error) {
	query := `
		SELECT id, title, venue, address, status, start_date, end_date,
		       weekdays, base_price, discounted_price, max_per_booking
		FROM activities
		WHERE id = $1`

	rm := &readmodel.ActivityRM{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rm.ID, &rm.Title, &rm.Venue, &rm.Address, &rm.Status, &rm.StartDate, &rm.EndDate,
		&rm.Weekdays, &rm.BasePrice, &rm.DiscountedPrice, &rm.MaxPerBooking,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("activity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find activity", err)
	}

	slots, err := r.loadSlots(ctx, id)
	if err != nil {
		return nil, err
	}
	rm.Slots = slots
	return rm, nil
}

func (r *ActivityRepository) loadSlots(ctx context.Context, activityID uuid.UUID) ([]readmodel.SlotWindowRM, error) {
	query := `
		SELECT slot_start, slot_end, capacity
		FROM activity_slots
		WHERE activity_id = $1
		ORDER BY slot_start`

	rows, err := r.pool.Query(ctx, query, activityID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load activity slots", err)
	}
	defer rows.Close()

	slots := make([]readmodel.SlotWindowRM, 0)
	for rows.Next() {
		var s readmodel.SlotWindowRM
		if err := rows.Scan(&s.Start, &s.End, &s.Capacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan activity slot", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate activity slots", err)
	}
	return slots, nil
}
