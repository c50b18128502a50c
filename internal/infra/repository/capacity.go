package repository

import (
	"context"
	"errors"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CapacityLedger keeps one row per (activity, date, slot) bucket. Rows
// are materialized lazily on first reservation; both Reserve and
// Release are single conditional statements so concurrent bookings
// serialize on the row without advisory locks.
type CapacityLedger struct {
	pool *pgxpool.Pool
}

func NewCapacityLedger(pool *pgxpool.Pool) usecase.CapacityLedger {
	return &CapacityLedger{pool: pool}
}

func (l *CapacityLedger) Reserve(
	ctx context.Context,
	activityID uuid.UUID,
	slot booking.SlotKey,
	capacity, count int32,
) (int32, error) {
	seed := `
		INSERT INTO slot_capacity (activity_id, date, slot_start, slot_end, total_capacity, remaining_spots)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (activity_id, date, slot_start, slot_end) DO NOTHING`

	if _, err := l.pool.Exec(ctx, seed, activityID, slot.Date(), slot.Start(), slot.End(), capacity); err != nil {
		return 0, infra.WrapRepoErr("failed to seed capacity bucket", err)
	}

	query := `
		UPDATE slot_capacity
		SET remaining_spots = remaining_spots - $5
		WHERE activity_id = $1 AND date = $2 AND slot_start = $3 AND slot_end = $4
		  AND remaining_spots >= $5
		RETURNING remaining_spots`

	var remaining int32
	err := l.pool.QueryRow(ctx, query, activityID, slot.Date(), slot.Start(), slot.End(), count).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, infra.WrapRepoErr("failed to reserve capacity", err)
	}

	// Refused: report what is left so the caller can say so.
	current, rerr := l.Remaining(ctx, activityID, slot)
	if rerr != nil {
		current = 0
	}
	return current, infra.WrapRepoErr("insufficient capacity", nil, infra.KindConflict)
}

// Release credits spots back, clamped to the bucket's total so a stray
// double release cannot push remaining above capacity.
func (l *CapacityLedger) Release(
	ctx context.Context,
	activityID uuid.UUID,
	slot booking.SlotKey,
	count int32,
) error {
	query := `
		UPDATE slot_capacity
		SET remaining_spots = LEAST(total_capacity, remaining_spots + $5)
		WHERE activity_id = $1 AND date = $2 AND slot_start = $3 AND slot_end = $4`

	tag, err := l.pool.Exec(ctx, query, activityID, slot.Date(), slot.Start(), slot.End(), count)
	if err != nil {
		return infra.WrapRepoErr("failed to release capacity", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("capacity bucket not found", nil, infra.KindNotFound)
	}
	return nil
}

func (l *CapacityLedger) Remaining(
	ctx context.Context,
	activityID uuid.UUID,
	slot booking.SlotKey,
) (int32, error) {
	query := `
		SELECT remaining_spots
		FROM slot_capacity
		WHERE activity_id = $1 AND date = $2 AND slot_start = $3 AND slot_end = $4`

	var remaining int32
	err := l.pool.QueryRow(ctx, query, activityID, slot.Date(), slot.Start(), slot.End()).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, infra.WrapRepoErr("capacity bucket not found", nil, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to read remaining capacity", err)
	}
	return remaining, nil
}
