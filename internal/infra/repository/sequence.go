package repository

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SequenceAllocator backs the per-day booking number suffix with a
// counter row per date key. The upsert increments and reads in one
// statement, so two concurrent creations can never see the same value.
type SequenceAllocator struct {
	pool *pgxpool.Pool
}

func NewSequenceAllocator(pool *pgxpool.Pool) usecase.SequenceAllocator {
	return &SequenceAllocator{pool: pool}
}

func (s *SequenceAllocator) Next(ctx context.Context, dateKey string) (int64, error) {
	query := `
		INSERT INTO booking_sequences (date_key, counter)
		VALUES ($1, 1)
		ON CONFLICT (date_key) DO UPDATE SET counter = booking_sequences.counter + 1
		RETURNING counter`

	var counter int64
	if err := s.pool.QueryRow(ctx, query, dateKey).Scan(&counter); err != nil {
		return 0, infra.WrapRepoErr("failed to allocate booking sequence", err)
	}
	return counter, nil
}
