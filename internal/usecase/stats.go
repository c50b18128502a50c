package usecase

import (
	"context"
	"time"

	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/readmodel"
)

type StatsUseCase interface {
	Daily(ctx context.Context, from, to time.Time) ([]*readmodel.DailyStatsRM, error)
	ByActivity(ctx context.Context, from, to time.Time) ([]*readmodel.ActivityStatsRM, error)
}

type statsUseCaseImpl struct {
	statsRepo StatsRepository
}

func NewStatsUseCase(statsRepo StatsRepository) StatsUseCase {
	return &statsUseCaseImpl{statsRepo: statsRepo}
}

func (s *statsUseCaseImpl) Daily(ctx context.Context, from, to time.Time) ([]*readmodel.DailyStatsRM, error) {
	if to.Before(from) {
		return nil, ErrValidation
	}
	rows, err := s.statsRepo.Daily(ctx, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load daily stats")
	}
	return rows, nil
}

func (s *statsUseCaseImpl) ByActivity(ctx context.Context, from, to time.Time) ([]*readmodel.ActivityStatsRM, error) {
	if to.Before(from) {
		return nil, ErrValidation
	}
	rows, err := s.statsRepo.ByActivity(ctx, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load activity stats")
	}
	return rows, nil
}
