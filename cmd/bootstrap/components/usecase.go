package components

import (
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewReservationUseCase,
		usecase.NewPaymentUseCase,
		usecase.NewCredentialUseCase,
		usecase.NewStatsUseCase,
	),
)
