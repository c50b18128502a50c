package components

import (
	infraredis "slotbook/internal/infra/redis"
	"slotbook/internal/infra/repository"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewBookingRepository,
		repository.NewActivityRepository,
		repository.NewCapacityLedger,
		repository.NewSequenceAllocator,
		repository.NewStatsRepository,
		infraredis.NewWebhookDedupe,
	),
)
