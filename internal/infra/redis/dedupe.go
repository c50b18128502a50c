package redis

import (
	"context"
	"time"

	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase"

	"github.com/redis/go-redis/v9"
)

const dedupeTTL = 24 * time.Hour

// WebhookDedupe claims webhook event keys with SETNX. Losing the claim
// means the event was already delivered; an expired key just lets a
// very late redelivery fall through to the conditional DB update.
type WebhookDedupe struct {
	client *redis.Client
}

func NewWebhookDedupe(client *redis.Client) usecase.WebhookDedupe {
	return &WebhookDedupe{client: client}
}

func (d *WebhookDedupe) FirstDelivery(ctx context.Context, eventKey string) (bool, error) {
	ok, err := d.client.SetNX(ctx, "webhook:"+eventKey, 1, dedupeTTL).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to claim webhook event key")
	}
	return ok, nil
}
