package usecase

import (
	"context"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// BookingRepository persists the booking aggregate. The mutating
// methods are conditional updates: they return applied=false when the
// row no longer satisfies the transition's state predicate, which is
// how concurrent confirms/redeems are serialized.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	FindByNumber(ctx context.Context, number string) (*readmodel.BookingRM, error)
	FindByOrderID(ctx context.Context, orderID string) (*readmodel.BookingRM, error)
	ListByDate(ctx context.Context, date time.Time) ([]*readmodel.BookingListRM, error)
	ListExpiredInitiated(ctx context.Context, before time.Time) ([]*readmodel.BookingRM, error)

	// BindPaymentOrder attaches the gateway order id exactly once;
	// KindConflict when a different order is already bound.
	BindPaymentOrder(ctx context.Context, id uuid.UUID, orderID string) error
	ConfirmPayment(ctx context.Context, id uuid.UUID, paymentID, method string, paidAt time.Time) (bool, error)
	FailPayment(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	Cancel(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	SaveCredential(ctx context.Context, id uuid.UUID, token string, issuedAt time.Time) (bool, error)
	Redeem(ctx context.Context, id uuid.UUID, operatorID uuid.UUID, at time.Time) (bool, error)
}

type ActivityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ActivityRM, error)
}

// CapacityLedger owns the shared per-slot counters. Reserve and Release
// must be single conditional updates at the storage layer; a
// read-then-write sequence here would oversell under concurrency.
type CapacityLedger interface {
	// Reserve decrements by count only while remaining >= count,
	// materializing the date bucket at the window's capacity on first
	// touch. On refusal the current remaining count is returned.
	Reserve(ctx context.Context, activityID uuid.UUID, slot booking.SlotKey, capacity, count int32) (remaining int32, err error)
	// Release adds capacity back, clamped to the bucket's original
	// total so a double release cannot overfill. KindNotFound when the
	// bucket does not exist.
	Release(ctx context.Context, activityID uuid.UUID, slot booking.SlotKey, count int32) error
	Remaining(ctx context.Context, activityID uuid.UUID, slot booking.SlotKey) (int32, error)
}

// SequenceAllocator hands out the per-day booking number suffix via an
// atomic increment-and-read; scanning existing bookings for the highest
// suffix would race under concurrent creation.
type SequenceAllocator interface {
	Next(ctx context.Context, dateKey string) (int64, error)
}

// PaymentGateway is the narrow slice of the gateway SDK the reconciler
// needs. Both verifications are pure/local.
type PaymentGateway interface {
	CreateOrder(amount int64, currency, receipt string, notes map[string]interface{}) (string, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
}

// WebhookDedupe is a best-effort fast path for redelivered webhooks;
// the conditional DB update remains the authority. Errors from it are
// logged and ignored.
type WebhookDedupe interface {
	FirstDelivery(ctx context.Context, eventKey string) (bool, error)
}

// Notifier is the single capability the core needs from the delivery
// subsystem: the attempt, not the channel.
type Notifier interface {
	BookingConfirmed(ctx context.Context, b *readmodel.BookingRM) error
}

type StatsRepository interface {
	Daily(ctx context.Context, from, to time.Time) ([]*readmodel.DailyStatsRM, error)
	ByActivity(ctx context.Context, from, to time.Time) ([]*readmodel.ActivityStatsRM, error)
}
