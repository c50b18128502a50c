package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is the aggregate root of the core. State transitions after
// creation (payment, cancellation, credential, check-in) are applied as
// conditional updates at the storage layer, so the entity only models
// the creation-time shape.
type Booking struct {
	id           uuid.UUID
	number       string
	activityID   uuid.UUID
	slot         SlotKey
	participants int32
	customer     Customer
	pricing      Pricing
	status       Status
	payment      PaymentStatus
	snapshot     ActivitySnapshot
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBooking(
	number string,
	activityID uuid.UUID,
	slot SlotKey,
	participants int32,
	customer Customer,
	pricing Pricing,
	snapshot ActivitySnapshot,
	now time.Time,
) (*Booking, error) {
	if participants < 1 {
		return nil, ErrInvalidParticipants
	}

	return &Booking{
		id:           uuid.New(),
		number:       number,
		activityID:   activityID,
		slot:         slot,
		participants: participants,
		customer:     customer,
		pricing:      pricing,
		status:       StatusInitiated,
		payment:      PaymentPending,
		snapshot:     snapshot,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) Number() string             { return b.number }
func (b *Booking) ActivityID() uuid.UUID      { return b.activityID }
func (b *Booking) Slot() SlotKey              { return b.slot }
func (b *Booking) Participants() int32        { return b.participants }
func (b *Booking) Customer() Customer         { return b.customer }
func (b *Booking) Pricing() Pricing           { return b.pricing }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) Payment() PaymentStatus     { return b.payment }
func (b *Booking) Snapshot() ActivitySnapshot { return b.snapshot }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
