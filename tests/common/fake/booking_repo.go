//go:build unit

package fake

import (
	"context"
	"sync"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// BookingRepo is an in-memory BookingRepository with the same
// conditional-update semantics as the SQL implementation, safe for
// concurrent use in tests.
type BookingRepo struct {
	mu       sync.Mutex
	rows     map[uuid.UUID]*readmodel.BookingRM
	byNumber map[string]uuid.UUID
	byOrder  map[string]uuid.UUID

	FailCreate bool
}

func NewBookingRepo() *BookingRepo {
	return &BookingRepo{
		rows:     make(map[uuid.UUID]*readmodel.BookingRM),
		byNumber: make(map[string]uuid.UUID),
		byOrder:  make(map[string]uuid.UUID),
	}
}

func (r *BookingRepo) Create(_ context.Context, b *booking.Booking) (*readmodel.BookingRM, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailCreate {
		return nil, infra.WrapRepoErr("create forced to fail", nil)
	}
	if _, exists := r.byNumber[b.Number()]; exists {
		return nil, infra.WrapRepoErr("duplicate booking number", nil, infra.KindDuplicateKey)
	}

	slot := b.Slot()
	customer := b.Customer()
	pricing := b.Pricing()
	snapshot := b.Snapshot()
	rm := &readmodel.BookingRM{
		ID:             b.ID(),
		Number:         b.Number(),
		ActivityID:     b.ActivityID(),
		ActivityTitle:  snapshot.Title,
		Venue:          snapshot.Venue,
		Address:        snapshot.Address,
		CustomerName:   customer.Name(),
		CustomerPhone:  customer.Phone(),
		CustomerEmail:  customer.Email(),
		Date:           slot.Date(),
		SlotStart:      slot.Start(),
		SlotEnd:        slot.End(),
		Participants:   b.Participants(),
		PricePerPerson: pricing.PerPerson(),
		PriceTotal:     pricing.Total(),
		Discount:       pricing.Discount(),
		FinalAmount:    pricing.Final(),
		BookingState:   string(b.Status()),
		PaymentState:   string(b.Payment()),
		CreatedAt:      b.CreatedAt(),
		UpdatedAt:      b.UpdatedAt(),
	}
	r.rows[rm.ID] = rm
	r.byNumber[rm.Number] = rm.ID
	return copyRM(rm), nil
}

func (r *BookingRepo) FindByID(_ context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rows[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return copyRM(rm), nil
}

func (r *BookingRepo) FindByNumber(_ context.Context, number string) (*readmodel.BookingRM, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byNumber[number]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return copyRM(r.rows[id]), nil
}

func (r *BookingRepo) FindByOrderID(_ context.Context, orderID string) (*readmodel.BookingRM, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byOrder[orderID]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return copyRM(r.rows[id]), nil
}

func (r *BookingRepo) ListByDate(_ context.Context, date time.Time) ([]*readmodel.BookingListRM, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*readmodel.BookingListRM, 0)
	for _, rm := range r.rows {
		if rm.Date.Equal(date) {
			list = append(list, &readmodel.BookingListRM{
				ID:            rm.ID,
				Number:        rm.Number,
				ActivityTitle: rm.ActivityTitle,
				Date:          rm.Date,
				SlotStart:     rm.SlotStart,
				SlotEnd:       rm.SlotEnd,
				Participants:  rm.Participants,
				FinalAmount:   rm.FinalAmount,
				BookingState:  rm.BookingState,
				PaymentState:  rm.PaymentState,
				CreatedAt:     rm.CreatedAt,
			})
		}
	}
	return list, nil
}

func (r *BookingRepo) ListExpiredInitiated(_ context.Context, before time.Time) ([]*readmodel.BookingRM, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*readmodel.BookingRM, 0)
	for _, rm := range r.rows {
		if rm.BookingState == "initiated" && rm.PaymentState != "completed" && rm.CreatedAt.Before(before) {
			list = append(list, copyRM(rm))
		}
	}
	return list, nil
}

func (r *BookingRepo) BindPaymentOrder(_ context.Context, id uuid.UUID, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rows[id]
	if !ok {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if rm.PaymentOrderID != nil {
		return infra.WrapRepoErr("payment order already bound", nil, infra.KindConflict)
	}
	rm.PaymentOrderID = &orderID
	r.byOrder[orderID] = id
	return nil
}

func (r *BookingRepo) ConfirmPayment(_ context.Context, id uuid.UUID, paymentID, method string, paidAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rows[id]
	if !ok {
		return false, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if rm.PaymentState == "completed" || rm.BookingState != "initiated" {
		return false, nil
	}
	rm.PaymentState = "completed"
	rm.BookingState = "confirmed"
	rm.PaymentID = &paymentID
	if method != "" {
		rm.PaymentMethod = &method
	}
	rm.PaidAt = &paidAt
	rm.UpdatedAt = paidAt
	return true, nil
}

func (r *BookingRepo) FailPayment(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rows[id]
	if !ok {
		return false, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if rm.PaymentState != "pending" {
		return false, nil
	}
	rm.PaymentState = "failed"
	rm.UpdatedAt = at
	return true, nil
}

func (r *BookingRepo) Cancel(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rows[id]
	if !ok {
		return false, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if rm.BookingState != "initiated" || rm.PaymentState == "completed" {
		return false, nil
	}
	rm.BookingState = "cancelled"
	rm.UpdatedAt = at
	return true, nil
}

func (r *BookingRepo) SaveCredential(_ context.Context, id uuid.UUID, token string, issuedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rows[id]
	if !ok {
		return false, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if rm.CredentialToken != nil {
		return false, nil
	}
	rm.CredentialToken = &token
	rm.CredentialIssuedAt = &issuedAt
	rm.UpdatedAt = issuedAt
	return true, nil
}

func (r *BookingRepo) Redeem(_ context.Context, id uuid.UUID, operatorID uuid.UUID, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rows[id]
	if !ok {
		return false, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	if rm.BookingState != "confirmed" || rm.PaymentState != "completed" || rm.CheckedIn {
		return false, nil
	}
	rm.CheckedIn = true
	rm.CheckInTime = &at
	rm.CheckInBy = &operatorID
	rm.BookingState = "completed"
	rm.UpdatedAt = at
	return true, nil
}

func copyRM(rm *readmodel.BookingRM) *readmodel.BookingRM {
	c := *rm
	return &c
}
