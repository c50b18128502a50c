//go:build unit

package builder

import (
	"time"

	dombooking "slotbook/internal/domain/booking"
	reqdto "slotbook/internal/handler/dto/request"
	"slotbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// The default booking targets the default activity builder's Saturday
// morning slot.
type BookingBuilder struct {
	ActivityID    uuid.UUID
	Date          time.Time
	SlotStart     string
	SlotEnd       string
	Participants  int32
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ActivityID:    uuid.New(),
		Date:          time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), // a Saturday
		SlotStart:     "10:00",
		SlotEnd:       "12:00",
		Participants:  2,
		CustomerName:  "Asha Nair",
		CustomerPhone: "+919876543210",
		CustomerEmail: "asha@example.com",
		CreatedAt:     time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ActivityID:    b.ActivityID,
		Date:          b.Date.Format("2006-01-02"),
		SlotStart:     b.SlotStart,
		SlotEnd:       b.SlotEnd,
		Participants:  b.Participants,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		CustomerEmail: b.CustomerEmail,
	}
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	slot, err := dombooking.NewSlotKey(b.Date, b.SlotStart, b.SlotEnd)
	if err != nil {
		return nil, err
	}
	customer, err := dombooking.NewCustomer(b.CustomerName, b.CustomerPhone, b.CustomerEmail)
	if err != nil {
		return nil, err
	}
	pricing := dombooking.ComputePricing(150000, nil, b.Participants)
	snapshot := dombooking.ActivitySnapshot{
		Title:   "Scuba Intro Dive",
		Venue:   "Blue Bay Dive Center",
		Address: "12 Marine Drive, Goa",
	}
	return dombooking.NewBooking(
		dombooking.FormatNumber(b.CreatedAt, 1),
		b.ActivityID,
		slot,
		b.Participants,
		customer,
		pricing,
		snapshot,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildRM() *readmodel.BookingRM {
	return &readmodel.BookingRM{
		ID:             uuid.New(),
		Number:         dombooking.FormatNumber(b.CreatedAt, 1),
		ActivityID:     b.ActivityID,
		ActivityTitle:  "Scuba Intro Dive",
		Venue:          "Blue Bay Dive Center",
		Address:        "12 Marine Drive, Goa",
		CustomerName:   b.CustomerName,
		CustomerPhone:  b.CustomerPhone,
		CustomerEmail:  b.CustomerEmail,
		Date:           b.Date,
		SlotStart:      b.SlotStart,
		SlotEnd:        b.SlotEnd,
		Participants:   b.Participants,
		PricePerPerson: 150000,
		PriceTotal:     150000 * int64(b.Participants),
		Discount:       0,
		FinalAmount:    150000 * int64(b.Participants),
		BookingState:   "initiated",
		PaymentState:   "pending",
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}
