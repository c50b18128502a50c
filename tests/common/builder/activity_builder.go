//go:build unit

package builder

import (
	"time"

	"slotbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ActivityBuilder struct {
	ID              uuid.UUID
	Title           string
	Venue           string
	Address         string
	Status          string
	StartDate       time.Time
	EndDate         time.Time
	Weekdays        []int32
	Slots           []readmodel.SlotWindowRM
	BasePrice       int64
	DiscountedPrice *int64
	MaxPerBooking   int32
}

func NewActivityBuilder() *ActivityBuilder {
	return &ActivityBuilder{
		ID:        uuid.New(),
		Title:     "Scuba Intro Dive",
		Venue:     "Blue Bay Dive Center",
		Address:   "12 Marine Drive, Goa",
		Status:    "active",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Weekdays:  []int32{int32(time.Saturday), int32(time.Sunday)},
		Slots: []readmodel.SlotWindowRM{
			{Start: "10:00", End: "12:00", Capacity: 10},
			{Start: "14:00", End: "16:00", Capacity: 6},
		},
		BasePrice:     150000,
		MaxPerBooking: 4,
	}
}

func (a *ActivityBuilder) With(mutate func(*ActivityBuilder)) *ActivityBuilder {
	mutate(a)
	return a
}

func (a *ActivityBuilder) BuildRM() *readmodel.ActivityRM {
	return &readmodel.ActivityRM{
		ID:              a.ID,
		Title:           a.Title,
		Venue:           a.Venue,
		Address:         a.Address,
		Status:          a.Status,
		StartDate:       a.StartDate,
		EndDate:         a.EndDate,
		Weekdays:        a.Weekdays,
		Slots:           a.Slots,
		BasePrice:       a.BasePrice,
		DiscountedPrice: a.DiscountedPrice,
		MaxPerBooking:   a.MaxPerBooking,
	}
}
