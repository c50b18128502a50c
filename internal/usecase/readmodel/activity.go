package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type SlotWindowRM struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Capacity int32  `json:"capacity"`
}

type ActivityRM struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	Venue           string         `json:"venue"`
	Address         string         `json:"address"`
	Status          string         `json:"status"`
	StartDate       time.Time      `json:"start_date"`
	EndDate         time.Time      `json:"end_date"`
	Weekdays        []int32        `json:"weekdays"` // time.Weekday values
	Slots           []SlotWindowRM `json:"slots"`
	BasePrice       int64          `json:"base_price"`
	DiscountedPrice *int64         `json:"discounted_price,omitempty"`
	MaxPerBooking   int32          `json:"max_per_booking"`
}
