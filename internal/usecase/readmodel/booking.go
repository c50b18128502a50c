package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// BookingRM is the read-side projection of a booking row, snapshot
// fields included.
type BookingRM struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	ActivityID    uuid.UUID `json:"activity_id"`
	ActivityTitle string    `json:"activity_title"`
	Venue         string    `json:"venue"`
	Address       string    `json:"address"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	Date         time.Time `json:"date"`
	SlotStart    string    `json:"slot_start"`
	SlotEnd      string    `json:"slot_end"`
	Participants int32     `json:"participants"`

	PricePerPerson int64 `json:"price_per_person"`
	PriceTotal     int64 `json:"price_total"`
	Discount       int64 `json:"discount"`
	FinalAmount    int64 `json:"final_amount"`

	BookingState string `json:"booking_state"`
	PaymentState string `json:"payment_state"`

	PaymentOrderID *string    `json:"payment_order_id,omitempty"`
	PaymentID      *string    `json:"payment_id,omitempty"`
	PaymentMethod  *string    `json:"payment_method,omitempty"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`

	CredentialToken    *string    `json:"credential_token,omitempty"`
	CredentialIssuedAt *time.Time `json:"credential_issued_at,omitempty"`

	CheckedIn   bool       `json:"checked_in"`
	CheckInTime *time.Time `json:"check_in_time,omitempty"`
	CheckInBy   *uuid.UUID `json:"check_in_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingListRM struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	ActivityTitle string    `json:"activity_title"`
	Date          time.Time `json:"date"`
	SlotStart     string    `json:"slot_start"`
	SlotEnd       string    `json:"slot_end"`
	Participants  int32     `json:"participants"`
	FinalAmount   int64     `json:"final_amount"`
	BookingState  string    `json:"booking_state"`
	PaymentState  string    `json:"payment_state"`
	CreatedAt     time.Time `json:"created_at"`
}
