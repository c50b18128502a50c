package readmodel

import "github.com/google/uuid"

// PaymentOrderRM is what a checkout client needs to drive the gateway
// widget. KeyID is the public half of the gateway credentials.
type PaymentOrderRM struct {
	BookingID uuid.UUID `json:"booking_id"`
	OrderID   string    `json:"order_id"`
	Amount    int64     `json:"amount"` // minor units
	Currency  string    `json:"currency"`
	KeyID     string    `json:"key_id"`
}
