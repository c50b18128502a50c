package response

import (
	"time"

	"slotbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type PaymentOrderResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	OrderID   string    `json:"orderId"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	KeyID     string    `json:"keyId"`
}

func FromPaymentOrderRM(rm *readmodel.PaymentOrderRM) *PaymentOrderResponse {
	return &PaymentOrderResponse{
		BookingID: rm.BookingID,
		OrderID:   rm.OrderID,
		Amount:    rm.Amount,
		Currency:  rm.Currency,
		KeyID:     rm.KeyID,
	}
}

type RedeemResponse struct {
	Booking     *BookingResponse `json:"booking"`
	CheckInTime time.Time        `json:"checkInTime"`
}
