package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ActivityID    uuid.UUID `json:"activity_id" binding:"required"`
	Date          string    `json:"date" binding:"required"`
	SlotStart     string    `json:"slot_start" binding:"required"`
	SlotEnd       string    `json:"slot_end" binding:"required"`
	Participants  int32     `json:"participants" binding:"required"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerPhone string    `json:"customer_phone" binding:"required"`
	CustomerEmail string    `json:"customer_email,omitempty"`
}

func (r *CreateBookingRequest) Normalize() {
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.CustomerPhone = strings.TrimSpace(r.CustomerPhone)
	r.CustomerEmail = strings.TrimSpace(r.CustomerEmail)
}
