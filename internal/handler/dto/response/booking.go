package response

import (
	"time"

	"slotbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	ActivityID    uuid.UUID `json:"activityId"`
	ActivityTitle string    `json:"activityTitle"`
	Venue         string    `json:"venue"`
	Address       string    `json:"address"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail,omitempty"`

	Date         string `json:"date"`
	SlotStart    string `json:"slotStart"`
	SlotEnd      string `json:"slotEnd"`
	Participants int32  `json:"participants"`

	PricePerPerson int64 `json:"pricePerPerson"`
	PriceTotal     int64 `json:"priceTotal"`
	Discount       int64 `json:"discount"`
	FinalAmount    int64 `json:"finalAmount"`

	BookingState string `json:"bookingState"`
	PaymentState string `json:"paymentState"`

	PaymentOrderID *string    `json:"paymentOrderId,omitempty"`
	PaymentMethod  *string    `json:"paymentMethod,omitempty"`
	PaidAt         *time.Time `json:"paidAt,omitempty"`

	CredentialToken *string `json:"credentialToken,omitempty"`

	CheckedIn   bool       `json:"checkedIn"`
	CheckInTime *time.Time `json:"checkInTime,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"number"`
	ActivityTitle string    `json:"activityTitle"`
	Date          string    `json:"date"`
	SlotStart     string    `json:"slotStart"`
	SlotEnd       string    `json:"slotEnd"`
	Participants  int32     `json:"participants"`
	FinalAmount   int64     `json:"finalAmount"`
	BookingState  string    `json:"bookingState"`
	PaymentState  string    `json:"paymentState"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	return &BookingResponse{
		ID:              rm.ID,
		Number:          rm.Number,
		ActivityID:      rm.ActivityID,
		ActivityTitle:   rm.ActivityTitle,
		Venue:           rm.Venue,
		Address:         rm.Address,
		CustomerName:    rm.CustomerName,
		CustomerPhone:   rm.CustomerPhone,
		CustomerEmail:   rm.CustomerEmail,
		Date:            rm.Date.Format("2006-01-02"),
		SlotStart:       rm.SlotStart,
		SlotEnd:         rm.SlotEnd,
		Participants:    rm.Participants,
		PricePerPerson:  rm.PricePerPerson,
		PriceTotal:      rm.PriceTotal,
		Discount:        rm.Discount,
		FinalAmount:     rm.FinalAmount,
		BookingState:    rm.BookingState,
		PaymentState:    rm.PaymentState,
		PaymentOrderID:  rm.PaymentOrderID,
		PaymentMethod:   rm.PaymentMethod,
		PaidAt:          rm.PaidAt,
		CredentialToken: rm.CredentialToken,
		CheckedIn:       rm.CheckedIn,
		CheckInTime:     rm.CheckInTime,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromBookingListRM(rm *readmodel.BookingListRM) *BookingListResponse {
	return &BookingListResponse{
		ID:            rm.ID,
		Number:        rm.Number,
		ActivityTitle: rm.ActivityTitle,
		Date:          rm.Date.Format("2006-01-02"),
		SlotStart:     rm.SlotStart,
		SlotEnd:       rm.SlotEnd,
		Participants:  rm.Participants,
		FinalAmount:   rm.FinalAmount,
		BookingState:  rm.BookingState,
		PaymentState:  rm.PaymentState,
		CreatedAt:     rm.CreatedAt,
	}
}
