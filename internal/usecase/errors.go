package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrActivityNotFound     = errors.New("activity not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrActivityUnavailable  = errors.New("activity not bookable on requested date")
	ErrInvalidSlot          = errors.New("requested slot does not match a configured slot")
	ErrTooManyParticipants  = errors.New("participant count exceeds per-booking maximum")
	ErrInsufficientCapacity = errors.New("insufficient capacity for requested slot")
	ErrValidation           = errors.New("invalid booking request")

	ErrSignatureInvalid = errors.New("payment signature verification failed")
	ErrOrderNotOpened   = errors.New("no payment order opened for booking")
	ErrOrderMismatch    = errors.New("order id does not match booking")
	ErrPaymentNotOpen   = errors.New("payment is no longer open")
	ErrCancelRefused    = errors.New("booking cannot be cancelled")

	ErrInvalidCredential = errors.New("invalid credential")
	ErrWrongState        = errors.New("booking not in redeemable state")
	ErrAlreadyRedeemed   = errors.New("credential already redeemed")
	ErrWrongDate         = errors.New("booking is not for today")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrGatewayOperationFailed  = errors.New("payment gateway operation failed")
)

// DateUnavailableError carries the activity's allowed weekday set so
// the client can offer an alternative; marked as ErrActivityUnavailable.
type DateUnavailableError struct {
	AllowedWeekdays []string
}

func (e *DateUnavailableError) Error() string {
	return "activity not available on requested date; bookable on " + strings.Join(e.AllowedWeekdays, ", ")
}

// CapacityError reports the remaining spots alongside the refusal.
type CapacityError struct {
	Remaining int32
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity: %d spots remaining", e.Remaining)
}

// AlreadyRedeemedError returns the original check-in time to the gate.
type AlreadyRedeemedError struct {
	CheckInTime time.Time
}

func (e *AlreadyRedeemedError) Error() string {
	return "credential already redeemed at " + e.CheckInTime.Format(time.RFC3339)
}
