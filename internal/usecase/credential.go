package usecase

import (
	"context"
	"encoding/json"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/credential"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CredentialUseCase interface {
	Issue(ctx context.Context, bookingID uuid.UUID) error
	Resend(ctx context.Context, bookingID uuid.UUID) error
	Redeem(ctx context.Context, token string, operatorID uuid.UUID) (*readmodel.BookingRM, error)
}

// credentialPayload is the plaintext sealed into the entry token. It
// carries enough to render a gate screen without a second lookup, but
// the stored booking row stays authoritative for every check.
type credentialPayload struct {
	BookingID    uuid.UUID `json:"booking_id"`
	Number       string    `json:"number"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	ActivityID   uuid.UUID `json:"activity_id"`
	Date         string    `json:"date"`
	SlotStart    string    `json:"slot_start"`
	SlotEnd      string    `json:"slot_end"`
	Participants int32     `json:"participants"`
	IssuedAt     time.Time `json:"issued_at"`
}

type credentialUseCaseImpl struct {
	bookingRepo BookingRepository
	cipher      *credential.Cipher
	notifier    Notifier
	clock       clock.Clock
}

func NewCredentialUseCase(
	bookingRepo BookingRepository,
	cipher *credential.Cipher,
	notifier Notifier,
	clock clock.Clock,
) CredentialUseCase {
	return &credentialUseCaseImpl{
		bookingRepo: bookingRepo,
		cipher:      cipher,
		notifier:    notifier,
		clock:       clock,
	}
}

// Issue seals an entry token for a paid booking. Re-issuing is a no-op:
// the first stored token stays valid and subsequent calls keep it.
func (c *credentialUseCaseImpl) Issue(ctx context.Context, bookingID uuid.UUID) error {
	rm, err := c.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if rm.CredentialToken != nil {
		return nil
	}
	if rm.BookingState != "confirmed" || rm.PaymentState != "completed" {
		return ErrWrongState
	}

	now := c.clock.Now()
	payload := credentialPayload{
		BookingID:    rm.ID,
		Number:       rm.Number,
		CustomerName: rm.CustomerName,
		Phone:        rm.CustomerPhone,
		ActivityID:   rm.ActivityID,
		Date:         rm.Date.Format("2006-01-02"),
		SlotStart:    rm.SlotStart,
		SlotEnd:      rm.SlotEnd,
		Participants: rm.Participants,
		IssuedAt:     now,
	}
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode credential payload")
	}

	token, err := c.cipher.Seal(plaintext)
	if err != nil {
		return errs.Wrap(err, "failed to seal credential")
	}

	// applied=false means a concurrent issuer already stored a token;
	// that one wins and this one is discarded.
	if _, err := c.bookingRepo.SaveCredential(ctx, bookingID, token, now); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// Resend pushes the confirmation (credential included) to the customer
// again, issuing first if the post-payment issuance was missed.
func (c *credentialUseCaseImpl) Resend(ctx context.Context, bookingID uuid.UUID) error {
	rm, err := c.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if rm.CredentialToken == nil {
		if err := c.Issue(ctx, bookingID); err != nil {
			return err
		}
		if rm, err = c.findBooking(ctx, bookingID); err != nil {
			return err
		}
	}
	if err := c.notifier.BookingConfirmed(ctx, rm); err != nil {
		return errs.Wrap(err, "failed to resend confirmation")
	}
	return nil
}

// Redeem validates the presented token against the stored booking and
// consumes it. Any cryptographic or structural failure collapses into
// ErrInvalidCredential so the gate response does not reveal which check
// failed.
func (c *credentialUseCaseImpl) Redeem(ctx context.Context, token string, operatorID uuid.UUID) (*readmodel.BookingRM, error) {
	plaintext, err := c.cipher.Open(token)
	if err != nil {
		return nil, ErrInvalidCredential
	}
	var payload credentialPayload
	if err := json.Unmarshal(plaintext, &payload); err != nil {
		return nil, ErrInvalidCredential
	}

	rm, err := c.findBooking(ctx, payload.BookingID)
	if err != nil {
		return nil, err
	}
	// A re-issued or foreign token decrypts fine but is not the one on
	// record; treat it the same as a forged one.
	if rm.CredentialToken == nil || *rm.CredentialToken != token {
		return nil, ErrInvalidCredential
	}

	if rm.BookingState != "confirmed" || rm.PaymentState != "completed" {
		if rm.CheckedIn && rm.CheckInTime != nil {
			return nil, errs.Mark(&AlreadyRedeemedError{CheckInTime: *rm.CheckInTime}, ErrAlreadyRedeemed)
		}
		return nil, ErrWrongState
	}
	if rm.CheckedIn {
		if rm.CheckInTime != nil {
			return nil, errs.Mark(&AlreadyRedeemedError{CheckInTime: *rm.CheckInTime}, ErrAlreadyRedeemed)
		}
		return nil, ErrAlreadyRedeemed
	}

	now := c.clock.Now()
	if !sameDate(rm.Date, now) {
		return nil, ErrWrongDate
	}

	applied, err := c.bookingRepo.Redeem(ctx, rm.ID, operatorID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !applied {
		// Lost to a concurrent redeem (or a cancel); re-read to tell
		// the gate which.
		rm, err := c.findBooking(ctx, rm.ID)
		if err != nil {
			return nil, err
		}
		if rm.CheckedIn && rm.CheckInTime != nil {
			return nil, errs.Mark(&AlreadyRedeemedError{CheckInTime: *rm.CheckInTime}, ErrAlreadyRedeemed)
		}
		return nil, ErrWrongState
	}

	return c.findBooking(ctx, rm.ID)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (c *credentialUseCaseImpl) findBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	rm, err := c.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return rm, nil
}
