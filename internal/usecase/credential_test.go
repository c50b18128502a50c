//go:build unit

package usecase_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/credential"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/readmodel"
	"slotbook/tests/common/builder"
	"slotbook/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CredentialTestSuite struct {
	suite.Suite
	repo     *fake.BookingRepo
	cipher   *credential.Cipher
	notifier *fake.Notifier
	clock    *clock.MockClock
	uc       usecase.CredentialUseCase
}

func (s *CredentialTestSuite) SetupTest() {
	s.repo = fake.NewBookingRepo()
	s.notifier = fake.NewNotifier()
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))

	cipher, err := credential.NewCipher("test-credential-secret")
	s.Require().NoError(err)
	s.cipher = cipher

	s.uc = usecase.NewCredentialUseCase(s.repo, s.cipher, s.notifier, s.clock)
}

func TestCredentialSuite(t *testing.T) {
	suite.Run(t, new(CredentialTestSuite))
}

func (s *CredentialTestSuite) createBooking() *readmodel.BookingRM {
	entity, err := builder.NewBookingBuilder().BuildDomain()
	s.Require().NoError(err)
	rm, err := s.repo.Create(context.Background(), entity)
	s.Require().NoError(err)
	return rm
}

func (s *CredentialTestSuite) confirmedBooking() *readmodel.BookingRM {
	ctx := context.Background()
	rm := s.createBooking()
	applied, err := s.repo.ConfirmPayment(ctx, rm.ID, "pay_001", "upi", s.clock.Now())
	s.Require().NoError(err)
	s.Require().True(applied)
	confirmed, err := s.repo.FindByID(ctx, rm.ID)
	s.Require().NoError(err)
	return confirmed
}

func (s *CredentialTestSuite) issuedToken(id uuid.UUID) string {
	s.Require().NoError(s.uc.Issue(context.Background(), id))
	rm, err := s.repo.FindByID(context.Background(), id)
	s.Require().NoError(err)
	s.Require().NotNil(rm.CredentialToken)
	return *rm.CredentialToken
}

// ================================================================================
// TestIssue
// ================================================================================

func (s *CredentialTestSuite) TestIssue() {
	ctx := context.Background()

	s.Run("seals the booking details into the stored token", func() {
		s.SetupTest()
		rm := s.confirmedBooking()

		token := s.issuedToken(rm.ID)

		plaintext, err := s.cipher.Open(token)
		s.Require().NoError(err)
		var payload map[string]any
		s.Require().NoError(json.Unmarshal(plaintext, &payload))
		s.Equal(rm.ID.String(), payload["booking_id"])
		s.Equal(rm.Number, payload["number"])
		s.Equal("2026-09-05", payload["date"])
		s.Equal("10:00", payload["slot_start"])
		s.EqualValues(2, payload["participants"])
	})

	s.Run("re-issue keeps the first token", func() {
		s.SetupTest()
		rm := s.confirmedBooking()

		first := s.issuedToken(rm.ID)
		second := s.issuedToken(rm.ID)
		s.Equal(first, second)
	})

	s.Run("refused before payment", func() {
		s.SetupTest()
		rm := s.createBooking()
		s.ErrorIs(s.uc.Issue(ctx, rm.ID), usecase.ErrWrongState)
	})

	s.Run("unknown booking", func() {
		s.ErrorIs(s.uc.Issue(ctx, uuid.New()), usecase.ErrBookingNotFound)
	})
}

// ================================================================================
// TestResend
// ================================================================================

func (s *CredentialTestSuite) TestResend() {
	ctx := context.Background()

	s.Run("issues first when the token is missing, then notifies", func() {
		s.SetupTest()
		rm := s.confirmedBooking()

		s.Require().NoError(s.uc.Resend(ctx, rm.ID))

		s.Require().Equal(1, s.notifier.Count())
		s.NotNil(s.notifier.Confirmed[0].CredentialToken)
	})

	s.Run("resend with an existing token notifies without re-issuing", func() {
		s.SetupTest()
		rm := s.confirmedBooking()
		token := s.issuedToken(rm.ID)

		s.Require().NoError(s.uc.Resend(ctx, rm.ID))

		s.Require().Equal(1, s.notifier.Count())
		s.Require().NotNil(s.notifier.Confirmed[0].CredentialToken)
		s.Equal(token, *s.notifier.Confirmed[0].CredentialToken)
	})

	s.Run("refused before payment", func() {
		s.SetupTest()
		rm := s.createBooking()
		s.ErrorIs(s.uc.Resend(ctx, rm.ID), usecase.ErrWrongState)
	})
}

// ================================================================================
// TestRedeem
// ================================================================================

func (s *CredentialTestSuite) TestRedeem() {
	ctx := context.Background()
	operator := uuid.New()
	visitDay := time.Date(2026, 9, 5, 9, 30, 0, 0, time.UTC)

	s.Run("success: checks the booking in on the visit date", func() {
		s.SetupTest()
		rm := s.confirmedBooking()
		token := s.issuedToken(rm.ID)
		s.clock.Set(visitDay)

		redeemed, err := s.uc.Redeem(ctx, token, operator)
		s.Require().NoError(err)

		s.Equal("completed", redeemed.BookingState)
		s.True(redeemed.CheckedIn)
		s.Require().NotNil(redeemed.CheckInBy)
		s.Equal(operator, *redeemed.CheckInBy)
		s.Require().NotNil(redeemed.CheckInTime)
		s.Equal(visitDay, *redeemed.CheckInTime)
	})

	s.Run("second redeem reports the original check-in time", func() {
		s.SetupTest()
		rm := s.confirmedBooking()
		token := s.issuedToken(rm.ID)
		s.clock.Set(visitDay)

		_, err := s.uc.Redeem(ctx, token, operator)
		s.Require().NoError(err)

		s.clock.Add(2 * time.Hour)
		_, err = s.uc.Redeem(ctx, token, operator)
		s.ErrorIs(err, usecase.ErrAlreadyRedeemed)

		var redeemedErr *usecase.AlreadyRedeemedError
		s.Require().ErrorAs(err, &redeemedErr)
		s.Equal(visitDay, redeemedErr.CheckInTime)
	})

	s.Run("refused on the wrong day", func() {
		s.SetupTest()
		rm := s.confirmedBooking()
		token := s.issuedToken(rm.ID)

		s.clock.Set(visitDay.AddDate(0, 0, -1))
		_, err := s.uc.Redeem(ctx, token, operator)
		s.ErrorIs(err, usecase.ErrWrongDate)

		s.clock.Set(visitDay.AddDate(0, 0, 1))
		_, err = s.uc.Redeem(ctx, token, operator)
		s.ErrorIs(err, usecase.ErrWrongDate)
	})

	s.Run("garbage token", func() {
		_, err := s.uc.Redeem(ctx, "not-a-token", operator)
		s.ErrorIs(err, usecase.ErrInvalidCredential)
	})

	s.Run("well-formed token that is not the one on record", func() {
		s.SetupTest()
		rm := s.confirmedBooking()
		s.issuedToken(rm.ID)
		s.clock.Set(visitDay)

		// Decrypts fine but was never stored for this booking.
		forged, err := s.cipher.Seal([]byte(`{"booking_id":"` + rm.ID.String() + `"}`))
		s.Require().NoError(err)

		_, err = s.uc.Redeem(ctx, forged, operator)
		s.ErrorIs(err, usecase.ErrInvalidCredential)
	})

	s.Run("token for a booking that is no longer confirmed", func() {
		s.SetupTest()
		rm := s.createBooking()
		// Stored directly so the state check, not the token check, trips.
		applied, err := s.repo.SaveCredential(ctx, rm.ID, s.sealFor(rm.ID), s.clock.Now())
		s.Require().NoError(err)
		s.Require().True(applied)

		stored, err := s.repo.FindByID(ctx, rm.ID)
		s.Require().NoError(err)

		_, err = s.uc.Redeem(ctx, *stored.CredentialToken, operator)
		s.ErrorIs(err, usecase.ErrWrongState)
	})
}

func (s *CredentialTestSuite) sealFor(id uuid.UUID) string {
	token, err := s.cipher.Seal([]byte(`{"booking_id":"` + id.String() + `"}`))
	s.Require().NoError(err)
	return token
}
