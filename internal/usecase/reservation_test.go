//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/readmodel"
	"slotbook/tests/common/builder"
	"slotbook/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ReservationTestSuite struct {
	suite.Suite
	repo     *fake.BookingRepo
	ledger   *fake.Ledger
	sequence *fake.Sequence
	clock    *clock.MockClock
	activity *readmodel.ActivityRM
	uc       usecase.ReservationUseCase
}

func (s *ReservationTestSuite) SetupTest() {
	s.repo = fake.NewBookingRepo()
	s.ledger = fake.NewLedger()
	s.sequence = fake.NewSequence()
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC))
	s.activity = builder.NewActivityBuilder().BuildRM()
	s.uc = usecase.NewReservationUseCase(
		s.repo,
		fake.NewActivityRepo(s.activity),
		s.ledger,
		s.sequence,
		s.clock,
	)
}

func TestReservationSuite(t *testing.T) {
	suite.Run(t, new(ReservationTestSuite))
}

func (s *ReservationTestSuite) newRequest() *builder.BookingBuilder {
	return builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ActivityID = s.activity.ID
	})
}

func (s *ReservationTestSuite) mustCreate() *readmodel.BookingRM {
	rm, err := s.uc.CreateBooking(context.Background(), s.newRequest().BuildCreateRequestDTO())
	s.Require().NoError(err)
	return rm
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *ReservationTestSuite) TestCreateBooking() {
	ctx := context.Background()

	s.Run("success: books the slot and consumes capacity", func() {
		s.SetupTest()
		rm := s.mustCreate()

		s.Equal("BK-260901-0001", rm.Number)
		s.Equal("initiated", rm.BookingState)
		s.Equal("pending", rm.PaymentState)
		s.Equal(int64(300000), rm.FinalAmount)

		stored, err := s.uc.GetBooking(ctx, rm.ID)
		s.Require().NoError(err)
		s.Equal(rm.Number, stored.Number)

		slot := s.mustSlot(rm)
		remaining, err := s.ledger.Remaining(ctx, s.activity.ID, slot)
		s.Require().NoError(err)
		s.Equal(int32(8), remaining)
	})

	s.Run("booking numbers increment within the day", func() {
		s.SetupTest()
		first := s.mustCreate()
		second := s.mustCreate()
		s.Equal("BK-260901-0001", first.Number)
		s.Equal("BK-260901-0002", second.Number)
	})

	s.Run("unknown activity", func() {
		s.SetupTest()
		req := s.newRequest().With(func(b *builder.BookingBuilder) { b.ActivityID = uuid.New() })
		_, err := s.uc.CreateBooking(ctx, req.BuildCreateRequestDTO())
		s.ErrorIs(err, usecase.ErrActivityNotFound)
	})

	s.Run("inactive activity", func() {
		s.SetupTest()
		inactive := builder.NewActivityBuilder().With(func(a *builder.ActivityBuilder) { a.Status = "inactive" }).BuildRM()
		uc := usecase.NewReservationUseCase(s.repo, fake.NewActivityRepo(inactive), s.ledger, s.sequence, s.clock)
		req := s.newRequest().With(func(b *builder.BookingBuilder) { b.ActivityID = inactive.ID })
		_, err := uc.CreateBooking(ctx, req.BuildCreateRequestDTO())
		s.ErrorIs(err, usecase.ErrActivityUnavailable)
	})

	s.Run("date outside weekday policy carries the allowed set", func() {
		s.SetupTest()
		req := s.newRequest().With(func(b *builder.BookingBuilder) {
			b.Date = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // a Monday
		})
		_, err := s.uc.CreateBooking(ctx, req.BuildCreateRequestDTO())
		s.ErrorIs(err, usecase.ErrActivityUnavailable)

		var dateErr *usecase.DateUnavailableError
		s.Require().ErrorAs(err, &dateErr)
		s.Equal([]string{"Sunday", "Saturday"}, dateErr.AllowedWeekdays)
	})

	s.Run("past date", func() {
		s.SetupTest()
		req := s.newRequest().With(func(b *builder.BookingBuilder) {
			b.Date = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC) // a past Saturday
		})
		_, err := s.uc.CreateBooking(ctx, req.BuildCreateRequestDTO())
		s.ErrorIs(err, usecase.ErrActivityUnavailable)
	})

	s.Run("unconfigured slot", func() {
		s.SetupTest()
		req := s.newRequest().With(func(b *builder.BookingBuilder) { b.SlotStart, b.SlotEnd = "11:00", "13:00" })
		_, err := s.uc.CreateBooking(ctx, req.BuildCreateRequestDTO())
		s.ErrorIs(err, usecase.ErrInvalidSlot)
	})

	s.Run("participants above per-booking maximum", func() {
		s.SetupTest()
		req := s.newRequest().With(func(b *builder.BookingBuilder) { b.Participants = 5 })
		_, err := s.uc.CreateBooking(ctx, req.BuildCreateRequestDTO())
		s.ErrorIs(err, usecase.ErrTooManyParticipants)
	})

	s.Run("zero participants", func() {
		s.SetupTest()
		req := s.newRequest().With(func(b *builder.BookingBuilder) { b.Participants = 0 })
		_, err := s.uc.CreateBooking(ctx, req.BuildCreateRequestDTO())
		s.ErrorIs(err, usecase.ErrValidation)
	})

	s.Run("capacity refusal reports remaining spots", func() {
		s.SetupTest()
		for i := 0; i < 2; i++ { // 2 x 4 participants, 2 of 10 left
			req := s.newRequest().With(func(b *builder.BookingBuilder) { b.Participants = 4 })
			_, err := s.uc.CreateBooking(ctx, req.BuildCreateRequestDTO())
			s.Require().NoError(err)
		}

		req := s.newRequest().With(func(b *builder.BookingBuilder) { b.Participants = 3 })
		_, err := s.uc.CreateBooking(ctx, req.BuildCreateRequestDTO())
		s.ErrorIs(err, usecase.ErrInsufficientCapacity)

		var capErr *usecase.CapacityError
		s.Require().ErrorAs(err, &capErr)
		s.Equal(int32(2), capErr.Remaining)
	})

	s.Run("capacity is released when persistence fails", func() {
		s.SetupTest()
		s.repo.FailCreate = true
		_, err := s.uc.CreateBooking(ctx, s.newRequest().BuildCreateRequestDTO())
		s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)

		s.repo.FailCreate = false
		rm := s.mustCreate()
		remaining, err := s.ledger.Remaining(ctx, s.activity.ID, s.mustSlot(rm))
		s.Require().NoError(err)
		s.Equal(int32(8), remaining)
	})

	s.Run("capacity is released when numbering fails", func() {
		s.SetupTest()
		s.sequence.FailNext = true
		_, err := s.uc.CreateBooking(ctx, s.newRequest().BuildCreateRequestDTO())
		s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)

		s.sequence.FailNext = false
		rm := s.mustCreate()
		remaining, err := s.ledger.Remaining(ctx, s.activity.ID, s.mustSlot(rm))
		s.Require().NoError(err)
		s.Equal(int32(8), remaining)
	})
}

func (s *ReservationTestSuite) TestCreateBookingConcurrent() {
	// 8 concurrent requests for 2 spots each against a capacity of 10:
	// exactly 5 may land, the rest must be refused, never oversold.
	ctx := context.Background()

	var wg sync.WaitGroup
	var created, refused atomic.Int32
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.uc.CreateBooking(ctx, s.newRequest().BuildCreateRequestDTO())
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, usecase.ErrInsufficientCapacity):
				refused.Add(1)
			default:
				s.Failf("unexpected error", "%v", err)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(5), created.Load())
	s.Equal(int32(3), refused.Load())

	slot, err := booking.NewSlotKey(time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), "10:00", "12:00")
	s.Require().NoError(err)
	remaining, err := s.ledger.Remaining(ctx, s.activity.ID, slot)
	s.Require().NoError(err)
	s.Equal(int32(0), remaining)
}

// ================================================================================
// TestQueries
// ================================================================================

func (s *ReservationTestSuite) TestQueries() {
	ctx := context.Background()

	s.Run("get by id not found", func() {
		_, err := s.uc.GetBooking(ctx, uuid.New())
		s.ErrorIs(err, usecase.ErrBookingNotFound)
	})

	s.Run("get by number", func() {
		rm := s.mustCreate()
		found, err := s.uc.GetBookingByNumber(ctx, rm.Number)
		s.Require().NoError(err)
		s.Equal(rm.ID, found.ID)

		_, err = s.uc.GetBookingByNumber(ctx, "BK-000000-0000")
		s.ErrorIs(err, usecase.ErrBookingNotFound)
	})

	s.Run("list for date", func() {
		s.SetupTest()
		rm := s.mustCreate()

		list, err := s.uc.ListBookingsForDate(ctx, rm.Date)
		s.Require().NoError(err)
		s.Require().Len(list, 1)
		s.Equal(rm.Number, list[0].Number)

		empty, err := s.uc.ListBookingsForDate(ctx, rm.Date.AddDate(0, 0, 1))
		s.Require().NoError(err)
		s.Empty(empty)
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *ReservationTestSuite) TestCancelBooking() {
	ctx := context.Background()

	s.Run("cancel returns the capacity", func() {
		s.SetupTest()
		rm := s.mustCreate()

		s.Require().NoError(s.uc.CancelBooking(ctx, rm.ID))

		cancelled, err := s.uc.GetBooking(ctx, rm.ID)
		s.Require().NoError(err)
		s.Equal("cancelled", cancelled.BookingState)

		remaining, err := s.ledger.Remaining(ctx, s.activity.ID, s.mustSlot(rm))
		s.Require().NoError(err)
		s.Equal(int32(10), remaining)
	})

	s.Run("second cancel is refused and does not release twice", func() {
		s.SetupTest()
		rm := s.mustCreate()
		s.mustCreate() // second booking keeps 2 spots held

		s.Require().NoError(s.uc.CancelBooking(ctx, rm.ID))
		s.ErrorIs(s.uc.CancelBooking(ctx, rm.ID), usecase.ErrCancelRefused)

		remaining, err := s.ledger.Remaining(ctx, s.activity.ID, s.mustSlot(rm))
		s.Require().NoError(err)
		s.Equal(int32(8), remaining) // only the other booking's hold stands
	})

	s.Run("cancel refused after payment completion", func() {
		s.SetupTest()
		rm := s.mustCreate()
		applied, err := s.repo.ConfirmPayment(ctx, rm.ID, "pay_001", "upi", s.clock.Now())
		s.Require().NoError(err)
		s.Require().True(applied)

		s.ErrorIs(s.uc.CancelBooking(ctx, rm.ID), usecase.ErrCancelRefused)
	})

	s.Run("cancel unknown booking", func() {
		s.ErrorIs(s.uc.CancelBooking(ctx, uuid.New()), usecase.ErrBookingNotFound)
	})
}

// ================================================================================
// TestReleaseExpired
// ================================================================================

func (s *ReservationTestSuite) TestReleaseExpired() {
	ctx := context.Background()

	s.Run("sweeps stale unpaid bookings", func() {
		s.SetupTest()
		stale := s.mustCreate()
		paid := s.mustCreate()

		applied, err := s.repo.ConfirmPayment(ctx, paid.ID, "pay_001", "upi", s.clock.Now())
		s.Require().NoError(err)
		s.Require().True(applied)

		s.clock.Add(45 * time.Minute)
		fresh := s.mustCreate()

		released, err := s.uc.ReleaseExpired(ctx, 30*time.Minute)
		s.Require().NoError(err)
		s.Equal(1, released)

		swept, err := s.uc.GetBooking(ctx, stale.ID)
		s.Require().NoError(err)
		s.Equal("cancelled", swept.BookingState)

		kept, err := s.uc.GetBooking(ctx, paid.ID)
		s.Require().NoError(err)
		s.Equal("confirmed", kept.BookingState)

		untouched, err := s.uc.GetBooking(ctx, fresh.ID)
		s.Require().NoError(err)
		s.Equal("initiated", untouched.BookingState)

		// 3 holds of 2, one returned.
		remaining, err := s.ledger.Remaining(ctx, s.activity.ID, s.mustSlot(stale))
		s.Require().NoError(err)
		s.Equal(int32(6), remaining)
	})

	s.Run("nothing to sweep", func() {
		s.SetupTest()
		s.mustCreate()

		released, err := s.uc.ReleaseExpired(ctx, 30*time.Minute)
		s.Require().NoError(err)
		s.Zero(released)
	})
}

func (s *ReservationTestSuite) mustSlot(rm *readmodel.BookingRM) booking.SlotKey {
	slot, err := booking.NewSlotKey(rm.Date, rm.SlotStart, rm.SlotEnd)
	s.Require().NoError(err)
	return slot
}
