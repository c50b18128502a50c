package usecase

import (
	"context"
	"log/slog"
	"time"

	"slotbook/internal/domain/activity"
	"slotbook/internal/domain/booking"
	reqdto "slotbook/internal/handler/dto/request"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ReservationUseCase interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*readmodel.BookingRM, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	GetBookingByNumber(ctx context.Context, number string) (*readmodel.BookingRM, error)
	ListBookingsForDate(ctx context.Context, date time.Time) ([]*readmodel.BookingListRM, error)
	CancelBooking(ctx context.Context, id uuid.UUID) error
	ReleaseExpired(ctx context.Context, olderThan time.Duration) (int, error)
}

type reservationUseCaseImpl struct {
	bookingRepo  BookingRepository
	activityRepo ActivityRepository
	ledger       CapacityLedger
	sequence     SequenceAllocator
	clock        clock.Clock
}

func NewReservationUseCase(
	bookingRepo BookingRepository,
	activityRepo ActivityRepository,
	ledger CapacityLedger,
	sequence SequenceAllocator,
	clock clock.Clock,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		bookingRepo:  bookingRepo,
		activityRepo: activityRepo,
		ledger:       ledger,
		sequence:     sequence,
		clock:        clock,
	}
}

func (r *reservationUseCaseImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
) (*readmodel.BookingRM, error) {
	customer, err := booking.NewCustomer(req.CustomerName, req.CustomerPhone, req.CustomerEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if req.Participants < 1 {
		return nil, errs.Mark(booking.ErrInvalidParticipants, ErrValidation)
	}

	activityEntity, err := r.validateAndGetActivity(ctx, req.ActivityID)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if err := r.checkDatePolicy(activityEntity, date); err != nil {
		return nil, err
	}

	window, ok := activityEntity.FindSlot(req.SlotStart, req.SlotEnd)
	if !ok {
		return nil, ErrInvalidSlot
	}

	slot, err := booking.NewSlotKey(date, req.SlotStart, req.SlotEnd)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if activityEntity.MaxPerBooking() > 0 && req.Participants > activityEntity.MaxPerBooking() {
		return nil, ErrTooManyParticipants
	}

	// Capacity is consumed optimistically, before payment. The failure
	// and cancellation paths give it back.
	remaining, err := r.ledger.Reserve(ctx, activityEntity.ID(), slot, window.Capacity, req.Participants)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, errs.Mark(&CapacityError{Remaining: remaining}, ErrInsufficientCapacity)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	bookingEntity, err := r.buildBooking(ctx, activityEntity, slot, req.Participants, customer)
	if err != nil {
		r.compensateReserve(ctx, activityEntity.ID(), slot, req.Participants)
		return nil, err
	}

	bookingRM, err := r.bookingRepo.Create(ctx, bookingEntity)
	if err != nil {
		r.compensateReserve(ctx, activityEntity.ID(), slot, req.Participants)
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return bookingRM, nil
}

func (r *reservationUseCaseImpl) buildBooking(
	ctx context.Context,
	activityEntity *activity.Activity,
	slot booking.SlotKey,
	participants int32,
	customer booking.Customer,
) (*booking.Booking, error) {
	now := r.clock.Now()

	// Numbered by the server-side creation date, not the visit date.
	seq, err := r.sequence.Next(ctx, booking.DateKey(now))
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	pricing := booking.ComputePricing(
		activityEntity.BasePrice(),
		activityEntity.DiscountedPrice(),
		participants,
	)

	snapshot := booking.ActivitySnapshot{
		Title:   activityEntity.Title(),
		Venue:   activityEntity.Venue(),
		Address: activityEntity.Address(),
	}

	return booking.NewBooking(
		booking.FormatNumber(now, seq),
		activityEntity.ID(),
		slot,
		participants,
		customer,
		pricing,
		snapshot,
		now,
	)
}

func (r *reservationUseCaseImpl) checkDatePolicy(activityEntity *activity.Activity, date time.Time) error {
	now := r.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return errs.Mark(&DateUnavailableError{AllowedWeekdays: activityEntity.AllowedWeekdays()}, ErrActivityUnavailable)
	}
	if !activityEntity.AllowsDate(date) || !activityEntity.AllowsWeekday(date.Weekday()) {
		return errs.Mark(&DateUnavailableError{AllowedWeekdays: activityEntity.AllowedWeekdays()}, ErrActivityUnavailable)
	}
	return nil
}

func (r *reservationUseCaseImpl) validateAndGetActivity(
	ctx context.Context,
	activityID uuid.UUID,
) (*activity.Activity, error) {
	activityRM, err := r.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrActivityNotFound
		}
		return nil, errs.Wrap(err, "failed to find activity")
	}

	activityEntity, err := toActivityEntity(activityRM)
	if err != nil {
		return nil, errs.Wrap(err, "invalid activity configuration")
	}

	if !activityEntity.IsBookable() {
		return nil, ErrActivityUnavailable
	}

	return activityEntity, nil
}

func (r *reservationUseCaseImpl) compensateReserve(
	ctx context.Context,
	activityID uuid.UUID,
	slot booking.SlotKey,
	count int32,
) {
	if err := r.ledger.Release(ctx, activityID, slot, count); err != nil {
		slog.Error("failed to release capacity after booking creation failure",
			"activity_id", activityID, "slot", slot.String(), "error", err)
	}
}

func (r *reservationUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	bookingRM, err := r.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return bookingRM, nil
}

func (r *reservationUseCaseImpl) GetBookingByNumber(ctx context.Context, number string) (*readmodel.BookingRM, error) {
	bookingRM, err := r.bookingRepo.FindByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking by number")
	}
	return bookingRM, nil
}

func (r *reservationUseCaseImpl) ListBookingsForDate(ctx context.Context, date time.Time) ([]*readmodel.BookingListRM, error) {
	list, err := r.bookingRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings for date")
	}
	return list, nil
}

// CancelBooking is the administrative cancel. Capacity goes back unless
// payment already completed, in which case the cancel itself is refused.
func (r *reservationUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID) error {
	bookingRM, err := r.GetBooking(ctx, id)
	if err != nil {
		return err
	}

	applied, err := r.bookingRepo.Cancel(ctx, id, r.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !applied {
		return ErrCancelRefused
	}

	r.releaseFor(ctx, bookingRM)
	return nil
}

// ReleaseExpired reclaims capacity held by initiated bookings whose
// payment never completed. Cancellation is the only transition that
// releases capacity, so a booking swept here cannot release twice.
func (r *reservationUseCaseImpl) ReleaseExpired(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := r.clock.Now().Add(-olderThan)

	expired, err := r.bookingRepo.ListExpiredInitiated(ctx, cutoff)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	released := 0
	for _, rm := range expired {
		applied, err := r.bookingRepo.Cancel(ctx, rm.ID, r.clock.Now())
		if err != nil {
			slog.Error("expiry sweep: failed to cancel booking", "booking_id", rm.ID, "error", err)
			continue
		}
		if !applied {
			// A webhook confirmed it between the list and the cancel.
			continue
		}
		r.releaseFor(ctx, rm)
		released++
	}

	return released, nil
}

func (r *reservationUseCaseImpl) releaseFor(ctx context.Context, rm *readmodel.BookingRM) {
	slot, err := booking.NewSlotKey(rm.Date, rm.SlotStart, rm.SlotEnd)
	if err != nil {
		slog.Error("stored booking has invalid slot", "booking_id", rm.ID, "error", err)
		return
	}
	if err := r.ledger.Release(ctx, rm.ActivityID, slot, rm.Participants); err != nil {
		slog.Error("failed to release capacity", "booking_id", rm.ID, "error", err)
	}
}

func toActivityEntity(rm *readmodel.ActivityRM) (*activity.Activity, error) {
	weekdays := make([]time.Weekday, len(rm.Weekdays))
	for i, d := range rm.Weekdays {
		weekdays[i] = time.Weekday(d)
	}

	slots := make([]activity.SlotWindow, len(rm.Slots))
	for i, s := range rm.Slots {
		slots[i] = activity.SlotWindow{Start: s.Start, End: s.End, Capacity: s.Capacity}
	}

	return activity.NewActivity(
		rm.ID,
		rm.Title,
		rm.Venue,
		rm.Address,
		activity.Status(rm.Status),
		rm.StartDate,
		rm.EndDate,
		weekdays,
		slots,
		rm.BasePrice,
		rm.DiscountedPrice,
		rm.MaxPerBooking,
	)
}
