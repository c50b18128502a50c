package repository

import (
	"context"
	"errors"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/usecase"
	"slotbook/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

const bookingColumns = `
	id, number, activity_id, activity_title, venue, address,
	customer_name, customer_phone, customer_email,
	date, slot_start, slot_end, participants,
	price_per_person, price_total, discount, final_amount,
	booking_state, payment_state,
	payment_order_id, payment_id, payment_method, paid_at,
	credential_token, credential_issued_at,
	checked_in, check_in_time, check_in_by,
	created_at, updated_at`

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) usecase.BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, error) {
	query := `
		INSERT INTO bookings (
			id, number, activity_id, activity_title, venue, address,
			customer_name, customer_phone, customer_email,
			date, slot_start, slot_end, participants,
			price_per_person, price_total, discount, final_amount,
			booking_state, payment_state, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9,
			$10, $11, $12, $13,
			$14, $15, $16, $17,
			$18, $19, $20, $20
		)
		RETURNING ` + bookingColumns

	slot := b.Slot()
	customer := b.Customer()
	pricing := b.Pricing()
	snapshot := b.Snapshot()

	row := r.pool.QueryRow(ctx, query,
		b.ID(), b.Number(), b.ActivityID(), snapshot.Title, snapshot.Venue, snapshot.Address,
		customer.Name(), customer.Phone(), customer.Email(),
		slot.Date(), slot.Start(), slot.End(), b.Participants(),
		pricing.PerPerson(), pricing.Total(), pricing.Discount(), pricing.Final(),
		string(b.Status()), string(b.Payment()), b.CreatedAt(),
	)

	rm, err := scanBookingRM(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, infra.WrapRepoErr("booking number already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return rm, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	return r.findOne(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
}

func (r *BookingRepository) FindByNumber(ctx context.Context, number string) (*readmodel.BookingRM, error) {
	return r.findOne(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE number = $1`, number)
}

func (r *BookingRepository) FindByOrderID(ctx context.Context, orderID string) (*readmodel.BookingRM, error) {
	return r.findOne(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE payment_order_id = $1`, orderID)
}

func (r *BookingRepository) findOne(ctx context.Context, query string, arg any) (*readmodel.BookingRM, error) {
	rm, err := scanBookingRM(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return rm, nil
}

func (r *BookingRepository) ListByDate(ctx context.Context, date time.Time) ([]*readmodel.BookingListRM, error) {
	query := `
		SELECT id, number, activity_title, date, slot_start, slot_end,
		       participants, final_amount, booking_state, payment_state, created_at
		FROM bookings
		WHERE date = $1
		ORDER BY slot_start, created_at`

	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	list := make([]*readmodel.BookingListRM, 0)
	for rows.Next() {
		rm := &readmodel.BookingListRM{}
		if err := rows.Scan(
			&rm.ID, &rm.Number, &rm.ActivityTitle, &rm.Date, &rm.SlotStart, &rm.SlotEnd,
			&rm.Participants, &rm.FinalAmount, &rm.BookingState, &rm.PaymentState, &rm.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		list = append(list, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return list, nil
}

func (r *BookingRepository) ListExpiredInitiated(ctx context.Context, before time.Time) ([]*readmodel.BookingRM, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booking_state = 'initiated' AND payment_state <> 'completed' AND created_at < $1
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, before)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expired bookings", err)
	}
	defer rows.Close()

	list := make([]*readmodel.BookingRM, 0)
	for rows.Next() {
		rm, err := scanBookingRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		list = append(list, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return list, nil
}

func (r *BookingRepository) BindPaymentOrder(ctx context.Context, id uuid.UUID, orderID string) error {
	query := `
		UPDATE bookings
		SET payment_order_id = $2, updated_at = now()
		WHERE id = $1 AND payment_order_id IS NULL`

	tag, err := r.pool.Exec(ctx, query, id, orderID)
	if err != nil {
		return infra.WrapRepoErr("failed to bind payment order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment order already bound", nil, infra.KindConflict)
	}
	return nil
}

// ConfirmPayment settles the row in one conditional update. A failed
// payment may still confirm (checkout retry); a completed or cancelled
// one may not.
func (r *BookingRepository) ConfirmPayment(ctx context.Context, id uuid.UUID, paymentID, method string, paidAt time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET payment_state = 'completed',
		    booking_state = 'confirmed',
		    payment_id = $2,
		    payment_method = NULLIF($3, ''),
		    paid_at = $4,
		    updated_at = $4
		WHERE id = $1
		  AND payment_state <> 'completed'
		  AND booking_state = 'initiated'`

	tag, err := r.pool.Exec(ctx, query, id, paymentID, method, paidAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to confirm payment", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *BookingRepository) FailPayment(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET payment_state = 'failed', updated_at = $2
		WHERE id = $1 AND payment_state = 'pending'`

	tag, err := r.pool.Exec(ctx, query, id, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark payment failed", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *BookingRepository) Cancel(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET booking_state = 'cancelled', updated_at = $2
		WHERE id = $1
		  AND booking_state = 'initiated'
		  AND payment_state <> 'completed'`

	tag, err := r.pool.Exec(ctx, query, id, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel booking", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *BookingRepository) SaveCredential(ctx context.Context, id uuid.UUID, token string, issuedAt time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET credential_token = $2, credential_issued_at = $3, updated_at = $3
		WHERE id = $1 AND credential_token IS NULL`

	tag, err := r.pool.Exec(ctx, query, id, token, issuedAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to save credential", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *BookingRepository) Redeem(ctx context.Context, id uuid.UUID, operatorID uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET checked_in = TRUE,
		    check_in_time = $3,
		    check_in_by = $2,
		    booking_state = 'completed',
		    updated_at = $3
		WHERE id = $1
		  AND booking_state = 'confirmed'
		  AND payment_state = 'completed'
		  AND checked_in = FALSE`

	tag, err := r.pool.Exec(ctx, query, id, operatorID, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to redeem booking", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanBookingRM(row pgx.Row) (*readmodel.BookingRM, error) {
	rm := &readmodel.BookingRM{}
	err := row.Scan(
		&rm.ID, &rm.Number, &rm.ActivityID, &rm.ActivityTitle, &rm.Venue, &rm.Address,
		&rm.CustomerName, &rm.CustomerPhone, &rm.CustomerEmail,
		&rm.Date, &rm.SlotStart, &rm.SlotEnd, &rm.Participants,
		&rm.PricePerPerson, &rm.PriceTotal, &rm.Discount, &rm.FinalAmount,
		&rm.BookingState, &rm.PaymentState,
		&rm.PaymentOrderID, &rm.PaymentID, &rm.PaymentMethod, &rm.PaidAt,
		&rm.CredentialToken, &rm.CredentialIssuedAt,
		&rm.CheckedIn, &rm.CheckInTime, &rm.CheckInBy,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return rm, nil
}
