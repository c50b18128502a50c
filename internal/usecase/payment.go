package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"
	"slotbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const (
	webhookEventCaptured = "payment.captured"
	webhookEventFailed   = "payment.failed"
)

type PaymentUseCase interface {
	OpenOrder(ctx context.Context, bookingID uuid.UUID) (*readmodel.PaymentOrderRM, error)
	ConfirmFromCallback(ctx context.Context, bookingID uuid.UUID, orderID, paymentID, signature string) (*readmodel.BookingRM, error)
	HandleWebhook(ctx context.Context, body []byte, signature, eventID string) error
	MarkFailed(ctx context.Context, bookingID uuid.UUID) error
}

type paymentUseCaseImpl struct {
	bookingRepo BookingRepository
	ledger      CapacityLedger
	gateway     PaymentGateway
	dedupe      WebhookDedupe
	credential  CredentialUseCase
	notifier    Notifier
	clock       clock.Clock
	cfg         config.RazorpayConfig
}

func NewPaymentUseCase(
	bookingRepo BookingRepository,
	ledger CapacityLedger,
	gateway PaymentGateway,
	dedupe WebhookDedupe,
	credential CredentialUseCase,
	notifier Notifier,
	clock clock.Clock,
	cfg config.RazorpayConfig,
) PaymentUseCase {
	return &paymentUseCaseImpl{
		bookingRepo: bookingRepo,
		ledger:      ledger,
		gateway:     gateway,
		dedupe:      dedupe,
		credential:  credential,
		notifier:    notifier,
		clock:       clock,
		cfg:         cfg,
	}
}

// OpenOrder creates (or returns the already-bound) gateway order for the
// booking. Calling it twice for the same booking yields the same order,
// so a client retry never double-charges.
func (p *paymentUseCaseImpl) OpenOrder(ctx context.Context, bookingID uuid.UUID) (*readmodel.PaymentOrderRM, error) {
	rm, err := p.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if rm.PaymentState == "completed" || rm.BookingState == "cancelled" {
		return nil, ErrPaymentNotOpen
	}
	if rm.PaymentOrderID != nil {
		return p.orderRM(rm, *rm.PaymentOrderID), nil
	}

	orderID, err := p.gateway.CreateOrder(rm.FinalAmount, p.cfg.Currency, rm.Number, map[string]interface{}{
		"booking_id":     rm.ID.String(),
		"booking_number": rm.Number,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrGatewayOperationFailed)
	}

	if err := p.bookingRepo.BindPaymentOrder(ctx, bookingID, orderID); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Lost the bind race; the winner's order is authoritative.
			rm, err = p.findBooking(ctx, bookingID)
			if err != nil {
				return nil, err
			}
			if rm.PaymentOrderID != nil {
				return p.orderRM(rm, *rm.PaymentOrderID), nil
			}
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return p.orderRM(rm, orderID), nil
}

func (p *paymentUseCaseImpl) orderRM(rm *readmodel.BookingRM, orderID string) *readmodel.PaymentOrderRM {
	return &readmodel.PaymentOrderRM{
		BookingID: rm.ID,
		OrderID:   orderID,
		Amount:    rm.FinalAmount,
		Currency:  p.cfg.Currency,
		KeyID:     p.cfg.KeyID,
	}
}

// ConfirmFromCallback settles the client-side checkout callback. A bad
// signature marks the payment failed but keeps the capacity hold, since
// the same client may retry checkout with a fresh signature.
func (p *paymentUseCaseImpl) ConfirmFromCallback(
	ctx context.Context,
	bookingID uuid.UUID,
	orderID, paymentID, signature string,
) (*readmodel.BookingRM, error) {
	rm, err := p.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if rm.PaymentOrderID == nil {
		return nil, ErrOrderNotOpened
	}
	if *rm.PaymentOrderID != orderID {
		return nil, ErrOrderMismatch
	}
	if rm.PaymentState == "completed" {
		return rm, nil
	}

	if !p.gateway.VerifyPaymentSignature(orderID, paymentID, signature) {
		if _, err := p.bookingRepo.FailPayment(ctx, bookingID, p.clock.Now()); err != nil {
			slog.Error("failed to mark payment failed after signature mismatch",
				"booking_id", bookingID, "error", err)
		}
		return nil, ErrSignatureInvalid
	}

	return p.settle(ctx, rm, paymentID, "")
}

// settle applies the confirm transition and runs the post-payment side
// effects. Credential issuance and notification failures do not unwind
// the payment; both are retryable through their own endpoints.
func (p *paymentUseCaseImpl) settle(
	ctx context.Context,
	rm *readmodel.BookingRM,
	paymentID, method string,
) (*readmodel.BookingRM, error) {
	applied, err := p.bookingRepo.ConfirmPayment(ctx, rm.ID, paymentID, method, p.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !applied {
		rm, err := p.findBooking(ctx, rm.ID)
		if err != nil {
			return nil, err
		}
		if rm.PaymentState == "completed" {
			return rm, nil
		}
		return nil, ErrPaymentNotOpen
	}

	if err := p.credential.Issue(ctx, rm.ID); err != nil {
		slog.Error("credential issuance failed after payment",
			"booking_id", rm.ID, "error", err)
	}

	confirmed, err := p.findBooking(ctx, rm.ID)
	if err != nil {
		return nil, err
	}

	if err := p.notifier.BookingConfirmed(ctx, confirmed); err != nil {
		slog.Error("confirmation notification failed",
			"booking_id", rm.ID, "error", err)
	}

	return confirmed, nil
}

type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Method  string `json:"method"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// HandleWebhook reconciles gateway-pushed events. Once the signature
// checks out the delivery is acknowledged no matter what the payload
// holds; redeliveries, unknown events, unmatched orders, and unreadable
// bodies are logged no-ops. Only signature failures and infrastructure
// errors surface, so the gateway retries exactly the deliveries that
// did not land.
func (p *paymentUseCaseImpl) HandleWebhook(ctx context.Context, body []byte, signature, eventID string) error {
	if !p.gateway.VerifyWebhookSignature(body, signature) {
		return ErrSignatureInvalid
	}

	var env webhookEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		slog.Warn("ignoring undecodable webhook payload", "event_id", eventID, "error", err)
		return nil
	}

	entity := env.Payload.Payment.Entity
	if env.Event != webhookEventCaptured && env.Event != webhookEventFailed {
		slog.Debug("ignoring webhook event", "event", env.Event)
		return nil
	}
	if entity.OrderID == "" {
		slog.Warn("ignoring webhook payload without order id", "event", env.Event, "event_id", eventID)
		return nil
	}

	// Best-effort redelivery fast path. The conditional update below is
	// the real idempotency barrier, so dedupe errors are not fatal.
	key := eventID
	if key == "" {
		key = env.Event + ":" + entity.ID
	}
	if first, err := p.dedupe.FirstDelivery(ctx, key); err != nil {
		slog.Warn("webhook dedupe unavailable", "error", err)
	} else if !first {
		return nil
	}

	rm, err := p.bookingRepo.FindByOrderID(ctx, entity.OrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("webhook for unknown order", "order_id", entity.OrderID, "event", env.Event)
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	switch env.Event {
	case webhookEventCaptured:
		if rm.PaymentState == "completed" {
			return nil
		}
		_, err := p.settle(ctx, rm, entity.ID, entity.Method)
		if errors.Is(err, ErrPaymentNotOpen) {
			return nil
		}
		return err
	case webhookEventFailed:
		return p.markFailed(ctx, rm)
	}
	return nil
}

// MarkFailed records a definitive gateway failure reported outside the
// webhook channel. Same semantics as the payment.failed event: the
// booking is cancelled and its seats go back on sale.
func (p *paymentUseCaseImpl) MarkFailed(ctx context.Context, bookingID uuid.UUID) error {
	rm, err := p.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	return p.markFailed(ctx, rm)
}

// markFailed applies the pending-to-failed transition and gives the
// reserved seats back. The release is gated on the cancel transition,
// the same gate the admin cancel and the expiry sweep use, so a
// redelivered failure event or a racing sweep cannot release twice.
func (p *paymentUseCaseImpl) markFailed(ctx context.Context, rm *readmodel.BookingRM) error {
	applied, err := p.bookingRepo.FailPayment(ctx, rm.ID, p.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !applied {
		return nil
	}

	cancelled, err := p.bookingRepo.Cancel(ctx, rm.ID, p.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !cancelled {
		return nil
	}

	slot, err := booking.NewSlotKey(rm.Date, rm.SlotStart, rm.SlotEnd)
	if err != nil {
		slog.Error("stored booking has invalid slot", "booking_id", rm.ID, "error", err)
		return nil
	}
	if err := p.ledger.Release(ctx, rm.ActivityID, slot, rm.Participants); err != nil {
		slog.Error("failed to release capacity after payment failure",
			"booking_id", rm.ID, "error", err)
	}
	return nil
}

func (p *paymentUseCaseImpl) findBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	rm, err := p.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return rm, nil
}
