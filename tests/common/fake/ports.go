//go:build unit

package fake

import (
	"context"
	"fmt"
	"sync"

	"slotbook/internal/domain/booking"
	"slotbook/internal/infra"
	"slotbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Ledger mirrors the conditional-update capacity semantics in memory.
type Ledger struct {
	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	total     int32
	remaining int32
}

func NewLedger() *Ledger {
	return &Ledger{buckets: make(map[string]*bucket)}
}

func ledgerKey(activityID uuid.UUID, slot booking.SlotKey) string {
	return activityID.String() + "/" + slot.String()
}

func (l *Ledger) Reserve(_ context.Context, activityID uuid.UUID, slot booking.SlotKey, capacity, count int32) (int32, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	key := ledgerKey(activityID, slot)
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{total: capacity, remaining: capacity}
		l.buckets[key] = b
	}
	if b.remaining < count {
		return b.remaining, infra.WrapRepoErr("insufficient capacity", nil, infra.KindConflict)
	}
	b.remaining -= count
	return b.remaining, nil
}

func (l *Ledger) Release(_ context.Context, activityID uuid.UUID, slot booking.SlotKey, count int32) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[ledgerKey(activityID, slot)]
	if !ok {
		return infra.WrapRepoErr("capacity bucket not found", nil, infra.KindNotFound)
	}
	b.remaining += count
	if b.remaining > b.total {
		b.remaining = b.total
	}
	return nil
}

func (l *Ledger) Remaining(_ context.Context, activityID uuid.UUID, slot booking.SlotKey) (int32, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	b, ok := l.buckets[ledgerKey(activityID, slot)]
	if !ok {
		return 0, infra.WrapRepoErr("capacity bucket not found", nil, infra.KindNotFound)
	}
	return b.remaining, nil
}

// Sequence is a per-day atomic counter.
type Sequence struct {
	mu       sync.Mutex
	counters map[string]int64
	FailNext bool
}

func NewSequence() *Sequence {
	return &Sequence{counters: make(map[string]int64)}
}

func (s *Sequence) Next(_ context.Context, dateKey string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailNext {
		return 0, infra.WrapRepoErr("sequence forced to fail", nil)
	}
	s.counters[dateKey]++
	return s.counters[dateKey], nil
}

// ActivityRepo serves a fixed set of activity read models.
type ActivityRepo struct {
	mu         sync.Mutex
	activities map[uuid.UUID]*readmodel.ActivityRM
}

func NewActivityRepo(activities ...*readmodel.ActivityRM) *ActivityRepo {
	repo := &ActivityRepo{activities: make(map[uuid.UUID]*readmodel.ActivityRM)}
	for _, a := range activities {
		repo.activities[a.ID] = a
	}
	return repo
}

func (r *ActivityRepo) FindByID(_ context.Context, id uuid.UUID) (*readmodel.ActivityRM, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.activities[id]
	if !ok {
		return nil, infra.WrapRepoErr("activity not found", nil, infra.KindNotFound)
	}
	return rm, nil
}

// Gateway is a scriptable PaymentGateway. Signatures verify when they
// equal "sig(orderID|paymentID)" computed by Sign.
type Gateway struct {
	mu         sync.Mutex
	orderSeq   int
	FailCreate bool
	WebhookOK  bool
}

func NewGateway() *Gateway {
	return &Gateway{WebhookOK: true}
}

func (g *Gateway) CreateOrder(int64, string, string, map[string]interface{}) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailCreate {
		return "", fmt.Errorf("gateway unavailable")
	}
	g.orderSeq++
	return fmt.Sprintf("order_%03d", g.orderSeq), nil
}

func (g *Gateway) Sign(orderID, paymentID string) string {
	return "sig(" + orderID + "|" + paymentID + ")"
}

func (g *Gateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	return signature == g.Sign(orderID, paymentID)
}

func (g *Gateway) VerifyWebhookSignature([]byte, string) bool {
	return g.WebhookOK
}

// Dedupe remembers claimed event keys.
type Dedupe struct {
	mu   sync.Mutex
	seen map[string]bool
	Err  error
}

func NewDedupe() *Dedupe {
	return &Dedupe{seen: make(map[string]bool)}
}

func (d *Dedupe) FirstDelivery(_ context.Context, eventKey string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Err != nil {
		return false, d.Err
	}
	if d.seen[eventKey] {
		return false, nil
	}
	d.seen[eventKey] = true
	return true, nil
}

// Notifier records every confirmation attempt.
type Notifier struct {
	mu        sync.Mutex
	Confirmed []*readmodel.BookingRM
	Err       error
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) BookingConfirmed(_ context.Context, b *readmodel.BookingRM) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return n.Err
	}
	n.Confirmed = append(n.Confirmed, b)
	return nil
}

func (n *Notifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.Confirmed)
}
