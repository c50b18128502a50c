package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidSlotWindow   = errors.New("slot end must be after slot start")
	ErrInvalidSlotTime     = errors.New("slot time must be formatted as HH:MM")
	ErrEmptyCustomerName   = errors.New("customer name is required")
	ErrEmptyCustomerPhone  = errors.New("customer phone is required")
	ErrInvalidParticipants = errors.New("participant count must be at least 1")
)

const slotTimeLayout = "15:04"

// SlotKey identifies one bookable capacity bucket: a calendar date plus
// a start/end window. Its string form is the ledger key.
type SlotKey struct {
	date  time.Time // date-only, location-normalized
	start string
	end   string
}

func NewSlotKey(date time.Time, start, end string) (SlotKey, error) {
	st, err := time.Parse(slotTimeLayout, start)
	if err != nil {
		return SlotKey{}, ErrInvalidSlotTime
	}
	en, err := time.Parse(slotTimeLayout, end)
	if err != nil {
		return SlotKey{}, ErrInvalidSlotTime
	}
	if !en.After(st) {
		return SlotKey{}, ErrInvalidSlotWindow
	}

	y, m, d := date.Date()
	return SlotKey{
		date:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		start: start,
		end:   end,
	}, nil
}

func (k SlotKey) Date() time.Time { return k.date }
func (k SlotKey) Start() string   { return k.start }
func (k SlotKey) End() string     { return k.end }

func (k SlotKey) String() string {
	return fmt.Sprintf("%s/%s-%s", k.date.Format("2006-01-02"), k.start, k.end)
}

// Customer is the contact block bound into the booking and its
// credential. Identity management is out of scope; this is plain data.
type Customer struct {
	name  string
	phone string
	email string
}

func NewCustomer(name, phone, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	if phone == "" {
		return Customer{}, ErrEmptyCustomerPhone
	}
	return Customer{name: name, phone: phone, email: strings.TrimSpace(email)}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Phone() string { return c.phone }
func (c Customer) Email() string { return c.email }

// Pricing is a pure function of the activity price sheet at creation
// time; amounts are minor currency units.
type Pricing struct {
	perPerson int64
	total     int64
	discount  int64
	final     int64
}

func ComputePricing(basePrice int64, discountedPrice *int64, participants int32) Pricing {
	perPerson := basePrice
	if discountedPrice != nil {
		perPerson = *discountedPrice
	}

	total := perPerson * int64(participants)
	discount := int64(0)
	if discountedPrice != nil && basePrice > *discountedPrice {
		discount = (basePrice - *discountedPrice) * int64(participants)
	}

	return Pricing{
		perPerson: perPerson,
		total:     total,
		discount:  discount,
		final:     total,
	}
}

func (p Pricing) PerPerson() int64 { return p.perPerson }
func (p Pricing) Total() int64     { return p.total }
func (p Pricing) Discount() int64  { return p.discount }
func (p Pricing) Final() int64     { return p.final }

// ActivitySnapshot is a copy of the catalog fields frozen at creation
// time, decoupling booking history from later catalog edits.
type ActivitySnapshot struct {
	Title   string
	Venue   string
	Address string
}
