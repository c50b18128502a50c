package activity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("activity title is required")
	ErrNoSlots       = errors.New("activity has no configured slots")
	ErrInvalidPrices = errors.New("discounted price exceeds base price")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// SlotWindow is one configured daily start/end window with the seat
// count a fresh date bucket opens with.
type SlotWindow struct {
	Start    string
	End      string
	Capacity int32
}

// Activity is the catalog read-side the core books against. The
// catalog's CRUD lives elsewhere; this entity only answers the
// questions reservation needs: is it bookable, on which days, at which
// windows, at what price.
type Activity struct {
	id              uuid.UUID
	title           string
	venue           string
	address         string
	status          Status
	startDate       time.Time
	endDate         time.Time
	weekdays        map[time.Weekday]bool
	slots           []SlotWindow
	basePrice       int64
	discountedPrice *int64
	maxPerBooking   int32
}

func NewActivity(
	id uuid.UUID,
	title, venue, address string,
	status Status,
	startDate, endDate time.Time,
	weekdays []time.Weekday,
	slots []SlotWindow,
	basePrice int64,
	discountedPrice *int64,
	maxPerBooking int32,
) (*Activity, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}
	if discountedPrice != nil && *discountedPrice > basePrice {
		return nil, ErrInvalidPrices
	}

	wd := make(map[time.Weekday]bool, len(weekdays))
	for _, d := range weekdays {
		wd[d] = true
	}

	return &Activity{
		id:              id,
		title:           title,
		venue:           venue,
		address:         address,
		status:          status,
		startDate:       startDate,
		endDate:         endDate,
		weekdays:        wd,
		slots:           slots,
		basePrice:       basePrice,
		discountedPrice: discountedPrice,
		maxPerBooking:   maxPerBooking,
	}, nil
}

func (a *Activity) IsBookable() bool {
	return a.status == StatusActive
}

// AllowsDate checks the activity's season window, date-only.
func (a *Activity) AllowsDate(date time.Time) bool {
	d := truncateDay(date)
	return !d.Before(truncateDay(a.startDate)) && !d.After(truncateDay(a.endDate))
}

func (a *Activity) AllowsWeekday(day time.Weekday) bool {
	return a.weekdays[day]
}

// AllowedWeekdays lists the bookable days for client display on refusal.
func (a *Activity) AllowedWeekdays() []string {
	out := make([]string, 0, len(a.weekdays))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if a.weekdays[d] {
			out = append(out, d.String())
		}
	}
	return out
}

// FindSlot matches an exact configured window; a near-miss is a request
// error, not a fuzzy match.
func (a *Activity) FindSlot(start, end string) (SlotWindow, bool) {
	for _, s := range a.slots {
		if s.Start == start && s.End == end {
			return s, true
		}
	}
	return SlotWindow{}, false
}

func (a *Activity) ID() uuid.UUID           { return a.id }
func (a *Activity) Title() string           { return a.title }
func (a *Activity) Venue() string           { return a.venue }
func (a *Activity) Address() string         { return a.address }
func (a *Activity) Status() Status          { return a.status }
func (a *Activity) StartDate() time.Time    { return a.startDate }
func (a *Activity) EndDate() time.Time      { return a.endDate }
func (a *Activity) Slots() []SlotWindow     { return a.slots }
func (a *Activity) BasePrice() int64        { return a.basePrice }
func (a *Activity) DiscountedPrice() *int64 { return a.discountedPrice }
func (a *Activity) MaxPerBooking() int32    { return a.maxPerBooking }

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
