package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type DailyStatsRM struct {
	Day          time.Time `json:"day"`
	Bookings     int64     `json:"bookings"`
	Participants int64     `json:"participants"`
	Revenue      int64     `json:"revenue"` // minor units, completed payments only
	CheckedIn    int64     `json:"checked_in"`
}

type ActivityStatsRM struct {
	ActivityID   uuid.UUID `json:"activity_id"`
	Title        string    `json:"title"`
	Bookings     int64     `json:"bookings"`
	Participants int64     `json:"participants"`
	Revenue      int64     `json:"revenue"`
}
