package response

import (
	"slotbook/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type DailyStatsResponse struct {
	Day          string `json:"day"`
	Bookings     int64  `json:"bookings"`
	Participants int64  `json:"participants"`
	Revenue      int64  `json:"revenue"`
	CheckedIn    int64  `json:"checkedIn"`
}

type ActivityStatsResponse struct {
	ActivityID   uuid.UUID `json:"activityId"`
	Title        string    `json:"title"`
	Bookings     int64     `json:"bookings"`
	Participants int64     `json:"participants"`
	Revenue      int64     `json:"revenue"`
}

func FromDailyStatsRM(rm *readmodel.DailyStatsRM) *DailyStatsResponse {
	return &DailyStatsResponse{
		Day:          rm.Day.Format("2006-01-02"),
		Bookings:     rm.Bookings,
		Participants: rm.Participants,
		Revenue:      rm.Revenue,
		CheckedIn:    rm.CheckedIn,
	}
}

func FromActivityStatsRM(rm *readmodel.ActivityStatsRM) *ActivityStatsResponse {
	return &ActivityStatsResponse{
		ActivityID:   rm.ActivityID,
		Title:        rm.Title,
		Bookings:     rm.Bookings,
		Participants: rm.Participants,
		Revenue:      rm.Revenue,
	}
}
