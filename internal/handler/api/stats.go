package api

import (
	"errors"
	"net/http"
	"time"

	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/usecase"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsUseCase usecase.StatsUseCase
}

func NewStatsHandler(statsUseCase usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{
		statsUseCase: statsUseCase,
	}
}

// @Summary Daily stats
// @Description Booking, revenue and check-in totals per day
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.DailyStatsResponse
// @Failure 400 {object} map[string]string
// @Router /stats/daily [get]
func (h *StatsHandler) Daily(c *gin.Context) {
	from, to, ok := h.parseRange(c)
	if !ok {
		return
	}

	stats, err := h.statsUseCase.Daily(c.Request.Context(), from, to)
	if err != nil {
		h.respondStatsError(c, err)
		return
	}

	response := make([]*resdto.DailyStatsResponse, len(stats))
	for i, rm := range stats {
		response[i] = resdto.FromDailyStatsRM(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Activity stats
// @Description Booking and revenue totals per activity
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} resdto.ActivityStatsResponse
// @Failure 400 {object} map[string]string
// @Router /stats/activities [get]
func (h *StatsHandler) ByActivity(c *gin.Context) {
	from, to, ok := h.parseRange(c)
	if !ok {
		return
	}

	stats, err := h.statsUseCase.ByActivity(c.Request.Context(), from, to)
	if err != nil {
		h.respondStatsError(c, err)
		return
	}

	response := make([]*resdto.ActivityStatsResponse, len(stats))
	for i, rm := range stats {
		response[i] = resdto.FromActivityStatsRM(rm)
	}

	c.JSON(http.StatusOK, response)
}

func (h *StatsHandler) parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing from date, expected YYYY-MM-DD",
		})
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing to date, expected YYYY-MM-DD",
		})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (h *StatsHandler) respondStatsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Range end must not precede range start",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
