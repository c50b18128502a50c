package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	reservationUseCase usecase.ReservationUseCase
}

func NewBookingHandler(reservationUseCase usecase.ReservationUseCase) *BookingHandler {
	return &BookingHandler{
		reservationUseCase: reservationUseCase,
	}
}

// @Summary Create booking
// @Description Reserve spots in an activity slot and open a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}
	req.Normalize()

	bookingRM, err := h.reservationUseCase.CreateBooking(c.Request.Context(), req)
	if err != nil {
		var dateErr *usecase.DateUnavailableError
		var capErr *usecase.CapacityError
		switch {
		case errors.Is(err, usecase.ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Activity not found",
			})
		case errors.As(err, &dateErr):
			c.JSON(http.StatusConflict, gin.H{
				"error":            "Activity not available on requested date",
				"allowed_weekdays": dateErr.AllowedWeekdays,
			})
		case errors.Is(err, usecase.ErrActivityUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Activity not available for booking",
			})
		case errors.Is(err, usecase.ErrInvalidSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Requested slot does not exist for this activity",
			})
		case errors.Is(err, usecase.ErrTooManyParticipants):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Participant count exceeds the per-booking maximum",
			})
		case errors.As(err, &capErr):
			c.JSON(http.StatusConflict, gin.H{
				"error":           "Not enough spots remaining",
				"remaining_spots": capErr.Remaining,
			})
		case errors.Is(err, usecase.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid booking request",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingRM(bookingRM))
}

// @Summary Get booking
// @Description Get booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	bookingRM, err := h.reservationUseCase.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(bookingRM))
}

// @Summary Get booking by number
// @Description Look up a booking by its human-readable number
// @Tags bookings
// @Produce json
// @Param number path string true "Booking number"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/number/{number} [get]
func (h *BookingHandler) GetBookingByNumber(c *gin.Context) {
	bookingRM, err := h.reservationUseCase.GetBookingByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(bookingRM))
}

// @Summary List bookings for a date
// @Description List all bookings scheduled on the given date
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date, expected YYYY-MM-DD",
		})
		return
	}

	list, err := h.reservationUseCase.ListBookingsForDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.BookingListResponse, len(list))
	for i, rm := range list {
		response[i] = resdto.FromBookingListRM(rm)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Cancel booking
// @Description Cancel an unpaid booking and release its spots
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.reservationUseCase.CancelBooking(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrCancelRefused):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking can no longer be cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Release expired holds
// @Description Cancel stale unpaid bookings and reclaim their spots
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param older_than query string false "Minimum hold age (Go duration, default 30m)"
// @Success 200 {object} map[string]int
// @Router /bookings/release-expired [post]
func (h *BookingHandler) ReleaseExpired(c *gin.Context) {
	olderThan := 30 * time.Minute
	if raw := c.Query("older_than"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid older_than duration",
			})
			return
		}
		olderThan = parsed
	}

	released, err := h.reservationUseCase.ReleaseExpired(c.Request.Context(), olderThan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"released": released})
}

func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
