package api

import (
	"errors"
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckInHandler struct {
	credentialUseCase usecase.CredentialUseCase
}

func NewCheckInHandler(credentialUseCase usecase.CredentialUseCase) *CheckInHandler {
	return &CheckInHandler{
		credentialUseCase: credentialUseCase,
	}
}

// @Summary Redeem entry credential
// @Description Validate an entry token at the gate and mark the booking checked in
// @Tags checkin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemCredentialRequest true "Entry token"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]any
// @Failure 422 {object} map[string]string
// @Router /checkin/redeem [post]
func (h *CheckInHandler) Redeem(c *gin.Context) {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RedeemCredentialRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bookingRM, err := h.credentialUseCase.Redeem(c.Request.Context(), req.Token, operatorID)
	if err != nil {
		var redeemed *usecase.AlreadyRedeemedError
		switch {
		case errors.Is(err, usecase.ErrInvalidCredential):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid credential",
			})
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid credential",
			})
		case errors.As(err, &redeemed):
			c.JSON(http.StatusConflict, gin.H{
				"error":         "Credential already redeemed",
				"check_in_time": redeemed.CheckInTime,
			})
		case errors.Is(err, usecase.ErrAlreadyRedeemed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Credential already redeemed",
			})
		case errors.Is(err, usecase.ErrWrongDate):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking is not for today",
			})
		case errors.Is(err, usecase.ErrWrongState):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking is not in a redeemable state",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.RedeemResponse{
		Booking:     resdto.FromBookingRM(bookingRM),
		CheckInTime: *bookingRM.CheckInTime,
	})
}

// @Summary Resend credential
// @Description Resend the booking confirmation with its entry credential
// @Tags checkin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/credential/resend [post]
func (h *CheckInHandler) ResendCredential(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.credentialUseCase.Resend(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrWrongState):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Booking has no credential to resend",
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
