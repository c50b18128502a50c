package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

// @Summary Open payment order
// @Description Create (or return the existing) gateway order for a booking
// @Tags payments
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.PaymentOrderResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/payment/order [post]
func (h *PaymentHandler) OpenOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	order, err := h.paymentUseCase.OpenOrder(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrPaymentNotOpen):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment is no longer open for this booking",
			})
		case errors.Is(err, usecase.ErrGatewayOperationFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment gateway unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentOrderRM(order))
}

// @Summary Confirm payment
// @Description Verify the checkout callback signature and settle the booking
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.ConfirmPaymentRequest true "Checkout callback"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/payment/confirm [post]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.ConfirmPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	bookingRM, err := h.paymentUseCase.ConfirmFromCallback(
		c.Request.Context(), id, req.OrderID, req.PaymentID, req.Signature,
	)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, usecase.ErrOrderNotOpened):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No payment order opened for this booking",
			})
		case errors.Is(err, usecase.ErrOrderMismatch):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order does not belong to this booking",
			})
		case errors.Is(err, usecase.ErrSignatureInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Payment signature verification failed",
			})
		case errors.Is(err, usecase.ErrPaymentNotOpen):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment is no longer open for this booking",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingRM(bookingRM))
}

// @Summary Report payment failure
// @Description Record a client-reported gateway failure for a booking
// @Tags payments
// @Produce json
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/payment/fail [post]
func (h *PaymentHandler) MarkFailed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.paymentUseCase.MarkFailed(c.Request.Context(), id); err != nil {
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
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Payment webhook
// @Description Reconcile gateway-pushed payment events
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /webhooks/razorpay [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Failed to read request body",
		})
		return
	}

	signature := c.GetHeader("X-Razorpay-Signature")
	eventID := c.GetHeader("X-Razorpay-Event-Id")

	if err := h.paymentUseCase.HandleWebhook(c.Request.Context(), body, signature, eventID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSignatureInvalid):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid webhook signature",
			})
		default:
			// Non-2xx makes the gateway redeliver, which is what we
			// want for transient failures.
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
