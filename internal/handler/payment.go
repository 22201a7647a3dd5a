package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/steve-ongera/WildQuest/internal/handler/dto"
	"github.com/steve-ongera/WildQuest/internal/mpesa"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) InitiatePayment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.paymentService.Initiate(c.Request.Context(), id, req.Phone)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.ToPaymentResponse(payment))
}

// MpesaCallback receives the asynchronous STK Push result. The provider
// retries on non-200, so every parseable delivery is acknowledged; failures
// past parsing are logged server-side and still ACKed to stop redelivery
// of a payload we already acted on.
func (h *Handler) MpesaCallback(c *ginext.Context) {
	var envelope mpesa.CallbackEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := envelope.Result()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.paymentService.HandleCallback(c.Request.Context(), result); err != nil {
		c.Set("error", err.Error())
	}

	c.JSON(http.StatusOK, ginext.H{"ResultCode": 0, "ResultDesc": "Accepted"})
}

func (h *Handler) ListBookingPayments(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	payments, err := h.paymentService.ListByBooking(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, dto.ToPaymentResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}
