package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/steve-ongera/WildQuest/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) WhatsAppWebhook(c *ginext.Context) {
	var req dto.WhatsAppWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	msg := domain.InboundMessage{
		From: req.From,
		Name: req.Name,
		Text: req.Text,
	}
	if req.ReceivedAt != "" {
		receivedAt, err := time.Parse(time.RFC3339, req.ReceivedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid received_at format, expected RFC3339",
			})
			return
		}
		msg.ReceivedAt = receivedAt
	}

	inquiry, err := h.inquiryService.Ingest(c.Request.Context(), msg)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInquiryResponse(inquiry))
}

func (h *Handler) ListInquiries(c *ginext.Context) {
	inquiries, err := h.inquiryService.List(c.Request.Context(), domain.InquiryStatus(c.Query("status")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.InquiryResponse, 0, len(inquiries))
	for _, inq := range inquiries {
		resp = append(resp, dto.ToInquiryResponse(inq))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ConvertInquiry(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid inquiry id"})
		return
	}

	var req dto.ConvertInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.ConvertInquiryInput{
		InquiryID:       id,
		EventID:         req.EventID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		SpecialRequests: req.SpecialRequests,
		Participants:    toParticipantInputs(req.Participants),
	}

	booking, err := h.inquiryService.Convert(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) DismissInquiry(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid inquiry id"})
		return
	}

	if err := h.inquiryService.Dismiss(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "dismissed"})
}
