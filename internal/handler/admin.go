package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/steve-ongera/WildQuest/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Reviews

func (h *Handler) CreateReview(c *ginext.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateReviewInput{
		BookingID:    req.BookingID,
		ReviewerName: req.ReviewerName,
		Rating:       req.Rating,
		Title:        req.Title,
		Comment:      req.Comment,
	}

	review, err := h.reviewService.Add(c.Request.Context(), c.Param("slug"), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *Handler) ListEventReviews(c *ginext.Context) {
	reviews, err := h.reviewService.ListApproved(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ToReviewResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListPendingReviews(c *ginext.Context) {
	reviews, err := h.reviewService.ListPending(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, dto.ToReviewResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ApproveReview(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid review id"})
		return
	}

	if err := h.reviewService.Approve(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "approved"})
}

// Locations and categories

func (h *Handler) CreateLocation(c *ginext.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateLocationInput{
		Name:      req.Name,
		County:    req.County,
		Region:    req.Region,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		IsPopular: req.IsPopular,
	}

	location, err := h.locationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, location)
}

func (h *Handler) ListLocations(c *ginext.Context) {
	locations, err := h.locationService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

func (h *Handler) CreateCategory(c *ginext.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	}

	category, err := h.locationService.CreateCategory(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.locationService.ListCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// Reports

func (h *Handler) ReportSummary(c *ginext.Context) {
	report, err := h.reportService.Summary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) ReportPerEvent(c *ginext.Context) {
	reports, err := h.reportService.PerEvent(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}
