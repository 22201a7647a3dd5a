package domain

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrTierNotFound     = errors.New("pricing tier not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrInquiryNotFound  = errors.New("inquiry not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrCategoryNotFound = errors.New("category not found")
)

var (
	ErrBookingClosed     = errors.New("event is not open for booking")
	ErrCapacityExceeded  = errors.New("not enough spots available")
	ErrBookingNotPending = errors.New("booking is not in pending status")
	ErrPaymentInFlight   = errors.New("booking already has a pending payment")
	ErrInquiryConverted  = errors.New("inquiry has already been processed")
	ErrDuplicateSlug     = errors.New("an event with this slug already exists")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrDuplicateReview   = errors.New("booking already has a review")
)

var (
	ErrValidation     = errors.New("validation error")
	ErrPaymentGateway = errors.New("payment gateway error")
)
