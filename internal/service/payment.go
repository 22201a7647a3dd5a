package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/steve-ongera/WildQuest/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PaymentService struct {
	paymentRepo ports.PaymentRepo
	bookingRepo ports.BookingRepo
	gateway     ports.PaymentGateway
	notifier    ports.OpsNotifier
	logger      logger.Logger
}

func NewPaymentService(
	paymentRepo ports.PaymentRepo,
	bookingRepo ports.BookingRepo,
	gateway ports.PaymentGateway,
	notifier ports.OpsNotifier,
	log logger.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		gateway:     gateway,
		notifier:    notifier,
		logger:      log,
	}
}

// Initiate fires an STK push for a pending booking and records the pending
// payment under the provider's checkout reference. The booking itself
// stays pending until the callback lands.
func (s *PaymentService) Initiate(ctx context.Context, bookingID, payerPhone string) (*domain.Payment, error) {
	if payerPhone == "" {
		return nil, fmt.Errorf("%w: payer phone is required", domain.ErrValidation)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("check booking: %w", err)
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, domain.ErrBookingNotPending
	}

	inFlight, err := s.paymentRepo.HasPending(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("check pending payment: %w", err)
	}
	if inFlight {
		return nil, domain.ErrPaymentInFlight
	}

	push, err := s.gateway.RequestPush(
		ctx, payerPhone, booking.TotalCents,
		booking.ID, "WildQuest booking "+booking.ID[:8],
	)
	if err != nil {
		s.logger.Error("stk push failed",
			logger.String("booking_id", bookingID),
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentGateway, err)
	}

	payment := &domain.Payment{
		ID:                uuid.New().String(),
		BookingID:         booking.ID,
		CheckoutRequestID: push.CheckoutRequestID,
		MerchantRequestID: push.MerchantRequestID,
		Phone:             payerPhone,
		AmountCents:       booking.TotalCents,
		Status:            domain.PaymentStatusPending,
		InitiatedAt:       time.Now().UTC(),
	}

	if err = s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	s.logger.Info("payment initiated",
		logger.String("booking_id", booking.ID),
		logger.String("checkout_request_id", payment.CheckoutRequestID),
		logger.Int64("amount_cents", payment.AmountCents),
	)

	return payment, nil
}

// HandleCallback applies a provider result to the matching pending payment
// and moves the booking along. Duplicate deliveries are absorbed: the
// status-guarded updates apply once, and everything after the first
// delivery is logged and dropped. A success is therefore never overwritten
// by a late duplicate failure.
func (s *PaymentService) HandleCallback(ctx context.Context, result domain.PaymentResult) error {
	payment, err := s.paymentRepo.GetByCheckoutID(ctx, result.CheckoutRequestID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			s.logger.Warn("callback for unknown checkout reference",
				logger.String("checkout_request_id", result.CheckoutRequestID),
			)
			return nil
		}
		return fmt.Errorf("lookup payment: %w", err)
	}

	applied, err := s.paymentRepo.Finalize(ctx, result)
	if err != nil {
		return fmt.Errorf("finalize payment: %w", err)
	}
	if !applied {
		s.logger.Info("duplicate payment callback ignored",
			logger.String("checkout_request_id", result.CheckoutRequestID),
			logger.Int("result_code", result.ResultCode),
		)
		return nil
	}

	booking, err := s.bookingRepo.GetByID(ctx, payment.BookingID)
	if err != nil {
		return fmt.Errorf("lookup booking: %w", err)
	}

	if result.Succeeded() {
		if _, err = s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusPending, domain.BookingStatusPaid); err != nil {
			return fmt.Errorf("mark booking paid: %w", err)
		}

		s.logger.Info("booking paid",
			logger.String("booking_id", booking.ID),
			logger.String("mpesa_receipt", result.MpesaReceipt),
		)

		go s.notifier.NotifyBookingPaid(context.WithoutCancel(ctx), booking, result.MpesaReceipt)
		return nil
	}

	if _, err = s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusPending, domain.BookingStatusFailed); err != nil {
		return fmt.Errorf("mark booking failed: %w", err)
	}

	s.logger.Info("payment failed",
		logger.String("booking_id", booking.ID),
		logger.Int("result_code", result.ResultCode),
		logger.String("result_desc", result.ResultDesc),
	)

	go s.notifier.NotifyPaymentFailed(context.WithoutCancel(ctx), booking, result.ResultDesc)

	return nil
}

func (s *PaymentService) ListByBooking(ctx context.Context, bookingID string) ([]*domain.Payment, error) {
	return s.paymentRepo.ListByBooking(ctx, bookingID)
}
