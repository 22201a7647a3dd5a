package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/steve-ongera/WildQuest/internal/service/ports"
	"github.com/steve-ongera/WildQuest/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:            "7f9c2d14-5c14-4b7e-9d26-0a53a1b2c3d4",
		EventID:       "evt-1",
		CustomerName:  "Jane Wanjiru",
		CustomerPhone: "0712345678",
		TotalCents:    38_000_00,
		Status:        domain.BookingStatusPending,
	}
}

func TestPaymentService_Initiate_Success(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, bookingRepo, gateway, notifier, log)

	booking := pendingBooking()

	bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	paymentRepo.EXPECT().HasPending(mock.Anything, booking.ID).Return(false, nil)
	gateway.EXPECT().
		RequestPush(mock.Anything, "0712345678", booking.TotalCents, booking.ID, mock.AnythingOfType("string")).
		Return(&ports.STKPush{
			MerchantRequestID: "mr-1",
			CheckoutRequestID: "ws_CO_191220231020363925",
		}, nil)
	paymentRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Payment")).Return(nil)

	payment, err := svc.Initiate(context.Background(), booking.ID, "0712345678")
	require.NoError(t, err)
	require.NotNil(t, payment)

	assert.Equal(t, booking.ID, payment.BookingID)
	assert.Equal(t, "ws_CO_191220231020363925", payment.CheckoutRequestID)
	assert.Equal(t, booking.TotalCents, payment.AmountCents)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
}

func TestPaymentService_Initiate_BookingNotPending(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, bookingRepo, gateway, notifier, log)

	booking := pendingBooking()
	booking.Status = domain.BookingStatusPaid

	bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)

	_, err := svc.Initiate(context.Background(), booking.ID, "0712345678")
	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestPaymentService_Initiate_AlreadyInFlight(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, bookingRepo, gateway, notifier, log)

	booking := pendingBooking()

	bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	paymentRepo.EXPECT().HasPending(mock.Anything, booking.ID).Return(true, nil)

	_, err := svc.Initiate(context.Background(), booking.ID, "0712345678")
	assert.ErrorIs(t, err, domain.ErrPaymentInFlight)
}

func TestPaymentService_Initiate_GatewayError(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, bookingRepo, gateway, notifier, log)

	booking := pendingBooking()

	bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	paymentRepo.EXPECT().HasPending(mock.Anything, booking.ID).Return(false, nil)
	gateway.EXPECT().
		RequestPush(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("daraja: 500.001.1001"))

	_, err := svc.Initiate(context.Background(), booking.ID, "0712345678")
	assert.ErrorIs(t, err, domain.ErrPaymentGateway)
}

func TestPaymentService_Initiate_NoPhone(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, bookingRepo, gateway, notifier, log)

	_, err := svc.Initiate(context.Background(), "b1", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentService_HandleCallback_Success(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, bookingRepo, gateway, notifier, log)

	booking := pendingBooking()
	payment := &domain.Payment{
		ID:                "p1",
		BookingID:         booking.ID,
		CheckoutRequestID: "ws_CO_1",
		Status:            domain.PaymentStatusPending,
	}
	result := domain.PaymentResult{
		CheckoutRequestID: "ws_CO_1",
		ResultCode:        0,
		ResultDesc:        "The service request is processed successfully.",
		AmountCents:       booking.TotalCents,
		MpesaReceipt:      "SGR7TYKXLA",
	}

	paymentRepo.EXPECT().GetByCheckoutID(mock.Anything, "ws_CO_1").Return(payment, nil)
	paymentRepo.EXPECT().Finalize(mock.Anything, result).Return(true, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, booking.ID, domain.BookingStatusPending, domain.BookingStatusPaid).
		Return(true, nil)
	notifier.EXPECT().NotifyBookingPaid(mock.Anything, booking, "SGR7TYKXLA").Return()

	err := svc.HandleCallback(context.Background(), result)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPaymentService_HandleCallback_Failure(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, bookingRepo, gateway, notifier, log)

	booking := pendingBooking()
	payment := &domain.Payment{ID: "p1", BookingID: booking.ID, CheckoutRequestID: "ws_CO_1"}
	result := domain.PaymentResult{
		CheckoutRequestID: "ws_CO_1",
		ResultCode:        1032,
		ResultDesc:        "Request cancelled by user",
	}

	paymentRepo.EXPECT().GetByCheckoutID(mock.Anything, "ws_CO_1").Return(payment, nil)
	paymentRepo.EXPECT().Finalize(mock.Anything, result).Return(true, nil)
	bookingRepo.EXPECT().GetByID(mock.Anything, booking.ID).Return(booking, nil)
	bookingRepo.EXPECT().
		UpdateStatus(mock.Anything, booking.ID, domain.BookingStatusPending, domain.BookingStatusFailed).
		Return(true, nil)
	notifier.EXPECT().NotifyPaymentFailed(mock.Anything, booking, "Request cancelled by user").Return()

	err := svc.HandleCallback(context.Background(), result)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestPaymentService_HandleCallback_UnknownCheckout(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, bookingRepo, gateway, notifier, log)

	paymentRepo.EXPECT().
		GetByCheckoutID(mock.Anything, "ws_CO_missing").
		Return(nil, domain.ErrPaymentNotFound)

	// unknown references are dropped, never retried
	err := svc.HandleCallback(context.Background(), domain.PaymentResult{CheckoutRequestID: "ws_CO_missing"})
	assert.NoError(t, err)
}

func TestPaymentService_HandleCallback_Duplicate(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, bookingRepo, gateway, notifier, log)

	payment := &domain.Payment{ID: "p1", BookingID: "b1", CheckoutRequestID: "ws_CO_1"}
	result := domain.PaymentResult{CheckoutRequestID: "ws_CO_1", ResultCode: 0, MpesaReceipt: "SGR7TYKXLA"}

	paymentRepo.EXPECT().GetByCheckoutID(mock.Anything, "ws_CO_1").Return(payment, nil)
	paymentRepo.EXPECT().Finalize(mock.Anything, result).Return(false, nil)

	// the second delivery of the same callback changes nothing
	err := svc.HandleCallback(context.Background(), result)
	assert.NoError(t, err)
	bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_HandleCallback_StaleFailureAfterSuccess(t *testing.T) {
	paymentRepo := mocks.NewMockPaymentRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	gateway := mocks.NewMockPaymentGateway(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewPaymentService(paymentRepo, bookingRepo, gateway, notifier, log)

	payment := &domain.Payment{ID: "p1", BookingID: "b1", CheckoutRequestID: "ws_CO_1"}
	stale := domain.PaymentResult{
		CheckoutRequestID: "ws_CO_1",
		ResultCode:        1037,
		ResultDesc:        "DS timeout",
	}

	// payment already completed, so the guarded update does not apply
	paymentRepo.EXPECT().GetByCheckoutID(mock.Anything, "ws_CO_1").Return(payment, nil)
	paymentRepo.EXPECT().Finalize(mock.Anything, stale).Return(false, nil)

	err := svc.HandleCallback(context.Background(), stale)
	assert.NoError(t, err)
	bookingRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
