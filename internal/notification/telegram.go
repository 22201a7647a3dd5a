package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/steve-ongera/WildQuest/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts back-office updates to the agency's ops chat.
// With an empty token or chat id the notifier degrades to a no-op so local
// runs do not need a bot.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram ops notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking, e *domain.Event) {
	text := fmt.Sprintf(
		"*New booking*\n\nEvent: %s\nCustomer: %s (%s)\nParticipants: %d\nTotal: %s\nAwaiting payment.",
		e.Title, b.CustomerName, b.CustomerPhone, len(b.Participants), formatKES(b.TotalCents),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingPaid(ctx context.Context, b *domain.Booking, receipt string) {
	text := fmt.Sprintf(
		"*Booking paid*\n\nBooking: %s\nCustomer: %s\nAmount: %s\nM-Pesa receipt: %s",
		b.ID, b.CustomerName, formatKES(b.TotalCents), receipt,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyPaymentFailed(ctx context.Context, b *domain.Booking, reason string) {
	text := fmt.Sprintf(
		"*Payment failed*\n\nBooking: %s\nCustomer: %s (%s)\nReason: %s",
		b.ID, b.CustomerName, b.CustomerPhone, reason,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled (payment window expired)*\n\nBooking: %s\nCustomer: %s (%s)",
		b.ID, b.CustomerName, b.CustomerPhone,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyInquiryReceived(ctx context.Context, inq *domain.Inquiry) {
	text := fmt.Sprintf(
		"*New WhatsApp inquiry*\n\nFrom: %s (%s)\nMessage: %s",
		inq.Name, inq.Phone, inq.Message,
	)
	n.send(ctx, text)
}

func formatKES(cents int64) string {
	return fmt.Sprintf("KES %d.%02d", cents/100, cents%100)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("ops notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("ops notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.String("error", err.Error()),
		)
	}
}
