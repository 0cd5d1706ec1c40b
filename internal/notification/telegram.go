package notification

import (
	"context"
	"fmt"

	"github.com/CynthiaM111/weshare-sub002/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot    sender
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, ride *domain.Ride) {
	text := fmt.Sprintf(
		"*Seat booked!*\n\n"+"Route: %s → %s\n"+"Departure (UTC): %s\n"+"Seats taken: %d/%d",
		ride.From, ride.To,
		ride.DepartureTime.Format(timeLayout),
		ride.BookedSeats, ride.Seats,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyCheckInChanged(ctx context.Context, user *domain.User, ride *domain.Ride, booking domain.Booking) {
	var headline string
	switch booking.CheckInStatus {
	case domain.CheckInCheckedIn:
		headline = "*You are checked in*"
	case domain.CheckInCompleted:
		headline = "*Trip completed, thank you for riding*"
	default:
		headline = "*Check-in status updated*"
	}

	text := fmt.Sprintf(
		"%s\n\n"+"Route: %s → %s\n"+"Departure (UTC): %s\n"+"Status: %s",
		headline, ride.From, ride.To,
		ride.DepartureTime.Format(timeLayout),
		booking.CheckInStatus,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyRideCancelled(ctx context.Context, user *domain.User, ride *domain.Ride) {
	text := fmt.Sprintf(
		"*Ride cancelled*\n\n"+"Route: %s → %s\n"+"Departure (UTC): %s",
		ride.From, ride.To,
		ride.DepartureTime.Format(timeLayout),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
