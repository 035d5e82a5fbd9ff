package notifications

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const channelTelegram = "telegram"

// Telegram уведомления в чат салона
// Клиенты не адресуемы через Bot API по номеру телефона, поэтому подтверждения
// тоже уходят в чат администратора, который связывается с клиентом
type Telegram struct {
	sender  MessageSender
	chatID  string
	metrics Metrics
	logger  Logger
}

// NewTelegram создает уведомитель. sender == nil означает выключенный канал
func NewTelegram(sender MessageSender, chatID string, metrics Metrics, logger Logger) *Telegram {
	return &Telegram{
		sender:  sender,
		chatID:  chatID,
		metrics: metrics,
		logger:  logger,
	}
}

// SendAdminNewBooking сообщает администратору о новой заявке
func (t *Telegram) SendAdminNewBooking(ctx context.Context, a *domain.Appointment) bool {
	return t.send(ctx, "new_booking", a, adminNewBookingText(a))
}

// SendConfirmation сообщает о подтверждённой заявке
func (t *Telegram) SendConfirmation(ctx context.Context, a *domain.Appointment) bool {
	return t.send(ctx, "confirmation", a, confirmationText(a))
}

// SendRejection сообщает об отклонённой заявке
func (t *Telegram) SendRejection(ctx context.Context, a *domain.Appointment) bool {
	return t.send(ctx, "rejection", a, rejectionText(a))
}

func (t *Telegram) send(ctx context.Context, kind string, a *domain.Appointment, text string) bool {
	if t.sender == nil || t.chatID == "" {
		t.logger.Info("Notifications: telegram %s for appointment id=%d skipped: %v", kind, a.ID, ErrChannelDisabled)
		t.metrics.RecordNotification(channelTelegram, kind, false)
		return false
	}

	if err := t.sender.SendMessage(ctx, t.chatID, text); err != nil {
		t.logger.Error("Notifications: telegram %s for appointment id=%d failed: %v", kind, a.ID, err)
		t.metrics.RecordNotification(channelTelegram, kind, false)
		return false
	}

	t.metrics.RecordNotification(channelTelegram, kind, true)
	return true
}
