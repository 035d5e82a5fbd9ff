package notifications

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const channelEmail = "email"

// Email уведомления клиентам по почте
type Email struct {
	sender  MailSender
	metrics Metrics
	logger  Logger
}

// NewEmail создает уведомитель. sender == nil означает выключенный канал
func NewEmail(sender MailSender, metrics Metrics, logger Logger) *Email {
	return &Email{
		sender:  sender,
		metrics: metrics,
		logger:  logger,
	}
}

// SendConfirmation письмо о подтверждении записи
func (e *Email) SendConfirmation(ctx context.Context, a *domain.Appointment) bool {
	subject, body := confirmationMail(a)
	return e.send(ctx, "confirmation", a, subject, body)
}

// SendRejection письмо об отказе
func (e *Email) SendRejection(ctx context.Context, a *domain.Appointment) bool {
	subject, body := rejectionMail(a)
	return e.send(ctx, "rejection", a, subject, body)
}

// SendReminder напоминание о записи на завтра
func (e *Email) SendReminder(ctx context.Context, a *domain.Appointment) bool {
	subject, body := reminderMail(a)
	return e.send(ctx, "reminder", a, subject, body)
}

func (e *Email) send(ctx context.Context, kind string, a *domain.Appointment, subject, body string) bool {
	if !a.HasEmail() {
		e.logger.Info("Notifications: email %s for appointment id=%d skipped: %v", kind, a.ID, ErrNoRecipient)
		return false
	}
	if e.sender == nil {
		e.logger.Info("Notifications: email %s for appointment id=%d skipped: %v", kind, a.ID, ErrChannelDisabled)
		e.metrics.RecordNotification(channelEmail, kind, false)
		return false
	}

	if err := e.sender.Send(ctx, *a.ClientEmail, subject, body); err != nil {
		e.logger.Error("Notifications: email %s for appointment id=%d failed: %v", kind, a.ID, err)
		e.metrics.RecordNotification(channelEmail, kind, false)
		return false
	}

	e.metrics.RecordNotification(channelEmail, kind, true)
	return true
}
