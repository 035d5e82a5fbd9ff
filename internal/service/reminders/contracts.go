package reminders

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentRepository интерфейс репозитория заявок
type AppointmentRepository interface {
	ListDueReminders(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
	MarkReminderSent(ctx context.Context, id int64) error
}

// ReminderNotifier отправка напоминания клиенту
type ReminderNotifier interface {
	SendReminder(ctx context.Context, a *domain.Appointment) bool
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
