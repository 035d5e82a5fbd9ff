package moderate_booking

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentRepository интерфейс репозитория заявок
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MessagingNotifier уведомления через мессенджер
type MessagingNotifier interface {
	SendConfirmation(ctx context.Context, a *domain.Appointment) bool
}

// EmailNotifier уведомления по почте
type EmailNotifier interface {
	SendConfirmation(ctx context.Context, a *domain.Appointment) bool
	SendRejection(ctx context.Context, a *domain.Appointment) bool
}

// Metrics учёт результатов модерации
type Metrics interface {
	RecordModeration(action, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
