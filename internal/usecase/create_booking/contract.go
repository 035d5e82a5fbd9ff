package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentRepository интерфейс репозитория заявок
type AppointmentRepository interface {
	ListActiveBySlot(ctx context.Context, date time.Time, slotTime string) ([]*domain.Appointment, error)
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
}

// BlocklistRepository интерфейс репозитория заблокированных телефонов
type BlocklistRepository interface {
	IsBlocked(ctx context.Context, phone string) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotLocker блокировка по ключу слота внутри процесса
type SlotLocker interface {
	Lock(key string) (unlock func())
}

// CodeGenerator генератор кодов подтверждения
type CodeGenerator interface {
	Generate(prefix string) (string, error)
}

// AdminNotifier уведомление администратора о новой заявке
type AdminNotifier interface {
	SendAdminNewBooking(ctx context.Context, a *domain.Appointment) bool
}

// Dispatcher фоновый запуск уведомлений
type Dispatcher interface {
	Go(name string, fn func(ctx context.Context) bool)
}

// Metrics учёт результатов бронирования
type Metrics interface {
	RecordBooking(result string)
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
