package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentRepository интерфейс репозитория заявок
type AppointmentRepository interface {
	// ListActiveByDate получает активные заявки на дату (только мастера stylist, если указан)
	ListActiveByDate(ctx context.Context, date time.Time, stylist *string) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
