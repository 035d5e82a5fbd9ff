package blocklist

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// BlocklistRepository интерфейс репозитория заблокированных телефонов
type BlocklistRepository interface {
	Upsert(ctx context.Context, phone string, reason *string) (*domain.BlockedClient, error)
	Delete(ctx context.Context, phone string) (bool, error)
	List(ctx context.Context) ([]*domain.BlockedClient, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
