package block_phone

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/blocklist/models"
)

type BlocklistService interface {
	Block(ctx context.Context, req *models.BlockPhoneRequest) (*models.BlockedPhoneResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
