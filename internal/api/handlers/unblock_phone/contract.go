package unblock_phone

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/blocklist/models"
)

type BlocklistService interface {
	Unblock(ctx context.Context, req *models.UnblockPhoneRequest) (*models.UnblockPhoneResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
