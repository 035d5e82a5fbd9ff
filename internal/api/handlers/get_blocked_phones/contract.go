package get_blocked_phones

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/blocklist/models"
)

type BlocklistService interface {
	List(ctx context.Context) (*models.BlockedPhoneListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
