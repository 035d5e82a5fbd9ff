package get_available_stylists

import (
	"context"

	getAvailableStylists "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_stylists"
)

type GetAvailableStylistsUseCase interface {
	Execute(ctx context.Context, req *getAvailableStylists.Request) (*getAvailableStylists.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
