package moderate_booking

import (
	"context"

	moderateBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/moderate_booking"
)

type ModerateBookingUseCase interface {
	Execute(ctx context.Context, req *moderateBooking.Request) (*moderateBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
