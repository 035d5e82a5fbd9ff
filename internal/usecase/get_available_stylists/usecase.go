package get_available_stylists

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// UseCase use case для получения свободных мастеров на время
type UseCase struct {
	appointmentRepo AppointmentRepository
	salon           *domain.Salon
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, salon *domain.Salon, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		salon:           salon,
		logger:          logger,
	}
}

// Execute возвращает мастеров, у которых нет активной заявки на (date, time)
// Заявки без мастера не закрепляют конкретного человека и не исключают никого
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableStylists: date=%s, time=%s", req.Date, req.Time)

	// 1. Валидация
	date, ok := domain.ParseDate(req.Date)
	if !ok {
		uc.logger.Warn("GetAvailableStylists: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}
	slotTime := strings.TrimSpace(req.Time)
	if !uc.salon.HasTime(slotTime) {
		uc.logger.Warn("GetAvailableStylists: invalid time %q", req.Time)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, req.Time)
	}

	// 2. Активные заявки на слот
	appointments, err := uc.appointmentRepo.ListActiveBySlot(ctx, date, slotTime)
	if err != nil {
		uc.logger.Error("GetAvailableStylists: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	busy := make(map[string]struct{}, len(appointments))
	for _, a := range appointments {
		if a.IsActive() && a.Stylist != nil {
			busy[*a.Stylist] = struct{}{}
		}
	}

	// 3. Фильтруем список мастеров
	free := make([]string, 0, len(uc.salon.Stylists))
	for _, s := range uc.salon.Stylists {
		if _, ok := busy[s]; !ok {
			free = append(free, s)
		}
	}

	return &Response{Stylists: free}, nil
}
