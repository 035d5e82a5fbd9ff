package get_available_slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

// UseCase use case для расчёта занятости слотов на дату
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

// Execute выполняет use case получения слотов
// Результат всегда содержит все времена рабочей сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, stylist=%s", req.Date, ptr.Value(req.Stylist))

	// 1. Валидация входных данных
	date, err := validateRequest(req, uc.salon)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	var stylist *string
	if req.Stylist != nil {
		stylist = ptr.Ptr(strings.TrimSpace(*req.Stylist))
	}

	// 2. Получаем активные заявки на дату
	appointments, err := uc.appointmentRepo.ListActiveByDate(ctx, date, stylist)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 3. Строим слоты по сетке
	slots := buildSlots(uc.salon, stylist, appointments)

	uc.logger.Info("GetAvailableSlots: %d slots for %s, %d active appointments",
		len(slots), date.Format(domain.DateFormat), len(appointments))

	return &Response{
		Date:    date,
		Stylist: stylist,
		Slots:   slots,
	}, nil
}
