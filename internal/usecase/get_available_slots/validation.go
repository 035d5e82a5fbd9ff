package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateRequest проверяет дату и мастера, возвращает разобранную дату
func validateRequest(req *Request, salon *domain.Salon) (time.Time, error) {
	date, ok := domain.ParseDate(req.Date)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	if req.Stylist != nil && !salon.HasStylist(strings.TrimSpace(*req.Stylist)) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidStylist, *req.Stylist)
	}

	return date, nil
}

// buildSlots считает занятость каждого времени сетки
// capacity = 1 для конкретного мастера, иначе размер команды
func buildSlots(salon *domain.Salon, stylist *string, appointments []*domain.Appointment) []domain.Slot {
	capacity := salon.Capacity()
	if stylist != nil {
		capacity = 1
	}

	occupied := make(map[string]int, len(salon.WorkHours))
	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		occupied[a.Time]++
	}

	slots := make([]domain.Slot, 0, len(salon.WorkHours))
	for _, t := range salon.WorkHours {
		slots = append(slots, domain.NewSlot(t, capacity, occupied[t]))
	}

	return slots
}
