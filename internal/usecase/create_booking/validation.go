package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

// validateRequest проверяет запрос в фиксированном порядке и нормализует поля
// Первая найденная ошибка возвращается, остальные проверки не выполняются
func validateRequest(req *Request, salon *domain.Salon) (*booking, error) {
	// 1. Обязательные поля
	required := []struct {
		name  string
		value string
	}{
		{"date", req.Date},
		{"time", req.Time},
		{"service", req.Service},
		{"clientName", req.ClientName},
		{"clientPhone", req.ClientPhone},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	// 2. Дата
	date, ok := domain.ParseDate(req.Date)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	// 3. Время
	slotTime := strings.TrimSpace(req.Time)
	if !salon.HasTime(slotTime) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, req.Time)
	}

	// 4. Услуга и цена
	service := strings.TrimSpace(req.Service)
	price, ok := salon.Price(service)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidService, req.Service)
	}

	// 5. Телефон
	if !salon.ValidPhone(domain.StripPhone(req.ClientPhone)) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhone, req.ClientPhone)
	}

	// 6. Email
	var email *string
	if req.ClientEmail != nil && strings.TrimSpace(*req.ClientEmail) != "" {
		if !strings.Contains(*req.ClientEmail, "@") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, *req.ClientEmail)
		}
		email = ptr.Ptr(salon.NormalizeEmail(*req.ClientEmail))
	}

	// 7. Мастер
	var stylist *string
	if req.Stylist != nil && strings.TrimSpace(*req.Stylist) != "" {
		name := strings.TrimSpace(*req.Stylist)
		if !salon.HasStylist(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStylist, name)
		}
		stylist = &name
	}

	// Имя из одних угловых скобок после очистки пустое
	name := salon.NormalizeName(req.ClientName)
	if name == "" {
		return nil, fmt.Errorf("%w: clientName", ErrMissingField)
	}

	return &booking{
		date:    date,
		time:    slotTime,
		service: service,
		price:   price,
		stylist: stylist,
		name:    name,
		phone:   salon.CanonicalPhone(req.ClientPhone),
		email:   email,
	}, nil
}

// slotKey ключ блокировки слота внутри процесса
func slotKey(b *booking) string {
	return b.date.Format(domain.DateFormat) + "|" + b.time
}

// checkConflict проверяет занятость слота по активным заявкам
// Мастер указан: занят, если у мастера уже есть заявка или слот заполнен целиком
// Мастер не указан: занят, если заявок не меньше, чем мастеров
func checkConflict(b *booking, active []*domain.Appointment, capacity int) error {
	total := 0
	for _, a := range active {
		if !a.IsActive() {
			continue
		}
		total++
		if b.stylist != nil && a.Stylist != nil && *a.Stylist == *b.stylist {
			return fmt.Errorf("%w: %s %s stylist %s", ErrSlotTaken, b.date.Format(domain.DateFormat), b.time, *b.stylist)
		}
	}

	if total >= capacity {
		return fmt.Errorf("%w: %s %s %d/%d", ErrSlotTaken, b.date.Format(domain.DateFormat), b.time, total, capacity)
	}

	return nil
}
