package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	Date    string  // Дата в формате YYYY-MM-DD
	Stylist *string // Мастер (опционально)
}

// Response модель ответа со слотами на дату
type Response struct {
	Date    time.Time     // Дата, на которую запрашивались слоты
	Stylist *string       // Мастер из запроса
	Slots   []domain.Slot // Слоты в порядке рабочей сетки
}
