package create_booking

import "time"

// Request модель запроса на запись (значения как пришли от клиента)
type Request struct {
	Date        string  // YYYY-MM-DD
	Time        string  // время из рабочей сетки
	Service     string  // услуга из прайса
	Stylist     *string // мастер (опционально)
	ClientName  string
	ClientPhone string
	ClientEmail *string // опционально
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID               int64
	ConfirmationCode string
}

// booking проверенная и нормализованная заявка
type booking struct {
	date    time.Time
	time    string
	service string
	price   int
	stylist *string
	name    string
	phone   string
	email   *string
}

// Результаты для метрики bookings_total
const (
	resultCreated   = "created"
	resultInvalid   = "invalid"
	resultBlocked   = "blocked"
	resultSlotTaken = "slot_taken"
	resultError     = "error"
)
