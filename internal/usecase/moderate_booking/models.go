package moderate_booking

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// Action действие администратора
type Action string

const (
	ActionConfirm Action = "confirm"
	ActionReject  Action = "reject"
)

// targetStatus статус заявки после действия
func (a Action) targetStatus() (domain.AppointmentStatus, bool) {
	switch a {
	case ActionConfirm:
		return domain.StatusConfirmed, true
	case ActionReject:
		return domain.StatusRejected, true
	}
	return "", false
}

// Request модель запроса модерации
type Request struct {
	ID     int64
	Action Action
}

// Notifications результат отправки по каналам
type Notifications struct {
	Telegram bool
	Email    bool
}

// Response модель ответа модерации
type Response struct {
	Success       bool
	Status        domain.AppointmentStatus
	Notifications Notifications
}

const (
	channelTelegram = "telegram"
	channelEmail    = "email"
)

// Результаты для метрики moderations_total
const (
	resultApplied   = "applied"
	resultNotFound  = "not_found"
	resultFinalized = "already_finalized"
	resultError     = "error"
)
