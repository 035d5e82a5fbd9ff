package moderate_booking

import (
	"strings"

	moderateBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/moderate_booking"
)

// ModerateRequest HTTP модель запроса модерации
type ModerateRequest struct {
	ID     int64  `json:"id"`
	Action string `json:"action"` // confirm | reject
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос usecase
func (r *ModerateRequest) ToUseCaseRequest() *moderateBooking.Request {
	return &moderateBooking.Request{
		ID:     r.ID,
		Action: moderateBooking.Action(strings.ToLower(strings.TrimSpace(r.Action))),
	}
}

// NotificationsResponse результат отправки по каналам
type NotificationsResponse struct {
	Telegram bool `json:"telegram"`
	Email    bool `json:"email"`
}

// ModerateResponse HTTP модель ответа
type ModerateResponse struct {
	Success       bool                  `json:"success"`
	Status        string                `json:"status"`
	Notifications NotificationsResponse `json:"notifications"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP модель
func FromUseCaseResponse(resp *moderateBooking.Response) *ModerateResponse {
	return &ModerateResponse{
		Success: resp.Success,
		Status:  string(resp.Status),
		Notifications: NotificationsResponse{
			Telegram: resp.Notifications.Telegram,
			Email:    resp.Notifications.Email,
		},
	}
}
