package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Time      string `json:"time"`
	Status    string `json:"status"` // free | taken
	Available int    `json:"available"`
}

// FromUseCaseResponse конвертирует слоты в HTTP ответ (массив в порядке сетки)
func FromUseCaseResponse(resp *getAvailableSlots.Response) []SlotResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:      s.Time,
			Status:    string(s.Status),
			Available: s.Available,
		})
	}
	return slots
}
