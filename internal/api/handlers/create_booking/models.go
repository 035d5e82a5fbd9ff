package create_booking

import (
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date        string  `json:"date"` // "2025-03-10"
	Time        string  `json:"time"` // "10:00"
	Service     string  `json:"service"`
	Stylist     *string `json:"stylist,omitempty"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64  `json:"id"`
	ConfirmationCode string `json:"confirmationCode"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Проверка и нормализация полей выполняются в use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:        r.Date,
		Time:        r.Time,
		Service:     r.Service,
		Stylist:     r.Stylist,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:               resp.ID,
		ConfirmationCode: resp.ConfirmationCode,
	}
}
