package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// ListRequest фильтр списка заявок в админке
type ListRequest struct {
	Status *string `json:"status,omitempty"`
	Date   *string `json:"date,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	var filter domain.AppointmentsFilter

	if r.Status != nil && strings.TrimSpace(*r.Status) != "" {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.Date != nil && strings.TrimSpace(*r.Date) != "" {
		date, ok := domain.ParseDate(*r.Date)
		if !ok {
			return filter, ErrInvalidDate
		}
		filter.Date = &date
	}

	return filter, nil
}

// UpdateClientNameRequest исправление имени клиента
type UpdateClientNameRequest struct {
	ClientName string `json:"clientName"`
}

// Response модели

// StatusResponse публичная сводка по коду подтверждения
type StatusResponse struct {
	Code    string  `json:"code"`
	Date    string  `json:"date"` // "2025-03-10"
	Time    string  `json:"time"` // "10:00"
	Service string  `json:"service"`
	Stylist *string `json:"stylist"`
	Status  string  `json:"status"`
}

// AppointmentResponse полная заявка для админки
type AppointmentResponse struct {
	ID               int64     `json:"id"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Service          string    `json:"service"`
	Price            int       `json:"price"`
	Stylist          *string   `json:"stylist"`
	ClientName       string    `json:"clientName"`
	ClientPhone      string    `json:"clientPhone"`
	ClientEmail      *string   `json:"clientEmail"`
	Status           string    `json:"status"`
	ConfirmationCode string    `json:"confirmationCode"`
	ReminderSent     bool      `json:"reminderSent"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком заявок
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainStatus публичная сводка по заявке
func FromDomainStatus(a *domain.Appointment) *StatusResponse {
	if a == nil {
		return nil
	}
	return &StatusResponse{
		Code:    a.ConfirmationCode,
		Date:    a.Date.Format(domain.DateFormat),
		Time:    a.Time,
		Service: a.Service,
		Stylist: a.Stylist,
		Status:  string(a.Status),
	}
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}
	return &AppointmentResponse{
		ID:               a.ID,
		Date:             a.Date.Format(domain.DateFormat),
		Time:             a.Time,
		Service:          a.Service,
		Price:            a.Price,
		Stylist:          a.Stylist,
		ClientName:       a.ClientName,
		ClientPhone:      a.ClientPhone,
		ClientEmail:      a.ClientEmail,
		Status:           string(a.Status),
		ConfirmationCode: a.ConfirmationCode,
		ReminderSent:     a.ReminderSent,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		if r := FromDomainAppointment(a); r != nil {
			resp.Appointments = append(resp.Appointments, *r)
		}
	}
	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(strings.ToLower(strings.TrimSpace(status)))
	switch s {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusRejected:
		return s, nil
	}
	return "", ErrInvalidStatus
}
