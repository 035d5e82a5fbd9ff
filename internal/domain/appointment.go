package domain

import (
	"time"
)

// AppointmentStatus represents the moderation status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusRejected  AppointmentStatus = "rejected"
)

// Appointment represents a client's appointment request
type Appointment struct {
	ID      int64
	Date    time.Time
	Time    string  // one of Salon.WorkHours, "09:00"
	Service string  // key of Salon.Services
	Price   int     // copied from the catalog at creation time
	Stylist *string // nil = any stylist, consumes one generic capacity unit

	ClientName  string
	ClientPhone string // canonical local format
	ClientEmail *string

	Status           AppointmentStatus
	ConfirmationCode string
	ReminderSent     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsFinal returns true if the appointment has already been moderated
func (a *Appointment) IsFinal() bool {
	return a.Status == StatusConfirmed || a.Status == StatusRejected
}

// HasEmail returns true if the client left an email address
func (a *Appointment) HasEmail() bool {
	return a.ClientEmail != nil && *a.ClientEmail != ""
}

// AppointmentsFilter фильтр для списка заявок в админке
type AppointmentsFilter struct {
	Status *AppointmentStatus // nil - все статусы
	Date   *time.Time         // nil - все даты
}
