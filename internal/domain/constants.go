package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default salon configuration values
const (
	DefaultPhonePattern        = `^(\+359|0)8[789]\d{7}$`
	DefaultInternationalPrefix = "+359"
	DefaultLocalPrefix         = "0"
	DefaultCodePrefix          = "SLN"
	DefaultMaxNameLength       = 100
	DefaultMaxEmailLength      = 254
)

// ConfirmationCodeLength длина случайной части кода подтверждения
const ConfirmationCodeLength = 6

// ActiveStatuses статусы, занимающие слот
// Используется при подсчёте занятости
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
