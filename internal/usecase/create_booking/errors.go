package create_booking

import "errors"

var (
	// ErrMissingField возвращается, когда не заполнено обязательное поле
	ErrMissingField = errors.New("create_booking: missing required field")

	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("create_booking: invalid date")

	// ErrInvalidTime возвращается, когда времени нет в рабочей сетке
	ErrInvalidTime = errors.New("create_booking: invalid time")

	// ErrInvalidService возвращается, когда услуги нет в прайсе
	ErrInvalidService = errors.New("create_booking: invalid service")

	// ErrInvalidPhone возвращается, когда телефон не подходит под шаблон
	ErrInvalidPhone = errors.New("create_booking: invalid phone")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("create_booking: invalid email")

	// ErrInvalidStylist возвращается, когда мастера нет в списке салона
	ErrInvalidStylist = errors.New("create_booking: unknown stylist")

	// ErrBlocked возвращается, когда телефон клиента заблокирован
	ErrBlocked = errors.New("create_booking: client phone is blocked")

	// ErrSlotTaken возвращается, когда слот уже занят
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
