package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInvalidStylist возвращается, когда мастера нет в списке салона
	ErrInvalidStylist = errors.New("get_available_slots: unknown stylist")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
