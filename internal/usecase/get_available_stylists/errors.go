package get_available_stylists

import "errors"

var (
	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("get_available_stylists: invalid date")

	// ErrInvalidTime возвращается, когда времени нет в рабочей сетке
	ErrInvalidTime = errors.New("get_available_stylists: invalid time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_stylists: internal error")
)
