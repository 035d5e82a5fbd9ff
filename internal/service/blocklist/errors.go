package blocklist

import "errors"

var (
	// ErrInvalidPhone возвращается, когда телефон не подходит под шаблон салона
	ErrInvalidPhone = errors.New("blocklist: invalid phone")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("blocklist: internal error")
)
