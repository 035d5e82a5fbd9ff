package telegram

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("telegram client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе Bot API
	ErrInvalidResponse = errors.New("telegram client: invalid response")

	// ErrRejected возвращается, когда Bot API ответил ok=false
	ErrRejected = errors.New("telegram client: message rejected")
)
