package mailer

import "errors"

var (
	// ErrInvalidRecipient возвращается при пустом адресе получателя
	ErrInvalidRecipient = errors.New("mailer: invalid recipient")

	// ErrSend возвращается при ошибке отправки через SMTP
	ErrSend = errors.New("mailer: failed to send message")
)
