package notifications

import "errors"

var (
	// ErrChannelDisabled канал уведомлений не настроен
	ErrChannelDisabled = errors.New("notifications: channel disabled")

	// ErrNoRecipient у заявки нет адреса для этого канала
	ErrNoRecipient = errors.New("notifications: no recipient")
)
