package moderate_booking

import "errors"

var (
	// ErrInvalidAction возвращается, когда действие не confirm и не reject
	ErrInvalidAction = errors.New("moderate_booking: invalid action")

	// ErrNotFound возвращается, когда заявка не найдена
	ErrNotFound = errors.New("moderate_booking: appointment not found")

	// ErrAlreadyFinalized возвращается при повторной модерации подтверждённой или отклонённой заявки
	ErrAlreadyFinalized = errors.New("moderate_booking: appointment already finalized")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("moderate_booking: internal error")
)
