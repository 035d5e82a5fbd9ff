package appointment

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrAppointmentNotFound возвращается, когда заявка не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotConflict возвращается при нарушении уникального индекса активного слота
	ErrSlotConflict = errors.New("appointment.repository: slot conflict")

	// ErrSerializationFailure возвращается, когда транзакцию отменил сериализатор или детектор дедлоков
	ErrSerializationFailure = errors.New("appointment.repository: serialization failure")

	// ErrCodeConflict возвращается, когда сгенерированный код подтверждения уже существует
	ErrCodeConflict = errors.New("appointment.repository: confirmation code conflict")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)

// Коды ошибок PostgreSQL
const (
	pqUniqueViolation      = "23505"
	pqSerializationFailure = "40001"
	pqDeadlockDetected     = "40P01"
	codeUniqueConstraint   = "appointments_confirmation_code_key"
	codeUpperUniqueIndex   = "appointments_code_upper_idx"
	activeSlotUniqueIndex  = "appointments_active_stylist_slot_idx"
)

// IsSerializationFailure сообщает, что транзакцию можно повторить:
// 40001 или 40P01, в том числе из commit менеджера транзакций
// Сама ошибка не означает, что слот занят: при свободных местах
// проигравшая транзакция пройдёт проверку при повторе
func IsSerializationFailure(err error) bool {
	if errors.Is(err, ErrSerializationFailure) {
		return true
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqSerializationFailure || pqErr.Code == pqDeadlockDetected
}

// IsSlotConflict сообщает, что ошибка вызвана конкурентной записью в тот же слот
// Используется для ошибок commit, которые возвращает менеджер транзакций
func IsSlotConflict(err error) bool {
	if errors.Is(err, ErrSlotConflict) || IsSerializationFailure(err) {
		return true
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqUniqueViolation && pqErr.Constraint == activeSlotUniqueIndex
}

// mapPQError переводит ошибки конкурентного доступа в ошибки репозитория
// Возвращает nil, если ошибка не относится к конфликтам
func mapPQError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}
	switch {
	case pqErr.Code == pqUniqueViolation &&
		(pqErr.Constraint == codeUniqueConstraint || pqErr.Constraint == codeUpperUniqueIndex):
		return ErrCodeConflict
	case IsSerializationFailure(pqErr):
		return ErrSerializationFailure
	case IsSlotConflict(pqErr):
		return ErrSlotConflict
	}
	return nil
}
