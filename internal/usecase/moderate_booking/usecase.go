package moderate_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
)

// UseCase use case для подтверждения или отклонения заявки
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	messenger       MessagingNotifier
	mailer          EmailNotifier
	metrics         Metrics
	notifyTimeout   time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	messenger MessagingNotifier,
	mailer EmailNotifier,
	metrics Metrics,
	notifyTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		messenger:       messenger,
		mailer:          mailer,
		metrics:         metrics,
		notifyTimeout:   notifyTimeout,
		logger:          logger,
	}
}

// Execute меняет статус pending заявки на confirmed или rejected
// Уведомления отправляются после commit; их результат попадает в ответ,
// но ошибка отправки не отменяет модерацию
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ModerateBooking: id=%d, action=%s", req.ID, req.Action)

	// 1. Проверяем действие
	status, ok := req.Action.targetStatus()
	if !ok {
		uc.logger.Warn("ModerateBooking: invalid action %q", req.Action)
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, req.Action)
	}

	var appointment *domain.Appointment

	// 2. Меняем статус в транзакции с блокировкой строки
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		a, err := uc.appointmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		if a.IsFinal() {
			return fmt.Errorf("%w: id=%d is %s", ErrAlreadyFinalized, a.ID, a.Status)
		}

		if err := uc.appointmentRepo.UpdateStatus(txCtx, a.ID, status); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		a.Status = status
		appointment = a
		return nil
	})

	if err != nil {
		return nil, uc.fail(req, err)
	}

	uc.logger.Info("ModerateBooking: appointment id=%d is now %s", appointment.ID, appointment.Status)
	uc.metrics.RecordModeration(string(req.Action), resultApplied)

	// 3. Уведомления вне транзакции
	notifications := uc.notify(ctx, req.Action, appointment)

	uc.logger.Info("ModerateBooking: notifications for id=%d: telegram=%t, email=%t",
		appointment.ID, notifications.Telegram, notifications.Email)

	return &Response{
		Success:       true,
		Status:        appointment.Status,
		Notifications: notifications,
	}, nil
}

// notify отправляет уведомления параллельно с общим ограничением по времени
// Контекст запроса не отменяет отправку: статус уже изменён.
// Каналы, не ответившие до истечения notifyTimeout, считаются недоставленными
func (uc *UseCase) notify(ctx context.Context, action Action, a *domain.Appointment) Notifications {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.notifyTimeout)
	defer cancel()

	type sent struct {
		channel string
		ok      bool
	}

	// буфер на все каналы: опоздавшая горутина не блокируется после выхода
	results := make(chan sent, 2)
	pending := 0
	send := func(channel string, fn func(ctx context.Context, a *domain.Appointment) bool) {
		pending++
		go func() {
			results <- sent{channel: channel, ok: fn(ctx, a)}
		}()
	}

	switch action {
	case ActionConfirm:
		send(channelTelegram, uc.messenger.SendConfirmation)
		if a.HasEmail() {
			send(channelEmail, uc.mailer.SendConfirmation)
		}
	case ActionReject:
		if a.HasEmail() {
			send(channelEmail, uc.mailer.SendRejection)
		}
	}

	var result Notifications
	for ; pending > 0; pending-- {
		select {
		case r := <-results:
			switch r.channel {
			case channelTelegram:
				result.Telegram = r.ok
			case channelEmail:
				result.Email = r.ok
			}
		case <-ctx.Done():
			uc.logger.Warn("ModerateBooking: %d notification(s) for id=%d not finished within %s",
				pending, a.ID, uc.notifyTimeout)
			return result
		}
	}

	return result
}

func (uc *UseCase) fail(req *Request, err error) error {
	action := string(req.Action)

	switch {
	case errors.Is(err, ErrNotFound):
		uc.logger.Warn("ModerateBooking: appointment id=%d not found", req.ID)
		uc.metrics.RecordModeration(action, resultNotFound)
		return ErrNotFound
	case errors.Is(err, ErrAlreadyFinalized):
		uc.logger.Warn("ModerateBooking: %v", err)
		uc.metrics.RecordModeration(action, resultFinalized)
		return err
	case errors.Is(err, ErrInternal):
		uc.logger.Error("ModerateBooking: %v", err)
		uc.metrics.RecordModeration(action, resultError)
		return err
	}

	uc.logger.Error("ModerateBooking: transaction failed: %v", err)
	uc.metrics.RecordModeration(action, resultError)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
