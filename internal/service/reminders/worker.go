package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Worker периодически напоминает клиентам о подтверждённых записях на завтра
// Единственный владелец флага reminder_sent
type Worker struct {
	appointmentRepo AppointmentRepository
	notifier        ReminderNotifier
	interval        time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewWorker создает воркер напоминаний
func NewWorker(appointmentRepo AppointmentRepository, notifier ReminderNotifier, interval time.Duration, logger Logger) *Worker {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &Worker{
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		interval:        interval,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Run обрабатывает напоминания сразу и затем по таймеру, пока не отменён ctx
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Reminders: worker started, interval=%s", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		if _, err := w.RunOnce(ctx); err != nil {
			w.logger.Error("Reminders: batch failed: %v", err)
		}

		select {
		case <-ctx.Done():
			w.logger.Info("Reminders: worker stopped")
			return
		case <-ticker.C:
		}
	}
}

// RunOnce обрабатывает заявки на завтра и возвращает число отправленных писем
// Заявка без email отмечается сразу; при ошибке отправки остаётся до следующего прохода
func (w *Worker) RunOnce(ctx context.Context) (int, error) {
	now := w.timeProvider.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)

	due, err := w.appointmentRepo.ListDueReminders(ctx, tomorrow)
	if err != nil {
		return 0, fmt.Errorf("list due reminders for %s: %w", tomorrow.Format(domain.DateFormat), err)
	}
	if len(due) == 0 {
		return 0, nil
	}

	sent := 0
	for _, a := range due {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}

		if a.HasEmail() {
			if !w.notifier.SendReminder(ctx, a) {
				w.logger.Warn("Reminders: reminder for appointment id=%d not delivered, will retry", a.ID)
				continue
			}
			sent++
		}

		if err := w.appointmentRepo.MarkReminderSent(ctx, a.ID); err != nil {
			w.logger.Error("Reminders: failed to mark appointment id=%d: %v", a.ID, err)
		}
	}

	w.logger.Info("Reminders: %d due for %s, %d emails sent", len(due), tomorrow.Format(domain.DateFormat), sent)
	return sent, nil
}
