package notifications

import (
	"context"
	"sync"
	"time"
)

// Dispatcher запускает уведомления в фоне, отвязанно от запроса и транзакции
// Ошибки и паники логируются и не возвращаются вызывающему
type Dispatcher struct {
	wg      sync.WaitGroup
	timeout time.Duration
	logger  Logger
}

// NewDispatcher создает диспетчер с ограничением времени на одну отправку
func NewDispatcher(timeout time.Duration, logger Logger) *Dispatcher {
	return &Dispatcher{
		timeout: timeout,
		logger:  logger,
	}
}

// Go запускает fn в отдельной горутине с собственным контекстом
func (d *Dispatcher) Go(name string, fn func(ctx context.Context) bool) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.logger.Error("Dispatcher: %s panicked: %v", name, r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if !fn(ctx) {
			d.logger.Warn("Dispatcher: %s not delivered", name)
		}
	}()
}

// Wait ждёт завершения запущенных отправок или отмены ctx
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
