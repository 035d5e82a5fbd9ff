package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

const (
	// maxCodeAttempts попыток вставки при совпадении кода подтверждения
	maxCodeAttempts = 3
	// maxSerializationRetries повторов транзакции после 40001/40P01
	maxSerializationRetries = 1
)

// UseCase use case для создания заявки на запись
type UseCase struct {
	appointmentRepo AppointmentRepository
	blocklistRepo   BlocklistRepository
	txManager       TransactionManager
	locker          SlotLocker
	codes           CodeGenerator
	notifier        AdminNotifier
	dispatcher      Dispatcher
	metrics         Metrics
	salon           *domain.Salon
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	blocklistRepo BlocklistRepository,
	txManager TransactionManager,
	locker SlotLocker,
	notifier AdminNotifier,
	dispatcher Dispatcher,
	metrics Metrics,
	salon *domain.Salon,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		blocklistRepo:   blocklistRepo,
		txManager:       txManager,
		locker:          locker,
		codes:           &RandomCodeGenerator{},
		notifier:        notifier,
		dispatcher:      dispatcher,
		metrics:         metrics,
		salon:           salon,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания заявки
// Проверка блокировки, проверка слота и вставка выполняются атомарно:
// блокировка ключа слота в процессе + сериализуемая транзакция с FOR UPDATE
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, service=%s, stylist=%s",
		req.Date, req.Time, req.Service, ptr.Value(req.Stylist))

	// 1. Валидация и нормализация
	b, err := validateRequest(req, uc.salon)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.RecordBooking(resultInvalid)
		return nil, err
	}

	// 2. Сериализуем запросы на один слот внутри процесса
	unlock := uc.locker.Lock(slotKey(b))
	defer unlock()

	// 3. Транзакция; при совпадении кода подтверждения повторяем с новым кодом,
	// при ошибке сериализации повторяем один раз: в слоте могли остаться места
	var created *domain.Appointment
	retries := 0
	for attempt := 1; attempt <= maxCodeAttempts; {
		created, err = uc.book(ctx, b)
		switch {
		case errors.Is(err, appointmentRepo.ErrCodeConflict):
			uc.logger.Warn("CreateBooking: confirmation code collision, attempt %d/%d", attempt, maxCodeAttempts)
			attempt++
			continue
		case appointmentRepo.IsSerializationFailure(err) && retries < maxSerializationRetries:
			retries++
			uc.logger.Warn("CreateBooking: serialization failure, retrying: %v", err)
			continue
		}
		break
	}

	if err != nil {
		return nil, uc.fail(err)
	}

	uc.logger.Info("CreateBooking: created appointment id=%d code=%s for %s %s",
		created.ID, created.ConfirmationCode, b.date.Format(domain.DateFormat), b.time)
	uc.metrics.RecordBooking(resultCreated)

	// 4. Уведомление администратора в фоне, результат на ответ не влияет
	uc.dispatcher.Go(fmt.Sprintf("admin new booking id=%d", created.ID), func(ctx context.Context) bool {
		return uc.notifier.SendAdminNewBooking(ctx, created)
	})

	return &Response{
		ID:               created.ID,
		ConfirmationCode: created.ConfirmationCode,
	}, nil
}

// book одна попытка: проверки и вставка в сериализуемой транзакции
func (uc *UseCase) book(ctx context.Context, b *booking) (*domain.Appointment, error) {
	code, err := uc.codes.Generate(uc.salon.CodePrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Телефон в чёрном списке
		blocked, err := uc.blocklistRepo.IsBlocked(txCtx, b.phone)
		if err != nil {
			return fmt.Errorf("check blocklist: %w", err)
		}
		if blocked {
			return fmt.Errorf("%w: %s", ErrBlocked, b.phone)
		}

		// 3.2. Активные заявки на слот с блокировкой строк
		active, err := uc.appointmentRepo.ListActiveBySlot(txCtx, b.date, b.time)
		if err != nil {
			return fmt.Errorf("get active appointments: %w", err)
		}

		capacity := uc.salon.Capacity()
		if err := checkConflict(b, active, capacity); err != nil {
			return err
		}

		uc.logger.Info("CreateBooking: slot %s %s free, %d/%d taken",
			b.date.Format(domain.DateFormat), b.time, len(active), capacity)

		// 3.3. Вставка
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			Date:             b.date,
			Time:             b.time,
			Service:          b.service,
			Price:            b.price,
			Stylist:          b.stylist,
			ClientName:       b.name,
			ClientPhone:      b.phone,
			ClientEmail:      b.email,
			Status:           domain.StatusPending,
			ConfirmationCode: code,
			CreatedAt:        uc.timeProvider.Now(),
		})
		if err != nil {
			return fmt.Errorf("create appointment: %w", err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// fail переводит ошибку транзакции в ошибку use case и пишет метрику
func (uc *UseCase) fail(err error) error {
	switch {
	case errors.Is(err, ErrBlocked):
		uc.logger.Warn("CreateBooking: %v", err)
		uc.metrics.RecordBooking(resultBlocked)
		return ErrBlocked
	case errors.Is(err, ErrSlotTaken):
		uc.logger.Warn("CreateBooking: %v", err)
		uc.metrics.RecordBooking(resultSlotTaken)
		return ErrSlotTaken
	case appointmentRepo.IsSlotConflict(err):
		uc.logger.Warn("CreateBooking: concurrent booking of the same slot: %v", err)
		uc.metrics.RecordBooking(resultSlotTaken)
		return ErrSlotTaken
	case errors.Is(err, ErrInternal):
		uc.logger.Error("CreateBooking: %v", err)
		uc.metrics.RecordBooking(resultError)
		return err
	}

	uc.logger.Error("CreateBooking: transaction failed: %v", err)
	uc.metrics.RecordBooking(resultError)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
