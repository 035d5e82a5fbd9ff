package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

// Service сервис для чтения заявок и правки данных клиента
type Service struct {
	appointmentRepo AppointmentRepository
	salon           *domain.Salon
	logger          Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(appointmentRepo AppointmentRepository, salon *domain.Salon, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		salon:           salon,
		logger:          logger,
	}
}

// GetStatus ищет заявку по коду подтверждения без учёта регистра
// Без изменения данных повторные вызовы возвращают одинаковый результат
func (s *Service) GetStatus(ctx context.Context, code string) (*models.StatusResponse, error) {
	code = strings.TrimSpace(code)
	s.logger.Info("GetStatus: code=%s", code)

	if code == "" {
		return nil, ErrNotFound
	}

	a, err := s.appointmentRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetStatus: code=%s not found", code)
			return nil, ErrNotFound
		}
		s.logger.Error("GetStatus: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetStatus - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStatus(a), nil
}

// List возвращает заявки для админки с фильтрацией по статусу и дате
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateClientName исправляет имя клиента; имя нормализуется как при записи
func (s *Service) UpdateClientName(ctx context.Context, id int64, req *models.UpdateClientNameRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateClientName: id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	name := s.salon.NormalizeName(req.ClientName)
	if name == "" {
		s.logger.Warn("UpdateClientName: empty name for id=%d", id)
		return nil, fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if err := s.appointmentRepo.UpdateClientName(ctx, id, name); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateClientName: appointment id=%d not found", id)
			return nil, ErrNotFound
		}
		s.logger.Error("UpdateClientName: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateClientName - repository error: %v", ErrInternal, err)
	}

	a, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("UpdateClientName: failed to reload id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateClientName - reload: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateClientName: updated appointment id=%d", id)
	return models.FromDomainAppointment(a), nil
}
