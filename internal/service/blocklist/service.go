package blocklist

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/blocklist/models"
)

// Service сервис чёрного списка телефонов
// Телефоны хранятся в том же каноническом виде, что и в заявках
type Service struct {
	blocklistRepo BlocklistRepository
	salon         *domain.Salon
	logger        Logger
}

// NewService создает новый экземпляр сервиса
func NewService(blocklistRepo BlocklistRepository, salon *domain.Salon, logger Logger) *Service {
	return &Service{
		blocklistRepo: blocklistRepo,
		salon:         salon,
		logger:        logger,
	}
}

// Block блокирует телефон; повторный вызов только обновляет причину
func (s *Service) Block(ctx context.Context, req *models.BlockPhoneRequest) (*models.BlockedPhoneResponse, error) {
	phone, err := s.canonical(req.Phone)
	if err != nil {
		s.logger.Warn("Block: %v", err)
		return nil, err
	}

	var reason *string
	if req.Reason != nil && strings.TrimSpace(*req.Reason) != "" {
		r := strings.TrimSpace(*req.Reason)
		reason = &r
	}

	blocked, err := s.blocklistRepo.Upsert(ctx, phone, reason)
	if err != nil {
		s.logger.Error("Block: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: Block - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Block: phone=%s blocked", phone)
	return models.FromDomainBlocked(blocked), nil
}

// Unblock снимает блокировку; для незаблокированного телефона возвращает Removed=false
func (s *Service) Unblock(ctx context.Context, req *models.UnblockPhoneRequest) (*models.UnblockPhoneResponse, error) {
	phone, err := s.canonical(req.Phone)
	if err != nil {
		s.logger.Warn("Unblock: %v", err)
		return nil, err
	}

	removed, err := s.blocklistRepo.Delete(ctx, phone)
	if err != nil {
		s.logger.Error("Unblock: repository error for phone=%s: %v", phone, err)
		return nil, fmt.Errorf("%w: Unblock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Unblock: phone=%s, removed=%t", phone, removed)
	return &models.UnblockPhoneResponse{Phone: phone, Removed: removed}, nil
}

// List возвращает все заблокированные телефоны
func (s *Service) List(ctx context.Context) (*models.BlockedPhoneListResponse, error) {
	list, err := s.blocklistRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBlockedList(list), nil
}

func (s *Service) canonical(raw string) (string, error) {
	if !s.salon.ValidPhone(domain.StripPhone(raw)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	return s.salon.CanonicalPhone(raw), nil
}
