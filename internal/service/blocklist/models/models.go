package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// BlockPhoneRequest запрос на блокировку телефона
type BlockPhoneRequest struct {
	Phone  string  `json:"phone"`
	Reason *string `json:"reason,omitempty"`
}

// UnblockPhoneRequest запрос на снятие блокировки
type UnblockPhoneRequest struct {
	Phone string `json:"phone"`
}

// BlockedPhoneResponse заблокированный телефон
type BlockedPhoneResponse struct {
	Phone     string    `json:"phone"`
	Reason    *string   `json:"reason"`
	BlockedAt time.Time `json:"blockedAt"`
}

// UnblockPhoneResponse результат снятия блокировки
type UnblockPhoneResponse struct {
	Phone   string `json:"phone"`
	Removed bool   `json:"removed"`
}

// BlockedPhoneListResponse список заблокированных телефонов
type BlockedPhoneListResponse struct {
	Phones []BlockedPhoneResponse `json:"phones"`
}

// FromDomainBlocked конвертирует domain модель в DTO
func FromDomainBlocked(b *domain.BlockedClient) *BlockedPhoneResponse {
	if b == nil {
		return nil
	}
	return &BlockedPhoneResponse{
		Phone:     b.Phone,
		Reason:    b.Reason,
		BlockedAt: b.BlockedAt,
	}
}

// FromDomainBlockedList конвертирует список domain моделей в DTO
func FromDomainBlockedList(list []*domain.BlockedClient) *BlockedPhoneListResponse {
	resp := &BlockedPhoneListResponse{
		Phones: make([]BlockedPhoneResponse, 0, len(list)),
	}
	for _, b := range list {
		if r := FromDomainBlocked(b); r != nil {
			resp.Phones = append(resp.Phones, *r)
		}
	}
	return resp
}
