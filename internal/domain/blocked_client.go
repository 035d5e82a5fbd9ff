package domain

import "time"

// BlockedClient телефон, с которого запрещено создавать заявки
type BlockedClient struct {
	Phone     string // canonical local format
	Reason    *string
	BlockedAt time.Time
}
