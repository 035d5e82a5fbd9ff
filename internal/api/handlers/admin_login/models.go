package admin_login

import "time"

// LoginRequest HTTP модель входа администратора
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse токен сессии; он же выставляется в cookie
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
