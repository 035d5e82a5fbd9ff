package admin_login

import (
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingPassword    = "пароль обязателен"
	msgInvalidPassword    = "неверный пароль"

	adminSubject = "admin"
)

type Handler struct {
	passwordHash []byte
	issuer       TokenIssuer
	secureCookie bool
	logger       Logger
}

// NewHandler passwordHash bcrypt хеш пароля администратора
// При пустом хеше вход всегда отклоняется
func NewHandler(passwordHash string, issuer TokenIssuer, secureCookie bool, logger Logger) *Handler {
	return &Handler{
		passwordHash: []byte(passwordHash),
		issuer:       issuer,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidRequest, msgInvalidRequestBody)
		return
	}

	if req.Password == "" {
		h.logger.Warn("POST /admin/login - Missing password")
		handlers.RespondBadRequest(w, handlers.KindMissingField, msgMissingPassword)
		return
	}

	if len(h.passwordHash) == 0 {
		h.logger.Warn("POST /admin/login - Admin password hash is not configured")
		handlers.RespondUnauthorized(w, msgInvalidPassword)
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
		h.logger.Warn("POST /admin/login - Invalid password")
		handlers.RespondUnauthorized(w, msgInvalidPassword)
		return
	}

	token, expiresAt, err := h.issuer.IssueToken(adminSubject)
	if err != nil {
		h.logger.Error("POST /admin/login - Failed to issue token: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /admin/login - Admin logged in, session expires at %s", expiresAt.Format(time.RFC3339))
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt})
}
