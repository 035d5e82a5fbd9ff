package admin_logout

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
)

type LogoutResponse struct {
	Success bool `json:"success"`
}

type Handler struct {
	secureCookie bool
	logger       Logger
}

func NewHandler(secureCookie bool, logger Logger) *Handler {
	return &Handler{
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// Handle POST /api/v1/admin/logout
// Токены не отзываются, удаляется только cookie
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /admin/logout - Admin session cookie cleared")
	handlers.RespondJSON(w, http.StatusOK, LogoutResponse{Success: true})
}
