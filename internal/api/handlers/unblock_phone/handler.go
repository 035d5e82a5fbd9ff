package unblock_phone

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/blocklist"
	"github.com/m04kA/SMC-SalonBooking/internal/service/blocklist/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPhone       = "некорректный номер телефона"
)

type Handler struct {
	service BlocklistService
	logger  Logger
}

func NewHandler(service BlocklistService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/unblock-phone
// Снятие блокировки с незаблокированного телефона не ошибка: removed=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UnblockPhoneRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/unblock-phone - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidRequest, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Unblock(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blocklist.ErrInvalidPhone):
			h.logger.Warn("POST /admin/unblock-phone - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, handlers.KindInvalidPhone, msgInvalidPhone)

		default:
			h.logger.Error("POST /admin/unblock-phone - Failed to unblock phone: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/unblock-phone - Phone unblocked: phone=%s, removed=%t", result.Phone, result.Removed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
