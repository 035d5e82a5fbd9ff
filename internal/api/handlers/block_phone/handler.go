package block_phone

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

// Handle POST /api/v1/admin/block-phone
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.BlockPhoneRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/block-phone - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidRequest, msgInvalidRequestBody)
		return
	}

	blocked, err := h.service.Block(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, blocklist.ErrInvalidPhone):
			h.logger.Warn("POST /admin/block-phone - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, handlers.KindInvalidPhone, msgInvalidPhone)

		default:
			h.logger.Error("POST /admin/block-phone - Failed to block phone: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/block-phone - Phone blocked: phone=%s", blocked.Phone)
	handlers.RespondJSON(w, http.StatusOK, blocked)
}
