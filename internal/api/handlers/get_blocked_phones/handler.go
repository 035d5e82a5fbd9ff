package get_blocked_phones

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
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

// Handle GET /api/v1/admin/blocked-phones
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/blocked-phones - Failed to list blocked phones: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/blocked-phones - Blocked phones retrieved: count=%d", len(list.Phones))
	handlers.RespondJSON(w, http.StatusOK, list)
}
