package get_services

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

type Handler struct {
	service SalonService
	logger  Logger
}

func NewHandler(service SalonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	catalog := h.service.GetCatalog()

	h.logger.Info("GET /services - Catalog retrieved: services=%d, stylists=%d", len(catalog.Services), len(catalog.Stylists))
	handlers.RespondJSON(w, http.StatusOK, catalog)
}
