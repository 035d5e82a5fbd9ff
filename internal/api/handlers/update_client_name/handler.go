package update_client_name

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

const (
	msgInvalidID          = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingName        = "имя клиента обязательно"
	msgNotFound           = "заявка не найдена"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PATCH /admin/appointments/{id} - Invalid appointment ID: %s", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, handlers.KindInvalidRequest, msgInvalidID)
		return
	}

	var req models.UpdateClientNameRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidRequest, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateClientName(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/appointments/{id} - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, handlers.KindMissingField, msgMissingName)

		case errors.Is(err, appointments.ErrNotFound):
			h.logger.Warn("PATCH /admin/appointments/{id} - Appointment not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/appointments/{id} - Failed to update name: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/appointments/{id} - Client name updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
