package get_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
)

const msgNotFound = "заявка с таким кодом не найдена"

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

// Handle GET /api/v1/status/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	status, err := h.service.GetStatus(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrNotFound):
			h.logger.Warn("GET /status/{code} - Appointment not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /status/{code} - Failed to get status: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /status/{code} - Status retrieved: code=%s, status=%s", status.Code, status.Status)
	handlers.RespondJSON(w, http.StatusOK, status)
}
