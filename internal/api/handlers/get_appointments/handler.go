package get_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

const (
	msgInvalidStatus = "некорректный статус, ожидается pending, confirmed или rejected"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/admin/appointments
// Query params: status (optional), date (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListRequest{}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	if date := query.Get("date"); date != "" {
		req.Date = &date
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidDate):
			h.logger.Warn("GET /admin/appointments - Invalid date: %s", query.Get("date"))
			handlers.RespondBadRequest(w, handlers.KindInvalidDate, msgInvalidDate)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments - Invalid status: %s", query.Get("status"))
			handlers.RespondBadRequest(w, handlers.KindInvalidStatus, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/appointments - Failed to list appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
