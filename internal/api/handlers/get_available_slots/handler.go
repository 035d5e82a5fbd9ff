package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingDate    = "дата обязательна"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStylist = "мастер не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD), stylist (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date := query.Get("date")
	if date == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, handlers.KindMissingField, msgMissingDate)
		return
	}

	req := &getAvailableSlots.Request{Date: date}
	if stylist := query.Get("stylist"); stylist != "" {
		req.Stylist = &stylist
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /slots - Invalid date: %s", date)
			handlers.RespondBadRequest(w, handlers.KindInvalidDate, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidStylist):
			h.logger.Warn("GET /slots - Invalid stylist: %s", query.Get("stylist"))
			handlers.RespondBadRequest(w, handlers.KindInvalidStylist, msgInvalidStylist)

		default:
			h.logger.Error("GET /slots - Failed to get slots: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: date=%s, count=%d", date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
