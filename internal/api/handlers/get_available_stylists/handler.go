package get_available_stylists

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	getAvailableStylists "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_stylists"
)

const (
	msgMissingParams = "дата и время обязательны"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime   = "время не входит в рабочую сетку"
)

type Handler struct {
	useCase GetAvailableStylistsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableStylistsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-stylists
// Query params: date (YYYY-MM-DD), time (HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	date, slotTime := query.Get("date"), query.Get("time")

	if date == "" || slotTime == "" {
		h.logger.Warn("GET /available-stylists - Missing params: date=%q, time=%q", date, slotTime)
		handlers.RespondBadRequest(w, handlers.KindMissingField, msgMissingParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableStylists.Request{Date: date, Time: slotTime})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableStylists.ErrInvalidDate):
			h.logger.Warn("GET /available-stylists - Invalid date: %s", date)
			handlers.RespondBadRequest(w, handlers.KindInvalidDate, msgInvalidDate)

		case errors.Is(err, getAvailableStylists.ErrInvalidTime):
			h.logger.Warn("GET /available-stylists - Invalid time: %s", slotTime)
			handlers.RespondBadRequest(w, handlers.KindInvalidTime, msgInvalidTime)

		default:
			h.logger.Error("GET /available-stylists - Failed to get stylists: date=%s, time=%s, error=%v", date, slotTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	stylists := result.Stylists
	if stylists == nil {
		stylists = []string{}
	}

	h.logger.Info("GET /available-stylists - Stylists retrieved: date=%s, time=%s, count=%d", date, slotTime, len(stylists))
	handlers.RespondJSON(w, http.StatusOK, stylists)
}
