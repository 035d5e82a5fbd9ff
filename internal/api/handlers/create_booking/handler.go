package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingField       = "не заполнены обязательные поля"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "выбранное время недоступно для записи"
	msgInvalidService     = "услуга не найдена"
	msgInvalidStylist     = "мастер не найден"
	msgInvalidPhone       = "некорректный номер телефона"
	msgInvalidEmail       = "некорректный email"
	msgBlocked            = "запись с этого номера невозможна"
	msgSlotTaken          = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidRequest, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingField):
			h.logger.Warn("POST /book - Missing field: %v", err)
			handlers.RespondBadRequest(w, handlers.KindMissingField, msgMissingField)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /book - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, handlers.KindInvalidDate, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidTime):
			h.logger.Warn("POST /book - Invalid time: %s", req.Time)
			handlers.RespondBadRequest(w, handlers.KindInvalidTime, msgInvalidTime)

		case errors.Is(err, createBooking.ErrInvalidService):
			h.logger.Warn("POST /book - Invalid service: %s", req.Service)
			handlers.RespondBadRequest(w, handlers.KindInvalidService, msgInvalidService)

		case errors.Is(err, createBooking.ErrInvalidPhone):
			h.logger.Warn("POST /book - Invalid phone")
			handlers.RespondBadRequest(w, handlers.KindInvalidPhone, msgInvalidPhone)

		case errors.Is(err, createBooking.ErrInvalidEmail):
			h.logger.Warn("POST /book - Invalid email")
			handlers.RespondBadRequest(w, handlers.KindInvalidEmail, msgInvalidEmail)

		case errors.Is(err, createBooking.ErrInvalidStylist):
			h.logger.Warn("POST /book - Invalid stylist: %v", err)
			handlers.RespondBadRequest(w, handlers.KindInvalidStylist, msgInvalidStylist)

		case errors.Is(err, createBooking.ErrBlocked):
			h.logger.Warn("POST /book - Blocked phone: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondForbidden(w, handlers.KindBlocked, msgBlocked)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /book - Slot taken: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, handlers.KindSlotTaken, msgSlotTaken)

		default:
			h.logger.Error("POST /book - Failed to create booking: date=%s, time=%s, error=%v", req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /book - Booking created successfully: id=%d, code=%s", result.ID, result.ConfirmationCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
