package moderate_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	moderateBooking "github.com/m04kA/SMC-SalonBooking/internal/usecase/moderate_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAction      = "некорректное действие, ожидается confirm или reject"
	msgNotFound           = "заявка не найдена"
	msgAlreadyFinalized   = "заявка уже обработана"
)

type Handler struct {
	useCase ModerateBookingUseCase
	logger  Logger
}

func NewHandler(useCase ModerateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/action
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ModerateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/action - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.KindInvalidRequest, msgInvalidRequestBody)
		return
	}

	admin, _ := middleware.GetAdmin(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, moderateBooking.ErrInvalidAction):
			h.logger.Warn("POST /admin/action - Invalid action: %q", req.Action)
			handlers.RespondBadRequest(w, handlers.KindInvalidAction, msgInvalidAction)

		case errors.Is(err, moderateBooking.ErrNotFound):
			h.logger.Warn("POST /admin/action - Appointment not found: id=%d", req.ID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, moderateBooking.ErrAlreadyFinalized):
			h.logger.Warn("POST /admin/action - Already finalized: id=%d, action=%s", req.ID, req.Action)
			handlers.RespondConflict(w, handlers.KindAlreadyFinalized, msgAlreadyFinalized)

		default:
			h.logger.Error("POST /admin/action - Failed to moderate: id=%d, action=%s, error=%v", req.ID, req.Action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/action - Appointment moderated: id=%d, status=%s, admin=%s", req.ID, result.Status, admin)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
