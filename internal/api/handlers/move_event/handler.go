package move_event

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendaplus/booking-service/internal/api/handlers"
	"github.com/agendaplus/booking-service/internal/api/middleware"
	moveAppointment "github.com/agendaplus/booking-service/internal/usecase/move_appointment"
)

const (
	msgStaffOnly       = "доступно только сотрудникам"
	msgInvalidBody     = "некорректное тело запроса"
	msgSessionNotFound = "сессия календаря не найдена или истекла"
	msgEventNotFound   = "событие не найдено"
	msgEventNotMovable = "это событие нельзя переносить"
	msgMutationPending = "предыдущий перенос ещё не завершён"
	msgIntervalBusy    = "новый интервал пересекается с другой записью"
	msgInvalidInterval = "некорректный интервал"
)

type Handler struct {
	useCase MoveAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase MoveAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/calendar/{sessionId}/events/{eventId}/move
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	eventID := vars["eventId"]

	if !middleware.IsStaff(ctx) {
		h.logger.Warn("PATCH /calendar/{sid}/events/{eid}/move - Access denied for user=%s", middleware.UserID(ctx))
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	var body MoveEventRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PATCH /calendar/{sid}/events/{eid}/move - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq := &moveAppointment.Request{
		SessionID: sessionID,
		TenantID:  middleware.TenantID(ctx),
		EventID:   eventID,
		Start:     body.Start,
		End:       body.End,
	}

	result, err := h.useCase.Execute(ctx, useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, moveAppointment.ErrSessionNotFound):
			h.logger.Warn("PATCH /calendar/{sid}/events/{eid}/move - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, moveAppointment.ErrEventNotFound):
			h.logger.Warn("PATCH /calendar/{sid}/events/{eid}/move - Event not found: event=%s", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, moveAppointment.ErrEventNotMovable):
			h.logger.Warn("PATCH /calendar/{sid}/events/{eid}/move - Event not movable: event=%s", eventID)
			handlers.RespondBadRequest(w, msgEventNotMovable)

		case errors.Is(err, moveAppointment.ErrMutationPending):
			h.logger.Warn("PATCH /calendar/{sid}/events/{eid}/move - Mutation pending: session=%s", sessionID)
			handlers.RespondConflict(w, msgMutationPending)

		case errors.Is(err, moveAppointment.ErrIntervalBusy):
			h.logger.Warn("PATCH /calendar/{sid}/events/{eid}/move - Interval busy: event=%s", eventID)
			handlers.RespondConflict(w, msgIntervalBusy)

		case errors.Is(err, moveAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /calendar/{sid}/events/{eid}/move - Invalid interval: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("PATCH /calendar/{sid}/events/{eid}/move - Failed to move event: event=%s, error=%v",
				eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /calendar/{sid}/events/{eid}/move - Event moved successfully: event=%s", eventID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
