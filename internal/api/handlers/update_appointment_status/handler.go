package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendaplus/booking-service/internal/api/handlers"
	"github.com/agendaplus/booking-service/internal/api/middleware"
	appointmentsService "github.com/agendaplus/booking-service/internal/service/appointments"
	"github.com/agendaplus/booking-service/internal/service/appointments/models"
)

const (
	msgStaffOnly           = "доступно только сотрудникам"
	msgInvalidBody         = "некорректное тело запроса"
	msgAppointmentNotFound = "запись не найдена"
	msgInvalidStatus       = "некорректный статус записи"
	msgInvalidTransition   = "недопустимый переход статуса"
)

// statusBody тело запроса на смену статуса
type statusBody struct {
	Status string `json:"status"`
}

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

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	appointmentID := mux.Vars(r)["appointmentId"]

	if !middleware.IsStaff(ctx) {
		h.logger.Warn("PATCH /appointments/{id}/status - Access denied for user=%s", middleware.UserID(ctx))
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	var body statusBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req := &models.UpdateStatusRequest{
		TenantID: middleware.TenantID(ctx),
		Status:   body.Status,
	}

	if err := h.service.UpdateStatus(ctx, appointmentID, req); err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid transition: id=%s, status=%s",
				appointmentID, body.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/status - Invalid status: id=%s, status=%s",
				appointmentID, body.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to update status: id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status updated successfully: id=%s, status=%s",
		appointmentID, body.Status)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"id": appointmentID, "status": body.Status})
}
