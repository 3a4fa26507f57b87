package cancel_appointment

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
	msgAppointmentNotFound = "запись не найдена"
	msgAccessDenied        = "доступ запрещён"
	msgCannotCancel        = "запись нельзя отменить в текущем статусе"
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

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	appointmentID := mux.Vars(r)["appointmentId"]

	req := &models.CancelAppointmentRequest{
		TenantID: middleware.TenantID(ctx),
		ClientID: middleware.UserID(ctx),
	}

	if err := h.service.Cancel(ctx, appointmentID, req, middleware.IsStaff(ctx)); err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment not found: id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Access denied: id=%s, user=%s",
				appointmentID, req.ClientID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointmentsService.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Cannot cancel: id=%s", appointmentID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel: id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled successfully: id=%s", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"id": appointmentID, "status": "cancelled"})
}
