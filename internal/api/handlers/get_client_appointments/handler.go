package get_client_appointments

import (
	"errors"
	"net/http"

	"github.com/agendaplus/booking-service/internal/api/handlers"
	"github.com/agendaplus/booking-service/internal/api/middleware"
	appointmentsService "github.com/agendaplus/booking-service/internal/service/appointments"
)

const (
	msgInvalidStatus = "некорректный статус записи"
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

// Handle GET /api/v1/me/appointments
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientID := middleware.UserID(ctx)

	var status *string
	if v := r.URL.Query().Get("status"); v != "" {
		status = &v
	}

	result, err := h.service.GetClientAppointments(ctx, middleware.TenantID(ctx), clientID, status)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /me/appointments - Invalid status: client=%s", clientID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /me/appointments - Failed to get appointments: client=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /me/appointments - Retrieved %d appointments for client=%s",
		len(result.Appointments), clientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
