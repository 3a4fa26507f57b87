package delete_time_off

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendaplus/booking-service/internal/api/handlers"
	"github.com/agendaplus/booking-service/internal/api/middleware"
	timeoffService "github.com/agendaplus/booking-service/internal/service/timeoff"
)

const (
	msgStaffOnly       = "доступно только сотрудникам"
	msgTimeOffNotFound = "отгул не найден"
)

type Handler struct {
	service TimeOffService
	logger  Logger
}

func NewHandler(service TimeOffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/time-off/{timeOffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	timeOffID := mux.Vars(r)["timeOffId"]

	if !middleware.IsStaff(ctx) {
		h.logger.Warn("DELETE /time-off/{id} - Access denied for user=%s", middleware.UserID(ctx))
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	if err := h.service.Delete(ctx, middleware.TenantID(ctx), timeOffID); err != nil {
		switch {
		case errors.Is(err, timeoffService.ErrTimeOffNotFound):
			h.logger.Warn("DELETE /time-off/{id} - Time off not found: id=%s", timeOffID)
			handlers.RespondNotFound(w, msgTimeOffNotFound)

		default:
			h.logger.Error("DELETE /time-off/{id} - Failed to delete time off: id=%s, error=%v", timeOffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /time-off/{id} - Time off deleted successfully: id=%s", timeOffID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
