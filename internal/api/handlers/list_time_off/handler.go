package list_time_off

import (
	"net/http"
	"time"

	"github.com/agendaplus/booking-service/internal/api/handlers"
	"github.com/agendaplus/booking-service/internal/api/middleware"
	"github.com/agendaplus/booking-service/internal/domain"
)

const (
	msgStaffOnly   = "доступно только сотрудникам"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/time-off
// Query params: from, to (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.TenantID(ctx)

	if !middleware.IsStaff(ctx) {
		h.logger.Warn("GET /time-off - Access denied for user=%s", middleware.UserID(ctx))
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	var from, to *time.Time
	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		from = &parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		// Конец диапазона - начало следующего дня
		parsed = parsed.AddDate(0, 0, 1)
		to = &parsed
	}

	items, err := h.service.GetByTenant(ctx, tenantID, from, to)
	if err != nil {
		h.logger.Error("GET /time-off - Failed to get time off: tenant=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /time-off - Retrieved %d time off entries for tenant=%s", len(items), tenantID)
	handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{"timeOff": items})
}
