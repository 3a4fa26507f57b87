package get_calendar

import (
	"errors"
	"net/http"

	"github.com/agendaplus/booking-service/internal/api/handlers"
	"github.com/agendaplus/booking-service/internal/api/middleware"
	getCalendar "github.com/agendaplus/booking-service/internal/usecase/get_calendar"
)

const (
	msgStaffOnly          = "доступно только сотрудникам"
	msgInvalidRange       = "некорректный диапазон дат, ожидается from и to в формате YYYY-MM-DD"
	msgInvalidGranularity = "некорректная гранулярность, ожидается month, week или day"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: from, to (required, YYYY-MM-DD), granularity (required), employeeId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.TenantID(ctx)

	if !middleware.IsStaff(ctx) {
		h.logger.Warn("GET /calendar - Access denied for user=%s", middleware.UserID(ctx))
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	useCaseReq, err := ToUseCaseRequest(tenantID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.useCase.Execute(ctx, useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidRange):
			h.logger.Warn("GET /calendar - Invalid range for tenant=%s", tenantID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getCalendar.ErrInvalidGranularity):
			h.logger.Warn("GET /calendar - Invalid granularity: %s", useCaseReq.Granularity)
			handlers.RespondBadRequest(w, msgInvalidGranularity)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar - Calendar built successfully: tenant=%s, session=%s, events=%d",
		tenantID, result.SessionID, len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
