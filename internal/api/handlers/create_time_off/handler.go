package create_time_off

import (
	"errors"
	"net/http"
	"time"

	"github.com/agendaplus/booking-service/internal/api/handlers"
	"github.com/agendaplus/booking-service/internal/api/middleware"
	"github.com/agendaplus/booking-service/internal/domain"
	timeoffService "github.com/agendaplus/booking-service/internal/service/timeoff"
)

const (
	msgStaffOnly      = "доступно только сотрудникам"
	msgInvalidBody    = "некорректное тело запроса"
	msgInvalidTimeOff = "некорректные данные отгула"
)

// timeOffBody тело запроса на создание отгула
type timeOffBody struct {
	EmployeeID string    `json:"employeeId"`
	Start      time.Time `json:"start"` // ISO 8601
	End        time.Time `json:"end"`   // ISO 8601
	Reason     *string   `json:"reason,omitempty"`
}

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

// Handle POST /api/v1/time-off
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.TenantID(ctx)

	if !middleware.IsStaff(ctx) {
		h.logger.Warn("POST /time-off - Access denied for user=%s", middleware.UserID(ctx))
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	var body timeOffBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /time-off - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	created, err := h.service.Create(ctx, &domain.TimeOff{
		TenantID:   tenantID,
		EmployeeID: body.EmployeeID,
		StartTime:  body.Start,
		EndTime:    body.End,
		Reason:     body.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, timeoffService.ErrInvalidInput):
			h.logger.Warn("POST /time-off - Invalid time off data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeOff)

		default:
			h.logger.Error("POST /time-off - Failed to create time off: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /time-off - Time off created successfully: id=%s, employee=%s", created.ID, body.EmployeeID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
