package create_service

import (
	"errors"
	"net/http"

	"github.com/agendaplus/booking-service/internal/api/handlers"
	"github.com/agendaplus/booking-service/internal/api/middleware"
	"github.com/agendaplus/booking-service/internal/domain"
	catalogService "github.com/agendaplus/booking-service/internal/service/catalog"
)

const (
	msgStaffOnly      = "доступно только сотрудникам"
	msgInvalidBody    = "некорректное тело запроса"
	msgInvalidService = "некорректные данные услуги"
)

// serviceBody тело запроса на создание услуги
type serviceBody struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

type Handler struct {
	catalog CatalogService
	logger  Logger
}

func NewHandler(catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.TenantID(ctx)

	if !middleware.IsStaff(ctx) {
		h.logger.Warn("POST /services - Access denied for user=%s", middleware.UserID(ctx))
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	var body serviceBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /services - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	created, err := h.catalog.Create(ctx, &domain.Service{
		TenantID:        tenantID,
		Name:            body.Name,
		DurationMinutes: body.DurationMinutes,
		Price:           body.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid service data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)

		default:
			h.logger.Error("POST /services - Failed to create service: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created successfully: id=%s, tenant=%s", created.ID, tenantID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
