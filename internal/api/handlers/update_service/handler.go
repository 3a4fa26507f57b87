package update_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendaplus/booking-service/internal/api/handlers"
	"github.com/agendaplus/booking-service/internal/api/middleware"
	"github.com/agendaplus/booking-service/internal/domain"
	catalogService "github.com/agendaplus/booking-service/internal/service/catalog"
)

const (
	msgStaffOnly       = "доступно только сотрудникам"
	msgInvalidBody     = "некорректное тело запроса"
	msgInvalidService  = "некорректные данные услуги"
	msgServiceNotFound = "услуга не найдена"
)

// serviceBody тело запроса на обновление услуги
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

// Handle PUT /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := middleware.TenantID(ctx)
	serviceID := mux.Vars(r)["serviceId"]

	if !middleware.IsStaff(ctx) {
		h.logger.Warn("PUT /services/{id} - Access denied for user=%s", middleware.UserID(ctx))
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	var body serviceBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	err := h.catalog.Update(ctx, &domain.Service{
		ID:              serviceID,
		TenantID:        tenantID,
		Name:            body.Name,
		DurationMinutes: body.DurationMinutes,
		Price:           body.Price,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("PUT /services/{id} - Service not found: id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, catalogService.ErrInvalidInput):
			h.logger.Warn("PUT /services/{id} - Invalid service data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)

		default:
			h.logger.Error("PUT /services/{id} - Failed to update service: id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated successfully: id=%s", serviceID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"id": serviceID})
}
