package deactivate_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendaplus/booking-service/internal/api/handlers"
	"github.com/agendaplus/booking-service/internal/api/middleware"
	catalogService "github.com/agendaplus/booking-service/internal/service/catalog"
)

const (
	msgStaffOnly       = "доступно только сотрудникам"
	msgServiceNotFound = "услуга не найдена"
)

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

// Handle DELETE /api/v1/services/{serviceId}
// Услуга снимается с публикации, записи на неё сохраняются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serviceID := mux.Vars(r)["serviceId"]

	if !middleware.IsStaff(ctx) {
		h.logger.Warn("DELETE /services/{id} - Access denied for user=%s", middleware.UserID(ctx))
		handlers.RespondForbidden(w, msgStaffOnly)
		return
	}

	if err := h.catalog.Deactivate(ctx, middleware.TenantID(ctx), serviceID); err != nil {
		switch {
		case errors.Is(err, catalogService.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Service not found: id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("DELETE /services/{id} - Failed to deactivate service: id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deactivated successfully: id=%s", serviceID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
