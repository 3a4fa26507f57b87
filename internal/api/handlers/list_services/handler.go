package list_services

import (
	"net/http"

	"github.com/agendaplus/booking-service/internal/api/handlers"
	"github.com/agendaplus/booking-service/internal/api/middleware"
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

// Handle GET /api/v1/services
// Активные услуги арендатора, отсортированные по цене
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID := middleware.TenantID(r.Context())

	services, err := h.catalog.GetActive(r.Context(), tenantID)
	if err != nil {
		h.logger.Error("GET /services - Failed to get services: tenant=%s, error=%v", tenantID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Retrieved %d services for tenant=%s", len(services), tenantID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}
