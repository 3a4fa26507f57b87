package list_services

import (
	"context"

	"github.com/agendaplus/booking-service/internal/domain"
)

type CatalogService interface {
	GetActive(ctx context.Context, tenantID string) ([]*domain.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
