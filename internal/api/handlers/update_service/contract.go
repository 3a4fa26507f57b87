package update_service

import (
	"context"

	"github.com/agendaplus/booking-service/internal/domain"
)

type CatalogService interface {
	Update(ctx context.Context, svc *domain.Service) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
