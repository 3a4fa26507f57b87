package timeoff

import (
	"context"
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
)

// TimeOffRepository интерфейс репозитория отгулов
type TimeOffRepository interface {
	Create(ctx context.Context, item *domain.TimeOff) (*domain.TimeOff, error)
	GetByTenant(ctx context.Context, tenantID string, from, to *time.Time) ([]*domain.TimeOff, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
