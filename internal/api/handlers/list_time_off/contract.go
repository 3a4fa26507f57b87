package list_time_off

import (
	"context"
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
)

type TimeOffService interface {
	GetByTenant(ctx context.Context, tenantID string, from, to *time.Time) ([]*domain.TimeOff, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
