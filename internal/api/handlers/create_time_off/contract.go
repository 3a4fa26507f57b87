package create_time_off

import (
	"context"

	"github.com/agendaplus/booking-service/internal/domain"
)

type TimeOffService interface {
	Create(ctx context.Context, item *domain.TimeOff) (*domain.TimeOff, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
