package get_calendar

import (
	"context"
	"time"

	"github.com/agendaplus/booking-service/internal/calendar"
	"github.com/agendaplus/booking-service/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// TimeOffRepository интерфейс репозитория отгулов
type TimeOffRepository interface {
	GetByTenant(ctx context.Context, tenantID string, from, to *time.Time) ([]*domain.TimeOff, error)
}

// SessionRegistry реестр календарных сессий
type SessionRegistry interface {
	Open() (string, *calendar.Session)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
