package move_appointment

import (
	"context"
	"time"

	"github.com/agendaplus/booking-service/internal/calendar"
	"github.com/agendaplus/booking-service/internal/service/appointments/models"
)

// AppointmentService сервис записей, выполняющий перенос в БД
type AppointmentService interface {
	Reschedule(ctx context.Context, id string, req *models.RescheduleRequest) error
}

// SessionRegistry реестр календарных сессий
type SessionRegistry interface {
	Get(id string) (*calendar.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Request модель запроса на перенос события календаря
type Request struct {
	SessionID string    // ID сессии календаря
	TenantID  string    // ID арендатора
	EventID   string    // ID события (совпадает с ID записи)
	Start     time.Time // Новое начало
	End       time.Time // Новый конец
}

// Response модель ответа после переноса
type Response struct {
	EventID string    // ID события
	Start   time.Time // Подтверждённое начало
	End     time.Time // Подтверждённый конец
}
