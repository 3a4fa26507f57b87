package get_available_slots

import (
	"context"
	"time"

	"github.com/agendaplus/booking-service/internal/slots"
)

// SlotEngineClient интерфейс клиента движка расчёта слотов
type SlotEngineClient interface {
	GetAvailableSlotsWithGracefulDegradation(ctx context.Context, tenantID string, date time.Time, employeeID *string) ([]slots.RawSlot, error)
}

// Cache байтовый кеш ответов движка
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
