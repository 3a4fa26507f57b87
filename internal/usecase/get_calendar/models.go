package get_calendar

import (
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
)

// Request модель запроса календаря
type Request struct {
	TenantID    string    // ID арендатора
	EmployeeID  *string   // ID сотрудника (опционально, nil = все сотрудники)
	From        time.Time // Начало видимого диапазона
	To          time.Time // Конец видимого диапазона
	Granularity string    // "month", "week" или "day"

	// Рабочие часы для слоя доступности, zero value = 09:00-17:00
	BusinessHours domain.BusinessHours
}

// Response модель ответа с календарём
type Response struct {
	SessionID string                 // ID сессии для последующих мутаций
	Events    []domain.CalendarEvent // Записи, отгулы и слой доступности
}
