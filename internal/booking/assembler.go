package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
)

// Assemble собирает запрос на создание записи из выбранных клиентом даты,
// времени ("HH:MM") и услуги.
//
// start = date в timeOfDay, end = start + длительность услуги. Арифметика
// ведётся на инстантах, поэтому переход через полночь корректен:
// 23:45 + 30 мин = 00:15 следующего дня. Компонент времени в date
// игнорируется, зона даты сохраняется.
//
// Идентификатор тенанта передаётся явно - никаких констант тенанта в логике
// сборки. Пересечения с другими записями здесь не проверяются: авторитет -
// бэкенд, только он видит конкурентные бронирования.
//
// Запись создаётся неназначенной (employee = nil) со статусом pending.
func Assemble(tenantID, clientID string, svc domain.Service, date time.Time, timeOfDay string) (*domain.AppointmentRequest, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant id is required", ErrInvalidInput)
	}
	if clientID == "" {
		return nil, fmt.Errorf("%w: client id is required", ErrInvalidInput)
	}
	if svc.ID == "" {
		return nil, fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	// Берём сырую числовую длительность, а не форматированную подпись
	if svc.DurationMinutes < domain.MinServiceDurationMinutes {
		return nil, fmt.Errorf("%w: service duration must be positive, got %d", ErrInvalidInput, svc.DurationMinutes)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	hour, minute, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return nil, err
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
	end := start.Add(svc.Duration())

	return &domain.AppointmentRequest{
		TenantID:   tenantID,
		ClientID:   clientID,
		ServiceID:  svc.ID,
		EmployeeID: nil,
		StartTime:  start,
		EndTime:    end,
		Status:     domain.StatusPending,
	}, nil
}

// ParseTimeOfDay разбирает каноническую строку времени "HH:MM" в пару
// час/минута. Секунды ("HH:MM:SS") допускаются и отбрасываются.
func ParseTimeOfDay(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("%w: cannot parse time of day %q", ErrInvalidInput, s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: cannot parse hour in %q", ErrInvalidInput, s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: cannot parse minute in %q", ErrInvalidInput, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: time of day %q out of range", ErrInvalidInput, s)
	}

	return hour, minute, nil
}
