package calendar

import (
	"fmt"
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
	"github.com/agendaplus/booking-service/pkg/ptr"
)

// Проекция хранимых записей в единое представление календарных событий.
// Каждая запись отображается в ровно одно событие, идентификаторы
// сохраняются 1:1. Классификация (kind) определяется типом источника,
// а не содержимым записи.

// AppointmentEvents проецирует записи о приёмах в календарные события.
//
// Отсутствующие связанные данные (удалённая услуга, неназначенный сотрудник,
// пропавшее имя клиента) деградируют до фиксированных заглушек - заголовок
// всегда непустая человекочитаемая строка "{услуга} - {клиент}". Если конец
// интервала отсутствует, берётся start + 1h: рендеру всегда нужен валидный
// интервал.
func AppointmentEvents(appointments []*domain.Appointment) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, 0, len(appointments))

	for _, app := range appointments {
		if app == nil {
			continue
		}

		clientName := ptr.Deref(app.ClientName, domain.PlaceholderClientName)
		serviceName := ptr.Deref(app.ServiceName, domain.PlaceholderServiceName)

		status := string(app.Status)
		if status == "" {
			status = string(domain.StatusPending)
		}

		events = append(events, domain.CalendarEvent{
			ID:     app.ID,
			Title:  fmt.Sprintf("%s - %s", serviceName, clientName),
			Start:  app.StartTime,
			End:    defaultEnd(app.StartTime, app.EndTime),
			AllDay: false,
			Kind:   domain.EventKindAppointment,
			Resource: domain.EventResource{
				ClientName:  clientName,
				ServiceName: serviceName,
				Status:      status,
			},
		})
	}

	return events
}

// TimeOffEvents проецирует блокировки сотрудников в календарные события.
// Заголовок: "🚫 {причина}", причина по умолчанию - фиксированная заглушка.
func TimeOffEvents(timeOffs []*domain.TimeOff) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, 0, len(timeOffs))

	for _, item := range timeOffs {
		if item == nil {
			continue
		}

		reason := ptr.Deref(item.Reason, domain.PlaceholderReason)
		if reason == "" {
			reason = domain.PlaceholderReason
		}

		events = append(events, domain.CalendarEvent{
			ID:     item.ID,
			Title:  fmt.Sprintf("🚫 %s", reason),
			Start:  item.StartTime,
			End:    defaultEnd(item.StartTime, item.EndTime),
			AllDay: false,
			Kind:   domain.EventKindTimeOff,
			Resource: domain.EventResource{
				EmployeeID:   item.EmployeeID,
				EmployeeName: ptr.Deref(item.EmployeeName, domain.PlaceholderEmployeeName),
				Reason:       reason,
			},
		})
	}

	return events
}

// defaultEnd возвращает end, если он задан и позже start, иначе start + 1h
func defaultEnd(start, end time.Time) time.Time {
	if end.IsZero() || !end.After(start) {
		return start.Add(domain.DefaultEventDuration)
	}
	return end
}
