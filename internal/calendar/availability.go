package calendar

import (
	"fmt"
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
	"github.com/agendaplus/booking-service/internal/booking"
)

// availabilityTitle заголовок timed-плейсхолдера в недельной/дневной сетке
const availabilityTitle = "Available"

// AvailabilityLayer генерирует синтетический слой "рабочее время" для
// календарной сетки: по одному плейсхолдеру на каждый будний день диапазона.
//
// В месячной сетке плейсхолдер - all-day событие без заголовка (рендерится
// фоновой подложкой дня). В недельной/дневной - событие с рабочими часами
// (по умолчанию 09:00-17:00) и заголовком "Available". Выходные дни
// плейсхолдеров не получают.
//
// Слой чисто визуальный: события не имеют идентичности в хранилище и не
// должны отправляться обратно на бэкенд.
func AvailabilityLayer(employeeID string, viewRange domain.DateRange, granularity domain.Granularity, hours domain.BusinessHours) ([]domain.CalendarEvent, error) {
	if !viewRange.IsValid() {
		return nil, fmt.Errorf("%w: view range [%s, %s]", ErrInvalidInterval,
			viewRange.From.Format(domain.DateFormat), viewRange.To.Format(domain.DateFormat))
	}

	startHour, startMin, err := booking.ParseTimeOfDay(hours.Start.String())
	if err != nil {
		return nil, err
	}
	endHour, endMin, err := booking.ParseTimeOfDay(hours.End.String())
	if err != nil {
		return nil, err
	}

	events := make([]domain.CalendarEvent, 0)

	from := dayStart(viewRange.From)
	to := dayStart(viewRange.To)

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if isWeekend(day) {
			continue
		}

		id := fmt.Sprintf("work-%s-%s", employeeID, day.Format(domain.DateFormat))

		if granularity == domain.GranularityMonth {
			// Месячная сетка: подложка на весь день, без текста
			events = append(events, domain.CalendarEvent{
				ID:     id,
				Title:  "",
				Start:  day,
				End:    day,
				AllDay: true,
				Kind:   domain.EventKindAvailability,
				Resource: domain.EventResource{
					EmployeeID: employeeID,
					Status:     "available",
				},
			})
			continue
		}

		events = append(events, domain.CalendarEvent{
			ID:     id,
			Title:  availabilityTitle,
			Start:  time.Date(day.Year(), day.Month(), day.Day(), startHour, startMin, 0, 0, day.Location()),
			End:    time.Date(day.Year(), day.Month(), day.Day(), endHour, endMin, 0, 0, day.Location()),
			AllDay: false,
			Kind:   domain.EventKindAvailability,
			Resource: domain.EventResource{
				EmployeeID: employeeID,
				Status:     "available",
			},
		})
	}

	return events, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
