package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaplus/booking-service/internal/domain"
	"github.com/agendaplus/booking-service/pkg/ptr"
)

func TestAppointmentEvents_FullRecord(t *testing.T) {
	start := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	apps := []*domain.Appointment{{
		ID:          "a1",
		StartTime:   start,
		EndTime:     end,
		Status:      domain.StatusConfirmed,
		ClientName:  ptr.Ptr("Maria Lopez"),
		ServiceName: ptr.Ptr("Haircut"),
	}}

	events := AppointmentEvents(apps)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, "a1", ev.ID)
	assert.Equal(t, "Haircut - Maria Lopez", ev.Title)
	assert.Equal(t, start, ev.Start)
	assert.Equal(t, end, ev.End)
	assert.False(t, ev.AllDay)
	assert.Equal(t, domain.EventKindAppointment, ev.Kind)
	assert.Equal(t, "Maria Lopez", ev.Resource.ClientName)
	assert.Equal(t, "Haircut", ev.Resource.ServiceName)
	assert.Equal(t, "confirmed", ev.Resource.Status)
}

func TestAppointmentEvents_MissingJoinsDegradeToPlaceholders(t *testing.T) {
	start := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

	// Удалённая услуга, пропавший клиент, отсутствующий конец интервала
	apps := []*domain.Appointment{{
		ID:        "a1",
		StartTime: start,
	}}

	events := AppointmentEvents(apps)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, "General service - Unknown client", ev.Title)
	assert.Contains(t, ev.Title, domain.PlaceholderClientName)
	assert.Contains(t, ev.Title, domain.PlaceholderServiceName)
	// end = start + 1h, никогда не нулевой
	assert.Equal(t, start.Add(time.Hour), ev.End)
	assert.Equal(t, "pending", ev.Resource.Status)
}

func TestAppointmentEvents_IdentityPreserved(t *testing.T) {
	start := time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)

	apps := make([]*domain.Appointment, 0, 7)
	ids := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7"}
	for i, id := range ids {
		apps = append(apps, &domain.Appointment{
			ID:        id,
			StartTime: start.Add(time.Duration(i) * time.Hour),
			EndTime:   start.Add(time.Duration(i)*time.Hour + 30*time.Minute),
			Status:    domain.StatusPending,
		})
	}

	events := AppointmentEvents(apps)
	require.Len(t, events, len(ids))
	for i, ev := range events {
		assert.Equal(t, ids[i], ev.ID)
	}
}

func TestTimeOffEvents(t *testing.T) {
	start := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)

	items := []*domain.TimeOff{
		{
			ID:           "t1",
			EmployeeID:   "e1",
			StartTime:    start,
			EndTime:      end,
			Reason:       ptr.Ptr("Vacation"),
			EmployeeName: ptr.Ptr("Ana Ruiz"),
		},
		{
			ID:         "t2",
			EmployeeID: "e2",
			StartTime:  start,
			// причина и конец не заданы
		},
	}

	events := TimeOffEvents(items)
	require.Len(t, events, 2)

	assert.Equal(t, "🚫 Vacation", events[0].Title)
	assert.Equal(t, domain.EventKindTimeOff, events[0].Kind)
	assert.Equal(t, "Ana Ruiz", events[0].Resource.EmployeeName)
	assert.Equal(t, end, events[0].End)

	assert.Equal(t, "🚫 "+domain.PlaceholderReason, events[1].Title)
	assert.Equal(t, domain.PlaceholderEmployeeName, events[1].Resource.EmployeeName)
	assert.Equal(t, start.Add(time.Hour), events[1].End)
}

func TestAvailabilityLayer_WeekSkipsWeekend(t *testing.T) {
	// Пн 2025-01-20 ... Вс 2025-01-26
	viewRange := domain.DateRange{
		From: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC),
	}

	events, err := AvailabilityLayer("e1", viewRange, domain.GranularityWeek, domain.DefaultBusinessHours())
	require.NoError(t, err)

	// 5 будних из 7 дней
	require.Len(t, events, 5)
	for i, ev := range events {
		day := viewRange.From.AddDate(0, 0, i)
		assert.Equal(t, "Available", ev.Title)
		assert.False(t, ev.AllDay)
		assert.Equal(t, domain.EventKindAvailability, ev.Kind)
		assert.True(t, ev.IsPlaceholder())
		assert.Equal(t, time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, time.UTC), ev.Start)
		assert.Equal(t, time.Date(day.Year(), day.Month(), day.Day(), 17, 0, 0, 0, time.UTC), ev.End)
	}
}

func TestAvailabilityLayer_MonthAllDayUntitled(t *testing.T) {
	viewRange := domain.DateRange{
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	events, err := AvailabilityLayer("e1", viewRange, domain.GranularityMonth, domain.DefaultBusinessHours())
	require.NoError(t, err)

	// Январь 2025: 23 будних дня
	require.Len(t, events, 23)
	for _, ev := range events {
		assert.Empty(t, ev.Title)
		assert.True(t, ev.AllDay)
		assert.Equal(t, ev.Start, ev.End)
		assert.Equal(t, domain.EventKindAvailability, ev.Kind)
	}
}

func TestAvailabilityLayer_CustomHours(t *testing.T) {
	viewRange := domain.DateRange{
		From: time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC), // вторник
		To:   time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC),
	}
	hours := domain.BusinessHours{Start: "08:30", End: "14:00"}

	events, err := AvailabilityLayer("e1", viewRange, domain.GranularityDay, hours)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, time.Date(2025, 1, 21, 8, 30, 0, 0, time.UTC), events[0].Start)
	assert.Equal(t, time.Date(2025, 1, 21, 14, 0, 0, 0, time.UTC), events[0].End)
}

func TestAvailabilityLayer_InvalidRange(t *testing.T) {
	viewRange := domain.DateRange{
		From: time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
	}

	_, err := AvailabilityLayer("e1", viewRange, domain.GranularityDay, domain.DefaultBusinessHours())
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
