package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaplus/booking-service/internal/calendar"
	"github.com/agendaplus/booking-service/internal/domain"
	"github.com/agendaplus/booking-service/pkg/ptr"
)

type stubAppointmentRepo struct {
	apps   []*domain.Appointment
	filter domain.AppointmentsFilter
}

func (r *stubAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	r.filter = filter
	return r.apps, nil
}

type stubTimeOffRepo struct {
	items []*domain.TimeOff
}

func (r *stubTimeOffRepo) GetByTenant(context.Context, string, *time.Time, *time.Time) ([]*domain.TimeOff, error) {
	return r.items, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Понедельник и вторник, чтобы слой доступности был предсказуем
var (
	rangeFrom = time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	rangeTo   = time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC)
)

func sampleData() (*stubAppointmentRepo, *stubTimeOffRepo) {
	start := rangeFrom.Add(10 * time.Hour)
	appRepo := &stubAppointmentRepo{
		apps: []*domain.Appointment{
			{
				ID:          "appt-1",
				TenantID:    "tenant-1",
				ClientID:    "client-1",
				StartTime:   start,
				EndTime:     start.Add(30 * time.Minute),
				Status:      domain.StatusConfirmed,
				ClientName:  ptr.Ptr("Maria Lopez"),
				ServiceName: ptr.Ptr("Haircut"),
			},
		},
	}
	timeOffRepo := &stubTimeOffRepo{
		items: []*domain.TimeOff{
			{
				ID:         "to-1",
				TenantID:   "tenant-1",
				EmployeeID: "emp-1",
				StartTime:  rangeFrom.Add(14 * time.Hour),
				EndTime:    rangeFrom.Add(18 * time.Hour),
				Reason:     ptr.Ptr("Vacation"),
			},
		},
	}
	return appRepo, timeOffRepo
}

func countKind(events []domain.CalendarEvent, kind domain.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func newTestUseCase(appRepo AppointmentRepository, timeOffRepo TimeOffRepository, registry *calendar.Registry) *UseCase {
	return NewUseCase(appRepo, timeOffRepo, registry, domain.BusinessHours{}, nopLogger{})
}

func TestExecute_BuildsLayersAndOpensSession(t *testing.T) {
	appRepo, timeOffRepo := sampleData()
	registry := calendar.NewRegistry()
	uc := newTestUseCase(appRepo, timeOffRepo, registry)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:    "tenant-1",
		From:        rangeFrom,
		To:          rangeTo,
		Granularity: "week",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countKind(resp.Events, domain.EventKindAppointment))
	assert.Equal(t, 1, countKind(resp.Events, domain.EventKindTimeOff))
	// Без фильтра по сотруднику слой доступности не строится
	assert.Equal(t, 0, countKind(resp.Events, domain.EventKindAvailability))

	// Сессия зарегистрирована и загружена теми же событиями
	session, err := registry.Get(resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, calendar.StateReady, session.State())
	assert.Len(t, session.Events(), len(resp.Events))
}

func TestExecute_AvailabilityLayerForEmployee(t *testing.T) {
	appRepo, timeOffRepo := sampleData()
	uc := newTestUseCase(appRepo, timeOffRepo, calendar.NewRegistry())

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID:    "tenant-1",
		EmployeeID:  ptr.Ptr("emp-1"),
		From:        rangeFrom,
		To:          rangeTo,
		Granularity: "week",
	})
	require.NoError(t, err)

	// По плейсхолдеру на каждый будний день диапазона
	assert.Equal(t, 2, countKind(resp.Events, domain.EventKindAvailability))

	// Фильтр по сотруднику дошёл до репозитория
	require.NotNil(t, appRepo.filter.EmployeeID)
	assert.Equal(t, "emp-1", *appRepo.filter.EmployeeID)
}

func TestExecute_InvalidRange(t *testing.T) {
	appRepo, timeOffRepo := sampleData()
	uc := newTestUseCase(appRepo, timeOffRepo, calendar.NewRegistry())

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:    "tenant-1",
		From:        rangeTo,
		To:          rangeFrom,
		Granularity: "week",
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExecute_InvalidGranularity(t *testing.T) {
	appRepo, timeOffRepo := sampleData()
	uc := newTestUseCase(appRepo, timeOffRepo, calendar.NewRegistry())

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:    "tenant-1",
		From:        rangeFrom,
		To:          rangeTo,
		Granularity: "year",
	})
	assert.ErrorIs(t, err, ErrInvalidGranularity)
}

func TestExecute_EachCallOpensNewSession(t *testing.T) {
	appRepo, timeOffRepo := sampleData()
	registry := calendar.NewRegistry()
	uc := newTestUseCase(appRepo, timeOffRepo, registry)

	req := &Request{
		TenantID:    "tenant-1",
		From:        rangeFrom,
		To:          rangeTo,
		Granularity: "day",
	}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
	assert.Equal(t, 2, registry.Len())
}
