package move_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaplus/booking-service/internal/calendar"
	"github.com/agendaplus/booking-service/internal/domain"
	appointmentsService "github.com/agendaplus/booking-service/internal/service/appointments"
	"github.com/agendaplus/booking-service/internal/service/appointments/models"
)

type stubAppointments struct {
	err    error
	lastID string
}

func (s *stubAppointments) Reschedule(_ context.Context, id string, _ *models.RescheduleRequest) error {
	s.lastID = id
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	origStart = time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	newStart  = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
)

// openSession открывает сессию с одной записью и одним плейсхолдером доступности
func openSession(t *testing.T, registry *calendar.Registry) string {
	t.Helper()

	sessionID, session := registry.Open()
	require.NoError(t, session.BeginLoad())
	require.NoError(t, session.CompleteLoad([]domain.CalendarEvent{
		{
			ID:    "appt-1",
			Title: "Haircut - Maria Lopez",
			Start: origStart,
			End:   origStart.Add(30 * time.Minute),
			Kind:  domain.EventKindAppointment,
		},
		{
			ID:     "work-e1-2025-06-10",
			Start:  origStart,
			End:    origStart,
			AllDay: true,
			Kind:   domain.EventKindAvailability,
		},
	}))
	return sessionID
}

func eventByID(t *testing.T, session *calendar.Session, id string) domain.CalendarEvent {
	t.Helper()
	for _, ev := range session.Events() {
		if ev.ID == id {
			return ev
		}
	}
	t.Fatalf("event %s not found in session", id)
	return domain.CalendarEvent{}
}

func validMoveRequest(sessionID string) *Request {
	return &Request{
		SessionID: sessionID,
		TenantID:  "tenant-1",
		EventID:   "appt-1",
		Start:     newStart,
		End:       newStart.Add(30 * time.Minute),
	}
}

func TestExecute_MoveConfirmed(t *testing.T) {
	registry := calendar.NewRegistry()
	sessionID := openSession(t, registry)
	svc := &stubAppointments{}
	uc := NewUseCase(svc, registry, nopLogger{})

	resp, err := uc.Execute(context.Background(), validMoveRequest(sessionID))
	require.NoError(t, err)

	assert.Equal(t, "appt-1", resp.EventID)
	assert.Equal(t, "appt-1", svc.lastID)

	// Событие в сессии переехало на новый интервал
	session, err := registry.Get(sessionID)
	require.NoError(t, err)
	moved := eventByID(t, session, "appt-1")
	assert.Equal(t, newStart, moved.Start)

	// Мутация зафиксирована - следующий перенос разрешён
	_, err = session.ApplyMove("appt-1", origStart, origStart.Add(30*time.Minute))
	assert.NoError(t, err)
}

func TestExecute_RollbackOnBusyInterval(t *testing.T) {
	registry := calendar.NewRegistry()
	sessionID := openSession(t, registry)
	svc := &stubAppointments{err: appointmentsService.ErrIntervalBusy}
	uc := NewUseCase(svc, registry, nopLogger{})

	_, err := uc.Execute(context.Background(), validMoveRequest(sessionID))
	assert.ErrorIs(t, err, ErrIntervalBusy)

	// Сессия откатилась к снимку - событие на прежнем месте
	session, getErr := registry.Get(sessionID)
	require.NoError(t, getErr)
	ev := eventByID(t, session, "appt-1")
	assert.Equal(t, origStart, ev.Start)

	// После отката сессия снова принимает мутации
	_, err = session.ApplyMove("appt-1", newStart, newStart.Add(time.Hour))
	assert.NoError(t, err)
}

func TestExecute_SessionNotFound(t *testing.T) {
	registry := calendar.NewRegistry()
	uc := NewUseCase(&stubAppointments{}, registry, nopLogger{})

	_, err := uc.Execute(context.Background(), validMoveRequest("missing-session"))
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_EventNotFound(t *testing.T) {
	registry := calendar.NewRegistry()
	sessionID := openSession(t, registry)
	uc := NewUseCase(&stubAppointments{}, registry, nopLogger{})

	req := validMoveRequest(sessionID)
	req.EventID = "missing-event"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestExecute_PlaceholderNotMovable(t *testing.T) {
	registry := calendar.NewRegistry()
	sessionID := openSession(t, registry)
	svc := &stubAppointments{}
	uc := NewUseCase(svc, registry, nopLogger{})

	req := validMoveRequest(sessionID)
	req.EventID = "work-e1-2025-06-10"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEventNotMovable)
	assert.Empty(t, svc.lastID)
}

func TestExecute_NotFoundAppointmentRollsBack(t *testing.T) {
	registry := calendar.NewRegistry()
	sessionID := openSession(t, registry)
	svc := &stubAppointments{err: appointmentsService.ErrAppointmentNotFound}
	uc := NewUseCase(svc, registry, nopLogger{})

	_, err := uc.Execute(context.Background(), validMoveRequest(sessionID))
	assert.ErrorIs(t, err, ErrEventNotFound)

	session, getErr := registry.Get(sessionID)
	require.NoError(t, getErr)
	ev := eventByID(t, session, "appt-1")
	assert.Equal(t, origStart, ev.Start)
}

func TestExecute_InvalidInterval(t *testing.T) {
	registry := calendar.NewRegistry()
	sessionID := openSession(t, registry)
	uc := NewUseCase(&stubAppointments{}, registry, nopLogger{})

	req := validMoveRequest(sessionID)
	req.End = req.Start

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
