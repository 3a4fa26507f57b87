package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaplus/booking-service/internal/domain"
	appointmentRepo "github.com/agendaplus/booking-service/internal/infra/storage/appointment"
	"github.com/agendaplus/booking-service/internal/service/appointments/models"
)

type stubRepo struct {
	byID          map[string]*domain.Appointment
	withFilter    []*domain.Appointment
	updatedStatus *domain.AppointmentStatus
	movedTo       *time.Time
}

func (r *stubRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	app, ok := r.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return app, nil
}

func (r *stubRepo) GetByClientID(_ context.Context, _, clientID string, _ *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, app := range r.byID {
		if app.ClientID == clientID {
			result = append(result, app)
		}
	}
	return result, nil
}

func (r *stubRepo) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return r.withFilter, nil
}

func (r *stubRepo) UpdateInterval(_ context.Context, id string, start, _ time.Time) error {
	if _, ok := r.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	r.movedTo = &start
	return nil
}

func (r *stubRepo) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	if _, ok := r.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	r.updatedStatus = &status
	return nil
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleAppointment(status domain.AppointmentStatus) *domain.Appointment {
	start := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:        "appt-1",
		TenantID:  "tenant-1",
		ClientID:  "client-1",
		ServiceID: "svc-1",
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Status:    status,
	}
}

func newTestService(repo *stubRepo) *Service {
	return NewService(repo, passthroughTx{}, nopLogger{})
}

func TestGetByID_AccessControl(t *testing.T) {
	repo := &stubRepo{byID: map[string]*domain.Appointment{
		"appt-1": sampleAppointment(domain.StatusConfirmed),
	}}
	svc := newTestService(repo)
	ctx := context.Background()

	// Владелец видит свою запись
	resp, err := svc.GetByID(ctx, "tenant-1", "appt-1", "client-1", false)
	require.NoError(t, err)
	assert.Equal(t, "appt-1", resp.ID)

	// Чужой клиент не видит
	_, err = svc.GetByID(ctx, "tenant-1", "appt-1", "client-2", false)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Сотрудник видит любую запись арендатора
	_, err = svc.GetByID(ctx, "tenant-1", "appt-1", "staff-1", true)
	assert.NoError(t, err)

	// Чужой арендатор получает not found, не forbidden
	_, err = svc.GetByID(ctx, "tenant-2", "appt-1", "staff-1", true)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = svc.GetByID(ctx, "tenant-1", "missing", "client-1", false)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	cases := []struct {
		name    string
		from    domain.AppointmentStatus
		to      string
		wantErr error
	}{
		{"pending to confirmed", domain.StatusPending, "confirmed", nil},
		{"pending to cancelled", domain.StatusPending, "cancelled", nil},
		{"confirmed to completed", domain.StatusConfirmed, "completed", nil},
		{"confirmed to cancelled", domain.StatusConfirmed, "cancelled", nil},
		{"pending to completed denied", domain.StatusPending, "completed", ErrInvalidTransition},
		{"completed is terminal", domain.StatusCompleted, "confirmed", ErrInvalidTransition},
		{"cancelled is terminal", domain.StatusCancelled, "confirmed", ErrInvalidTransition},
		{"unknown status", domain.StatusPending, "paused", ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubRepo{byID: map[string]*domain.Appointment{
				"appt-1": sampleAppointment(tc.from),
			}}
			svc := newTestService(repo)

			err := svc.UpdateStatus(context.Background(), "appt-1", &models.UpdateStatusRequest{
				TenantID: "tenant-1",
				Status:   tc.to,
			})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, repo.updatedStatus)
			} else {
				require.NoError(t, err)
				require.NotNil(t, repo.updatedStatus)
				assert.Equal(t, domain.AppointmentStatus(tc.to), *repo.updatedStatus)
			}
		})
	}
}

func TestCancel_AccessAndState(t *testing.T) {
	ctx := context.Background()

	t.Run("client cancels own appointment", func(t *testing.T) {
		repo := &stubRepo{byID: map[string]*domain.Appointment{
			"appt-1": sampleAppointment(domain.StatusPending),
		}}
		svc := newTestService(repo)

		err := svc.Cancel(ctx, "appt-1", &models.CancelAppointmentRequest{
			TenantID: "tenant-1",
			ClientID: "client-1",
		}, false)
		require.NoError(t, err)
		require.NotNil(t, repo.updatedStatus)
		assert.Equal(t, domain.StatusCancelled, *repo.updatedStatus)
	})

	t.Run("client cannot cancel foreign appointment", func(t *testing.T) {
		repo := &stubRepo{byID: map[string]*domain.Appointment{
			"appt-1": sampleAppointment(domain.StatusPending),
		}}
		svc := newTestService(repo)

		err := svc.Cancel(ctx, "appt-1", &models.CancelAppointmentRequest{
			TenantID: "tenant-1",
			ClientID: "client-2",
		}, false)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("staff cancels any tenant appointment", func(t *testing.T) {
		repo := &stubRepo{byID: map[string]*domain.Appointment{
			"appt-1": sampleAppointment(domain.StatusConfirmed),
		}}
		svc := newTestService(repo)

		err := svc.Cancel(ctx, "appt-1", &models.CancelAppointmentRequest{
			TenantID: "tenant-1",
			ClientID: "staff-1",
		}, true)
		assert.NoError(t, err)
	})

	t.Run("completed appointment cannot be cancelled", func(t *testing.T) {
		repo := &stubRepo{byID: map[string]*domain.Appointment{
			"appt-1": sampleAppointment(domain.StatusCompleted),
		}}
		svc := newTestService(repo)

		err := svc.Cancel(ctx, "appt-1", &models.CancelAppointmentRequest{
			TenantID: "tenant-1",
			ClientID: "client-1",
		}, false)
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestReschedule(t *testing.T) {
	ctx := context.Background()
	newStart := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	newEnd := newStart.Add(30 * time.Minute)

	t.Run("moves to free interval", func(t *testing.T) {
		repo := &stubRepo{byID: map[string]*domain.Appointment{
			"appt-1": sampleAppointment(domain.StatusConfirmed),
		}}
		svc := newTestService(repo)

		err := svc.Reschedule(ctx, "appt-1", &models.RescheduleRequest{
			TenantID: "tenant-1",
			Start:    newStart,
			End:      newEnd,
		})
		require.NoError(t, err)
		require.NotNil(t, repo.movedTo)
		assert.Equal(t, newStart, *repo.movedTo)
	})

	t.Run("busy interval rejected", func(t *testing.T) {
		other := sampleAppointment(domain.StatusConfirmed)
		other.ID = "appt-2"
		other.StartTime = newStart.Add(15 * time.Minute)
		other.EndTime = other.StartTime.Add(30 * time.Minute)

		repo := &stubRepo{
			byID:       map[string]*domain.Appointment{"appt-1": sampleAppointment(domain.StatusConfirmed)},
			withFilter: []*domain.Appointment{other},
		}
		svc := newTestService(repo)

		err := svc.Reschedule(ctx, "appt-1", &models.RescheduleRequest{
			TenantID: "tenant-1",
			Start:    newStart,
			End:      newEnd,
		})
		assert.ErrorIs(t, err, ErrIntervalBusy)
		assert.Nil(t, repo.movedTo)
	})

	t.Run("own row in overlap check is ignored", func(t *testing.T) {
		self := sampleAppointment(domain.StatusConfirmed)
		repo := &stubRepo{
			byID:       map[string]*domain.Appointment{"appt-1": self},
			withFilter: []*domain.Appointment{self},
		}
		svc := newTestService(repo)

		err := svc.Reschedule(ctx, "appt-1", &models.RescheduleRequest{
			TenantID: "tenant-1",
			Start:    self.StartTime.Add(15 * time.Minute),
			End:      self.EndTime.Add(15 * time.Minute),
		})
		assert.NoError(t, err)
	})

	t.Run("terminal appointment cannot move", func(t *testing.T) {
		repo := &stubRepo{byID: map[string]*domain.Appointment{
			"appt-1": sampleAppointment(domain.StatusCancelled),
		}}
		svc := newTestService(repo)

		err := svc.Reschedule(ctx, "appt-1", &models.RescheduleRequest{
			TenantID: "tenant-1",
			Start:    newStart,
			End:      newEnd,
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("empty interval rejected", func(t *testing.T) {
		repo := &stubRepo{byID: map[string]*domain.Appointment{
			"appt-1": sampleAppointment(domain.StatusConfirmed),
		}}
		svc := newTestService(repo)

		err := svc.Reschedule(ctx, "appt-1", &models.RescheduleRequest{
			TenantID: "tenant-1",
			Start:    newStart,
			End:      newStart,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
