package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaplus/booking-service/internal/domain"
	"github.com/agendaplus/booking-service/pkg/ptr"
)

type stubRepo struct {
	existing []*domain.Appointment
	created  *domain.AppointmentRequest
	filter   domain.AppointmentsFilter
	getCalls int
}

func (r *stubRepo) Create(_ context.Context, req *domain.AppointmentRequest) (*domain.Appointment, error) {
	r.created = req
	return &domain.Appointment{
		ID:         "new-id",
		TenantID:   req.TenantID,
		ClientID:   req.ClientID,
		EmployeeID: req.EmployeeID,
		ServiceID:  req.ServiceID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Status:     req.Status,
		Notes:      req.Notes,
	}, nil
}

func (r *stubRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	r.getCalls++
	r.filter = filter
	return r.existing, nil
}

type stubCatalog struct {
	service *domain.Service
	err     error
}

func (c *stubCatalog) GetByID(_ context.Context, _, _ string) (*domain.Service, error) {
	return c.service, c.err
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *stubRepo, catalog *stubCatalog, now time.Time) *UseCase {
	uc := NewUseCase(repo, catalog, passthroughTx{}, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func activeService() *domain.Service {
	return &domain.Service{
		ID:              "svc-1",
		TenantID:        "tenant-1",
		Name:            "Haircut",
		DurationMinutes: 30,
		Price:           25,
		IsActive:        true,
	}
}

func validRequest() *Request {
	return &Request{
		TenantID:  "tenant-1",
		ClientID:  "client-1",
		ServiceID: "svc-1",
		Date:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		TimeOfDay: "10:00",
	}
}

// assignedRequest заявка с назначенным сотрудником
func assignedRequest() *Request {
	req := validRequest()
	req.EmployeeID = ptr.Ptr("emp-1")
	return req
}

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	repo := &stubRepo{}
	catalog := &stubCatalog{service: activeService()}
	uc := newTestUseCase(repo, catalog, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "new-id", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Haircut", resp.ServiceName)
	assert.Equal(t, float64(25), resp.Price)

	// Интервал = дата + время + длительность услуги
	assert.Equal(t, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC), resp.Start)
	assert.Equal(t, time.Date(2025, 6, 10, 10, 30, 0, 0, time.UTC), resp.End)

	// Запись создана без назначенного сотрудника
	require.NotNil(t, repo.created)
	assert.Nil(t, repo.created.EmployeeID)
}

func TestExecute_NotesAreSaved(t *testing.T) {
	repo := &stubRepo{}
	catalog := &stubCatalog{service: activeService()}
	uc := newTestUseCase(repo, catalog, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	req := validRequest()
	req.Notes = ptr.Ptr("просьба перезвонить за час")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Комментарий клиента доходит до репозитория и возвращается в ответе
	require.NotNil(t, repo.created)
	require.NotNil(t, repo.created.Notes)
	assert.Equal(t, "просьба перезвонить за час", *repo.created.Notes)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "просьба перезвонить за час", *resp.Notes)
}

func TestExecute_RecheckScopedToEmployee(t *testing.T) {
	repo := &stubRepo{}
	catalog := &stubCatalog{service: activeService()}
	uc := newTestUseCase(repo, catalog, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), assignedRequest())
	require.NoError(t, err)

	// Перепроверка выполнялась по собранному интервалу и только по этому сотруднику
	assert.Equal(t, 1, repo.getCalls)
	require.NotNil(t, repo.filter.EmployeeID)
	assert.Equal(t, "emp-1", *repo.filter.EmployeeID)
	require.NotNil(t, repo.filter.From)
	require.NotNil(t, repo.filter.To)
	assert.Equal(t, resp.Start, *repo.filter.From)
	assert.Equal(t, resp.End, *repo.filter.To)
}

func TestExecute_UnassignedSkipsOverlapRecheck(t *testing.T) {
	// У других сотрудников арендатора интервал занят, но заявка без сотрудника
	// никого конкретного не занимает и не должна с ними конфликтовать
	busyStart := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	repo := &stubRepo{
		existing: []*domain.Appointment{
			{
				ID:         "other-emp-1",
				TenantID:   "tenant-1",
				EmployeeID: ptr.Ptr("emp-2"),
				StartTime:  busyStart,
				EndTime:    busyStart.Add(30 * time.Minute),
				Status:     domain.StatusConfirmed,
			},
		},
	}
	catalog := &stubCatalog{service: activeService()}
	uc := newTestUseCase(repo, catalog, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 0, repo.getCalls)
	require.NotNil(t, repo.created)
	assert.Nil(t, repo.created.EmployeeID)
}

func TestExecute_PastDateRejected(t *testing.T) {
	repo := &stubRepo{}
	catalog := &stubCatalog{service: activeService()}
	uc := newTestUseCase(repo, catalog, time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))

	req := validRequest()
	req.Date = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Nil(t, repo.created)
}

func TestExecute_TodayIsAllowed(t *testing.T) {
	repo := &stubRepo{}
	catalog := &stubCatalog{service: activeService()}
	// Сегодня, но позже времени записи - сравниваются только даты
	uc := newTestUseCase(repo, catalog, time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_InactiveServiceRejected(t *testing.T) {
	svc := activeService()
	svc.IsActive = false

	repo := &stubRepo{}
	uc := newTestUseCase(repo, &stubCatalog{service: svc}, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_OverlappingIntervalRejected(t *testing.T) {
	busyStart := time.Date(2025, 6, 10, 10, 15, 0, 0, time.UTC)
	repo := &stubRepo{
		existing: []*domain.Appointment{
			{
				ID:         "busy-1",
				TenantID:   "tenant-1",
				EmployeeID: ptr.Ptr("emp-1"),
				StartTime:  busyStart,
				EndTime:    busyStart.Add(30 * time.Minute),
				Status:     domain.StatusConfirmed,
			},
		},
	}
	catalog := &stubCatalog{service: activeService()}
	uc := newTestUseCase(repo, catalog, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), assignedRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_CancelledOverlapIgnored(t *testing.T) {
	busyStart := time.Date(2025, 6, 10, 10, 15, 0, 0, time.UTC)
	repo := &stubRepo{
		existing: []*domain.Appointment{
			{
				ID:         "cancelled-1",
				TenantID:   "tenant-1",
				EmployeeID: ptr.Ptr("emp-1"),
				StartTime:  busyStart,
				EndTime:    busyStart.Add(30 * time.Minute),
				Status:     domain.StatusCancelled,
			},
		},
	}
	catalog := &stubCatalog{service: activeService()}
	uc := newTestUseCase(repo, catalog, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), assignedRequest())
	assert.NoError(t, err)
}

func TestExecute_TouchingBoundaryAllowed(t *testing.T) {
	// Существующая запись заканчивается ровно в 10:00 - соприкосновение не конфликт
	busyStart := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	repo := &stubRepo{
		existing: []*domain.Appointment{
			{
				ID:         "before-1",
				TenantID:   "tenant-1",
				EmployeeID: ptr.Ptr("emp-1"),
				StartTime:  busyStart,
				EndTime:    busyStart.Add(30 * time.Minute),
				Status:     domain.StatusConfirmed,
			},
		},
	}
	catalog := &stubCatalog{service: activeService()}
	uc := newTestUseCase(repo, catalog, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), assignedRequest())
	assert.NoError(t, err)
}

func TestExecute_ValidationErrors(t *testing.T) {
	repo := &stubRepo{}
	catalog := &stubCatalog{service: activeService()}
	uc := newTestUseCase(repo, catalog, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	cases := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty tenant", func(r *Request) { r.TenantID = "" }},
		{"empty client", func(r *Request) { r.ClientID = "" }},
		{"empty service", func(r *Request) { r.ServiceID = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty time", func(r *Request) { r.TimeOfDay = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
