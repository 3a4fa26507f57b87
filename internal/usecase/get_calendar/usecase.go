package get_calendar

import (
	"context"
	"fmt"

	"github.com/agendaplus/booking-service/internal/calendar"
	"github.com/agendaplus/booking-service/internal/domain"
)

// UseCase use case построения календаря
// Собирает три слоя событий: записи, отгулы сотрудников и слой доступности,
// открывает сессию для последующих оптимистичных мутаций
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeoffRepo     TimeOffRepository
	registry        SessionRegistry
	businessHours   domain.BusinessHours
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// businessHours задается конфигурацией, при нулевом значении используется окно по умолчанию
func NewUseCase(
	appointmentRepo AppointmentRepository,
	timeoffRepo TimeOffRepository,
	registry SessionRegistry,
	businessHours domain.BusinessHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeoffRepo:     timeoffRepo,
		registry:        registry,
		businessHours:   businessHours,
		logger:          logger,
	}
}

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: tenant=%s, granularity=%s, range=[%s, %s]",
		req.TenantID, req.Granularity,
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.TenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	viewRange := domain.DateRange{From: req.From, To: req.To}
	if !viewRange.IsValid() {
		uc.logger.Warn("GetCalendar: invalid range for tenant=%s", req.TenantID)
		return nil, ErrInvalidRange
	}

	granularity := domain.Granularity(req.Granularity)
	if !domain.ValidGranularity(granularity) {
		uc.logger.Warn("GetCalendar: invalid granularity=%s", req.Granularity)
		return nil, ErrInvalidGranularity
	}

	hours := req.BusinessHours
	if hours.Start.IsZero() || hours.End.IsZero() {
		hours = uc.businessHours
	}
	if hours.Start.IsZero() || hours.End.IsZero() {
		hours = domain.DefaultBusinessHours()
	}

	// 2. Загружаем активные записи диапазона
	filter := domain.AppointmentsFilter{
		TenantID:   req.TenantID,
		EmployeeID: req.EmployeeID,
		From:       &req.From,
		To:         &req.To,
	}

	apps, err := uc.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get appointments for tenant=%s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 3. Загружаем отгулы диапазона
	timeoff, err := uc.timeoffRepo.GetByTenant(ctx, req.TenantID, &req.From, &req.To)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get time off for tenant=%s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: failed to get time off: %v", ErrInternal, err)
	}

	// 4. Проецируем слои в события календаря
	events := calendar.AppointmentEvents(apps)
	events = append(events, calendar.TimeOffEvents(timeoff)...)

	// Слой доступности строится для конкретного сотрудника
	if req.EmployeeID != nil {
		availability, err := calendar.AvailabilityLayer(*req.EmployeeID, viewRange, granularity, hours)
		if err != nil {
			uc.logger.Error("GetCalendar: failed to build availability layer: %v", err)
			return nil, fmt.Errorf("%w: failed to build availability layer: %v", ErrInternal, err)
		}
		events = append(events, availability...)
	}

	// 5. Открываем сессию и загружаем в неё события
	sessionID, session := uc.registry.Open()
	if err := session.BeginLoad(); err != nil {
		return nil, fmt.Errorf("%w: session load: %v", ErrInternal, err)
	}
	if err := session.CompleteLoad(events); err != nil {
		return nil, fmt.Errorf("%w: session load: %v", ErrInternal, err)
	}

	uc.logger.Info("GetCalendar: session=%s, %d events for tenant=%s", sessionID, len(events), req.TenantID)

	return &Response{
		SessionID: sessionID,
		Events:    events,
	}, nil
}
