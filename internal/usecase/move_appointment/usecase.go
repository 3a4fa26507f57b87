package move_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendaplus/booking-service/internal/calendar"
	appointmentsService "github.com/agendaplus/booking-service/internal/service/appointments"
	"github.com/agendaplus/booking-service/internal/service/appointments/models"
)

// UseCase use case оптимистичного переноса события календаря
// Событие двигается в сессии немедленно, затем перенос подтверждается в БД.
// Отказ БД откатывает сессию к снимку, сделанному перед мутацией
type UseCase struct {
	appointments AppointmentService
	registry     SessionRegistry
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointments AppointmentService,
	registry SessionRegistry,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointments: appointments,
		registry:     registry,
		logger:       logger,
	}
}

// Execute выполняет use case переноса события
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MoveAppointment: session=%s, event=%s, new interval=[%s, %s]",
		req.SessionID, req.EventID, req.Start, req.End)

	// 1. Валидация входных данных
	if req.SessionID == "" || req.EventID == "" {
		return nil, fmt.Errorf("%w: sessionID and eventID are required", ErrInvalidInput)
	}
	if !req.End.After(req.Start) {
		return nil, fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	// 2. Находим сессию
	session, err := uc.registry.Get(req.SessionID)
	if err != nil {
		uc.logger.Warn("MoveAppointment: session=%s not found", req.SessionID)
		return nil, ErrSessionNotFound
	}

	// 3. Оптимистично применяем перенос в сессии
	pending, err := session.ApplyMove(req.EventID, req.Start, req.End)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrEventNotFound):
			uc.logger.Warn("MoveAppointment: event=%s not found in session=%s", req.EventID, req.SessionID)
			return nil, ErrEventNotFound
		case errors.Is(err, calendar.ErrEventNotMovable):
			uc.logger.Warn("MoveAppointment: event=%s is a placeholder", req.EventID)
			return nil, ErrEventNotMovable
		case errors.Is(err, calendar.ErrMoveInFlight), errors.Is(err, calendar.ErrMutationPending):
			uc.logger.Warn("MoveAppointment: mutation already pending in session=%s", req.SessionID)
			return nil, ErrMutationPending
		case errors.Is(err, calendar.ErrInvalidInterval):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("MoveAppointment: apply move failed: %v", err)
			return nil, fmt.Errorf("%w: apply move failed: %v", ErrInternal, err)
		}
	}

	// 4. Подтверждаем перенос в БД
	rescheduleReq := &models.RescheduleRequest{
		TenantID: req.TenantID,
		Start:    req.Start,
		End:      req.End,
	}

	if err := uc.appointments.Reschedule(ctx, req.EventID, rescheduleReq); err != nil {
		// Откатываем сессию к снимку
		if rbErr := pending.Rollback(); rbErr != nil {
			uc.logger.Error("MoveAppointment: rollback failed for session=%s: %v", req.SessionID, rbErr)
		}

		switch {
		case errors.Is(err, appointmentsService.ErrIntervalBusy):
			uc.logger.Warn("MoveAppointment: interval busy for event=%s", req.EventID)
			return nil, ErrIntervalBusy
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			uc.logger.Warn("MoveAppointment: appointment=%s not found", req.EventID)
			return nil, ErrEventNotFound
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		default:
			uc.logger.Error("MoveAppointment: reschedule failed for event=%s: %v", req.EventID, err)
			return nil, fmt.Errorf("%w: reschedule failed: %v", ErrInternal, err)
		}
	}

	// 5. БД подтвердила - фиксируем мутацию в сессии
	if err := pending.Commit(); err != nil {
		uc.logger.Error("MoveAppointment: commit failed for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: commit failed: %v", ErrInternal, err)
	}

	uc.logger.Info("MoveAppointment: successfully moved event=%s", req.EventID)

	return &Response{
		EventID: req.EventID,
		Start:   req.Start,
		End:     req.End,
	}, nil
}
