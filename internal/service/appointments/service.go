package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendaplus/booking-service/internal/domain"
	appointmentRepo "github.com/agendaplus/booking-service/internal/infra/storage/appointment"
	"github.com/agendaplus/booking-service/internal/service/appointments/models"
)

// Service сервис для работы с записями на услуги
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Клиент видит только свои записи, сотрудники арендатора - все записи арендатора
func (s *Service) GetByID(ctx context.Context, tenantID, id, requesterID string, isStaff bool) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for requester=%s", id, requesterID)

	app, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Чужой арендатор невидим независимо от роли
	if app.TenantID != tenantID {
		s.logger.Warn("GetByID: appointment id=%s belongs to another tenant", id)
		return nil, ErrAppointmentNotFound
	}

	if !isStaff && app.ClientID != requesterID {
		s.logger.Warn("GetByID: access denied for requester=%s to appointment id=%s", requesterID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%s", id)
	return models.FromDomainAppointment(app), nil
}

// GetClientAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientAppointments(ctx context.Context, tenantID, clientID string, status *string) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetClientAppointments: fetching appointments for client=%s, status=%v", clientID, status)

	var domainStatus *domain.AppointmentStatus
	if status != nil {
		st, err := models.ToDomainStatus(*status)
		if err != nil {
			s.logger.Warn("GetClientAppointments: invalid status=%s for client=%s", *status, clientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &st
	}

	apps, err := s.appointmentRepo.GetByClientID(ctx, tenantID, clientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientAppointments: successfully fetched %d appointments for client=%s", len(apps), clientID)
	return models.FromDomainAppointmentList(apps), nil
}

// GetTenantAppointments получает записи арендатора с гибкой фильтрацией
// Доступно только сотрудникам арендатора
func (s *Service) GetTenantAppointments(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetTenantAppointments: fetching appointments for tenant=%s", req.TenantID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetTenantAppointments: invalid filter for tenant=%s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	apps, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetTenantAppointments: repository error for tenant=%s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: GetTenantAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTenantAppointments: successfully fetched %d appointments for tenant=%s", len(apps), req.TenantID)
	return models.FromDomainAppointmentList(apps), nil
}

// UpdateStatus переводит запись в новый статус
// Допустимые переходы: pending -> confirmed/cancelled, confirmed -> completed/cancelled
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s", id, req.Status)

	app, err := s.getTenantAppointment(ctx, req.TenantID, id, "UpdateStatus")
	if err != nil {
		return err
	}

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if !app.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s denied for appointment id=%s", app.Status, newStatus, id)
		return ErrInvalidTransition
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%s to status=%s", id, newStatus)
	return nil
}

// Cancel отменяет запись
// Клиент может отменить только свою запись, сотрудник - любую запись арендатора
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelAppointmentRequest, isStaff bool) error {
	s.logger.Info("Cancel: cancelling appointment id=%s by user=%s", id, req.ClientID)

	app, err := s.getTenantAppointment(ctx, req.TenantID, id, "Cancel")
	if err != nil {
		return err
	}

	if !isStaff && app.ClientID != req.ClientID {
		s.logger.Warn("Cancel: access denied for user=%s to appointment id=%s", req.ClientID, id)
		return ErrAccessDenied
	}

	if !app.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%s cannot be cancelled, status=%s", id, app.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%s", id)
	return nil
}

// Reschedule переносит запись на новый интервал
// Проверка пересечений и обновление выполняются в одной SERIALIZABLE транзакции,
// чтобы два одновременных переноса не заняли один интервал
func (s *Service) Reschedule(ctx context.Context, id string, req *models.RescheduleRequest) error {
	s.logger.Info("Reschedule: moving appointment id=%s to [%s, %s]", id, req.Start, req.End)

	if !req.End.After(req.Start) {
		s.logger.Warn("Reschedule: empty interval for appointment id=%s", id)
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	app, err := s.getTenantAppointment(ctx, req.TenantID, id, "Reschedule")
	if err != nil {
		return err
	}

	if !app.CanBeRescheduled() {
		s.logger.Warn("Reschedule: appointment id=%s is terminal, status=%s", id, app.Status)
		return ErrInvalidTransition
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		filter := domain.AppointmentsFilter{
			TenantID:   req.TenantID,
			EmployeeID: app.EmployeeID,
			From:       &req.Start,
			To:         &req.End,
		}

		busy, err := s.appointmentRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: Reschedule - overlap check: %v", ErrInternal, err)
		}

		for _, other := range busy {
			if other.ID != id && other.Overlaps(req.Start, req.End) {
				return ErrIntervalBusy
			}
		}

		return s.appointmentRepo.UpdateInterval(txCtx, id, req.Start, req.End)
	})

	if err != nil {
		if errors.Is(err, ErrIntervalBusy) {
			s.logger.Warn("Reschedule: interval busy for appointment id=%s", id)
			return ErrIntervalBusy
		}
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Reschedule: transaction failed for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Reschedule - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Reschedule: successfully moved appointment id=%s", id)
	return nil
}

// getTenantAppointment загружает запись и проверяет принадлежность арендатору
func (s *Service) getTenantAppointment(ctx context.Context, tenantID, id, op string) (*domain.Appointment, error) {
	app, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%s not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if app.TenantID != tenantID {
		s.logger.Warn("%s: appointment id=%s belongs to another tenant", op, id)
		return nil, ErrAppointmentNotFound
	}

	return app, nil
}
