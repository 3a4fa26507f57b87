package timeoff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
	timeoffRepo "github.com/agendaplus/booking-service/internal/infra/storage/timeoff"
)

// Service сервис для работы с отгулами сотрудников
type Service struct {
	timeoffRepo TimeOffRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отгулов
func NewService(timeoffRepo TimeOffRepository, logger Logger) *Service {
	return &Service{
		timeoffRepo: timeoffRepo,
		logger:      logger,
	}
}

// Create создает отгул сотрудника
func (s *Service) Create(ctx context.Context, item *domain.TimeOff) (*domain.TimeOff, error) {
	s.logger.Info("Create: creating time off for employee=%s tenant=%s", item.EmployeeID, item.TenantID)

	if item.TenantID == "" || item.EmployeeID == "" {
		return nil, fmt.Errorf("%w: tenant and employee are required", ErrInvalidInput)
	}
	if !item.EndTime.After(item.StartTime) {
		s.logger.Warn("Create: empty interval for employee=%s", item.EmployeeID)
		return nil, fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	created, err := s.timeoffRepo.Create(ctx, item)
	if err != nil {
		s.logger.Error("Create: repository error for employee=%s: %v", item.EmployeeID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created time off id=%s", created.ID)
	return created, nil
}

// GetByTenant получает отгулы арендатора, пересекающие интервал [from, to)
func (s *Service) GetByTenant(ctx context.Context, tenantID string, from, to *time.Time) ([]*domain.TimeOff, error) {
	s.logger.Info("GetByTenant: fetching time off for tenant=%s", tenantID)

	items, err := s.timeoffRepo.GetByTenant(ctx, tenantID, from, to)
	if err != nil {
		s.logger.Error("GetByTenant: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetByTenant - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByTenant: successfully fetched %d time off entries for tenant=%s", len(items), tenantID)
	return items, nil
}

// Delete удаляет отгул
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	s.logger.Info("Delete: deleting time off id=%s tenant=%s", id, tenantID)

	if err := s.timeoffRepo.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, timeoffRepo.ErrTimeOffNotFound) {
			s.logger.Warn("Delete: time off id=%s not found", id)
			return ErrTimeOffNotFound
		}
		s.logger.Error("Delete: repository error for time off id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted time off id=%s", id)
	return nil
}
