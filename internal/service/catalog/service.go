package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
	catalogRepo "github.com/agendaplus/booking-service/internal/infra/storage/servicecatalog"
)

// Service сервис каталога услуг с кешированием списка активных услуг
// Каталог читается на каждом экране записи, пишется редко -
// список активных услуг арендатора живёт в кеше до первой записи в каталог
type Service struct {
	serviceRepo ServiceRepository
	cache       Cache
	cacheTTL    time.Duration
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, cache Cache, cacheTTL time.Duration, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// GetActive получает активные услуги арендатора, отсортированные по цене
func (s *Service) GetActive(ctx context.Context, tenantID string) ([]*domain.Service, error) {
	key := activeServicesKey(tenantID)

	// Пробуем кеш, промах и ошибки кеша не фатальны
	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("GetActive: cache get failed for tenant=%s: %v", tenantID, err)
	} else if ok {
		var services []*domain.Service
		if err := json.Unmarshal(cached, &services); err == nil {
			s.logger.Info("GetActive: cache hit for tenant=%s, %d services", tenantID, len(services))
			return services, nil
		}
		s.logger.Warn("GetActive: corrupt cache entry for tenant=%s, falling back to repository", tenantID)
	}

	services, err := s.serviceRepo.GetActive(ctx, tenantID)
	if err != nil {
		s.logger.Error("GetActive: repository error for tenant=%s: %v", tenantID, err)
		return nil, fmt.Errorf("%w: GetActive - repository error: %v", ErrInternal, err)
	}

	if payload, err := json.Marshal(services); err == nil {
		if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
			s.logger.Warn("GetActive: cache set failed for tenant=%s: %v", tenantID, err)
		}
	}

	s.logger.Info("GetActive: successfully fetched %d services for tenant=%s", len(services), tenantID)
	return services, nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, tenantID, id string) (*domain.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if svc.TenantID != tenantID {
		s.logger.Warn("GetByID: service id=%s belongs to another tenant", id)
		return nil, ErrServiceNotFound
	}

	return svc, nil
}

// Create создает услугу и сбрасывает кеш каталога
func (s *Service) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	s.logger.Info("Create: creating service name=%s tenant=%s", svc.Name, svc.TenantID)

	if err := s.validate(svc); err != nil {
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("Create: repository error for tenant=%s: %v", svc.TenantID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, svc.TenantID)

	s.logger.Info("Create: successfully created service id=%s", created.ID)
	return created, nil
}

// Update обновляет услугу и сбрасывает кеш каталога
func (s *Service) Update(ctx context.Context, svc *domain.Service) error {
	s.logger.Info("Update: updating service id=%s tenant=%s", svc.ID, svc.TenantID)

	if err := s.validate(svc); err != nil {
		return err
	}

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%s not found", svc.ID)
			return ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%s: %v", svc.ID, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, svc.TenantID)

	s.logger.Info("Update: successfully updated service id=%s", svc.ID)
	return nil
}

// Deactivate снимает услугу с публикации и сбрасывает кеш каталога
func (s *Service) Deactivate(ctx context.Context, tenantID, id string) error {
	s.logger.Info("Deactivate: deactivating service id=%s tenant=%s", id, tenantID)

	if err := s.serviceRepo.Deactivate(ctx, tenantID, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Deactivate: service id=%s not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("Deactivate: repository error for service id=%s: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, tenantID)

	s.logger.Info("Deactivate: successfully deactivated service id=%s", id)
	return nil
}

func (s *Service) validate(svc *domain.Service) error {
	if svc.TenantID == "" || svc.Name == "" {
		return fmt.Errorf("%w: tenant and name are required", ErrInvalidInput)
	}
	if !svc.HasValidDuration() {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	if svc.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context, tenantID string) {
	if err := s.cache.Delete(ctx, activeServicesKey(tenantID)); err != nil {
		s.logger.Warn("invalidate: cache delete failed for tenant=%s: %v", tenantID, err)
	}
}

func activeServicesKey(tenantID string) string {
	return "catalog:active:" + tenantID
}
