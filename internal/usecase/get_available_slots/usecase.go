package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
	"github.com/agendaplus/booking-service/internal/slots"
)

// UseCase use case получения доступных слотов на дату
// Сырые дескрипторы слотов приходят из движка в разнородных формах
// и приводятся к каноническому "HH:MM" нормализатором
type UseCase struct {
	engine       SlotEngineClient
	cache        Cache
	cacheTTL     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	engine SlotEngineClient,
	cache Cache,
	cacheTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		engine:       engine,
		cache:        cache,
		cacheTTL:     cacheTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%s, date=%s", req.TenantID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.TenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. На прошедшие даты слотов не бывает, движок не дергаем
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past, returning empty list", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:  req.Date.Format(domain.DateFormat),
			Slots: []string{},
		}, nil
	}

	// 3. Пробуем кеш, промах и ошибки кеша не фатальны
	key := cacheKey(req)
	if cached, ok, err := uc.cache.Get(ctx, key); err != nil {
		uc.logger.Warn("GetAvailableSlots: cache get failed: %v", err)
	} else if ok {
		var normalized []string
		if err := json.Unmarshal(cached, &normalized); err == nil {
			uc.logger.Info("GetAvailableSlots: cache hit, %d slots", len(normalized))
			return &Response{
				Date:  req.Date.Format(domain.DateFormat),
				Slots: normalized,
			}, nil
		}
		uc.logger.Warn("GetAvailableSlots: corrupt cache entry, falling back to engine")
	}

	// 4. Вызываем движок, при его недоступности получим пустой список
	raw, err := uc.engine.GetAvailableSlotsWithGracefulDegradation(ctx, req.TenantID, req.Date, req.EmployeeID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: engine call failed: %v", err)
		return nil, fmt.Errorf("%w: engine call failed: %v", ErrInternal, err)
	}

	// 5. Нормализуем дескрипторы в канонические "HH:MM", порядок движка сохраняется
	normalized := slots.Normalize(raw)

	// 6. Кешируем нормализованный результат
	if payload, err := json.Marshal(normalized); err == nil {
		if err := uc.cache.Set(ctx, key, payload, uc.cacheTTL); err != nil {
			uc.logger.Warn("GetAvailableSlots: cache set failed: %v", err)
		}
	}

	uc.logger.Info("GetAvailableSlots: %d slots for tenant=%s date=%s",
		len(normalized), req.TenantID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date.Format(domain.DateFormat),
		Slots: normalized,
	}, nil
}

func cacheKey(req *Request) string {
	key := "slots:" + req.TenantID + ":" + req.Date.Format(domain.DateFormat)
	if req.EmployeeID != nil {
		key += ":" + *req.EmployeeID
	}
	return key
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
