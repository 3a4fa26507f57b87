package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendaplus/booking-service/internal/booking"
	"github.com/agendaplus/booking-service/internal/domain"
	catalogService "github.com/agendaplus/booking-service/internal/service/catalog"
)

// UseCase use case для создания записи на услугу
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         ServiceCatalog
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog ServiceCatalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Сборка интервала из даты, времени и длительности услуги выполняется до транзакции,
// проверка пересечений и вставка - в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: tenant=%s, client=%s, service=%s, date=%s, time=%s",
		req.TenantID, req.ClientID, req.ServiceID, req.Date.Format(domain.DateFormat), req.TimeOfDay)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Дата записи не может быть в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Получаем услугу из каталога
	service, err := uc.catalog.GetByID(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogService.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Неактивная услуга недоступна для новых записей
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%s is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 5. Собираем заявку: интервал = дата + время + длительность услуги
	appointmentReq, err := booking.Assemble(req.TenantID, req.ClientID, *service, req.Date, req.TimeOfDay)
	if err != nil {
		uc.logger.Warn("CreateAppointment: assembly failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	appointmentReq.EmployeeID = req.EmployeeID
	appointmentReq.Notes = req.Notes

	// Переменная для хранения результата
	var result *domain.Appointment

	// 6. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Занятость считается per-employee, поэтому перепроверяем только
		// записи выбранного сотрудника. Для неназначенной заявки локальной
		// перепроверки нет: она не занимает конкретного сотрудника,
		// авторитет по доступности - процедура расчёта слотов
		if req.EmployeeID != nil {
			filter := domain.AppointmentsFilter{
				TenantID:   req.TenantID,
				EmployeeID: req.EmployeeID,
				From:       &appointmentReq.StartTime,
				To:         &appointmentReq.EndTime,
			}

			// Активные записи, пересекающие интервал, с блокировкой (FOR UPDATE)
			busy, err := uc.appointmentRepo.GetWithFilter(txCtx, filter)
			if err != nil {
				uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
				return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
			}

			// Строгая проверка пересечений, соприкосновение границ допустимо
			for _, other := range busy {
				if other.IsActive() && other.Overlaps(appointmentReq.StartTime, appointmentReq.EndTime) {
					uc.logger.Warn("CreateAppointment: interval busy, overlaps appointment id=%s", other.ID)
					return ErrSlotNotAvailable
				}
			}
		}

		// 6.2. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, appointmentReq)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s", result.ID)

	// Конвертируем в response
	return &Response{
		ID:          result.ID,
		TenantID:    result.TenantID,
		ClientID:    result.ClientID,
		ServiceID:   result.ServiceID,
		EmployeeID:  result.EmployeeID,
		Start:       result.StartTime,
		End:         result.EndTime,
		Status:      string(result.Status),
		ServiceName: service.Name,
		Price:       service.Price,
		Notes:       result.Notes,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
