package models

import (
	"errors"
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	TenantID string `json:"tenantId"`
	Status   string `json:"status"`
}

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	TenantID string `json:"tenantId"`
	ClientID string `json:"clientId"` // кто отменяет
}

// RescheduleRequest запрос на перенос записи на новый интервал
type RescheduleRequest struct {
	TenantID string    `json:"tenantId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// ListAppointmentsRequest запрос на получение записей арендатора
type ListAppointmentsRequest struct {
	TenantID        string     `json:"tenantId"`
	EmployeeID      *string    `json:"employeeId,omitempty"`
	From            *time.Time `json:"from,omitempty"`
	To              *time.Time `json:"to,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		TenantID:        r.TenantID,
		EmployeeID:      r.EmployeeID,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID         string  `json:"id"`
	TenantID   string  `json:"tenantId"`
	ClientID   string  `json:"clientId"`
	EmployeeID *string `json:"employeeId,omitempty"`
	ServiceID  string  `json:"serviceId"`
	Start      string  `json:"start"` // ISO 8601
	End        string  `json:"end"`   // ISO 8601
	Status     string  `json:"status"`

	// Денормализованные данные из связанных таблиц
	ClientName   *string `json:"clientName,omitempty"`
	ServiceName  *string `json:"serviceName,omitempty"`
	EmployeeName *string `json:"employeeName,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:           a.ID,
		TenantID:     a.TenantID,
		ClientID:     a.ClientID,
		EmployeeID:   a.EmployeeID,
		ServiceID:    a.ServiceID,
		Start:        a.StartTime.Format(time.RFC3339),
		End:          a.EndTime.Format(time.RFC3339),
		Status:       string(a.Status),
		ClientName:   a.ClientName,
		ServiceName:  a.ServiceName,
		EmployeeName: a.EmployeeName,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(apps []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(apps)),
	}

	for _, app := range apps {
		if appResp := FromDomainAppointment(app); appResp != nil {
			resp.Appointments = append(resp.Appointments, *appResp)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !domain.ValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
