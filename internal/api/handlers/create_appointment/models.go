package create_appointment

import (
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
	createAppointment "github.com/agendaplus/booking-service/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID  string  `json:"serviceId"`
	EmployeeID *string `json:"employeeId,omitempty"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Time       string  `json:"time"` // "10:00" или "10:00:00"
	Notes      *string `json:"notes,omitempty"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	ID          string  `json:"id"`
	ServiceID   string  `json:"serviceId"`
	EmployeeID  *string `json:"employeeId,omitempty"`
	Start       string  `json:"start"` // ISO 8601
	End         string  `json:"end"`   // ISO 8601
	Status      string  `json:"status"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
	Notes       *string `json:"notes,omitempty"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func (r *CreateAppointmentRequest) ToUseCaseRequest(tenantID, clientID string) (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		TenantID:   tenantID,
		ClientID:   clientID,
		ServiceID:  r.ServiceID,
		EmployeeID: r.EmployeeID,
		Date:       date,
		TimeOfDay:  r.Time,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		ID:          resp.ID,
		ServiceID:   resp.ServiceID,
		EmployeeID:  resp.EmployeeID,
		Start:       resp.Start.Format(time.RFC3339),
		End:         resp.End.Format(time.RFC3339),
		Status:      resp.Status,
		ServiceName: resp.ServiceName,
		Price:       resp.Price,
		Notes:       resp.Notes,
	}
}
