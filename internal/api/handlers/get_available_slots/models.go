package get_available_slots

import (
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
	getAvailableSlots "github.com/agendaplus/booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"` // канонические "HH:MM" в порядке движка
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Date:  resp.Date,
		Slots: resp.Slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(tenantID, dateStr string, employeeID *string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		TenantID:   tenantID,
		Date:       date,
		EmployeeID: employeeID,
	}, nil
}
