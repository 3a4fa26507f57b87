package get_tenant_appointments

import (
	"net/url"
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
	"github.com/agendaplus/booking-service/internal/service/appointments/models"
)

// ToServiceRequest собирает запрос к сервису из query параметров
// from/to принимаются как YYYY-MM-DD, from включительно, to исключительно
func ToServiceRequest(tenantID string, query url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{
		TenantID:        tenantID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if v := query.Get("employeeId"); v != "" {
		req.EmployeeID = &v
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("from"); v != "" {
		from, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}
	if v := query.Get("to"); v != "" {
		to, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		// Конец диапазона - начало следующего дня
		to = to.AddDate(0, 0, 1)
		req.To = &to
	}

	return req, nil
}
