package get_calendar

import (
	"net/url"
	"time"

	"github.com/agendaplus/booking-service/internal/domain"
	getCalendar "github.com/agendaplus/booking-service/internal/usecase/get_calendar"
)

// CalendarEventResponse HTTP модель события календаря
type CalendarEventResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title,omitempty"`
	Start  string `json:"start"` // ISO 8601
	End    string `json:"end"`   // ISO 8601
	AllDay bool   `json:"allDay,omitempty"`
	Kind   string `json:"kind"`

	Resource EventResourceResponse `json:"resource"`
}

// EventResourceResponse контекст события для отображения
type EventResourceResponse struct {
	ClientName   string `json:"clientName,omitempty"`
	ServiceName  string `json:"serviceName,omitempty"`
	Status       string `json:"status,omitempty"`
	EmployeeID   string `json:"employeeId,omitempty"`
	EmployeeName string `json:"employeeName,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	SessionID string                  `json:"sessionId"`
	Events    []CalendarEventResponse `json:"events"`
}

// ToUseCaseRequest собирает запрос use case из query параметров
func ToUseCaseRequest(tenantID string, query url.Values) (*getCalendar.Request, error) {
	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		return nil, err
	}
	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		return nil, err
	}

	req := &getCalendar.Request{
		TenantID:    tenantID,
		From:        from,
		To:          to,
		Granularity: query.Get("granularity"),
	}

	if v := query.Get("employeeId"); v != "" {
		req.EmployeeID = &v
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	events := make([]CalendarEventResponse, 0, len(resp.Events))
	for _, ev := range resp.Events {
		events = append(events, CalendarEventResponse{
			ID:     ev.ID,
			Title:  ev.Title,
			Start:  ev.Start.Format(time.RFC3339),
			End:    ev.End.Format(time.RFC3339),
			AllDay: ev.AllDay,
			Kind:   string(ev.Kind),
			Resource: EventResourceResponse{
				ClientName:   ev.Resource.ClientName,
				ServiceName:  ev.Resource.ServiceName,
				Status:       ev.Resource.Status,
				EmployeeID:   ev.Resource.EmployeeID,
				EmployeeName: ev.Resource.EmployeeName,
				Reason:       ev.Resource.Reason,
			},
		})
	}

	return &CalendarResponse{
		SessionID: resp.SessionID,
		Events:    events,
	}
}
