package move_event

import (
	"time"

	moveAppointment "github.com/agendaplus/booking-service/internal/usecase/move_appointment"
)

// MoveEventRequest HTTP request model
type MoveEventRequest struct {
	Start time.Time `json:"start"` // ISO 8601
	End   time.Time `json:"end"`   // ISO 8601
}

// MoveEventResponse HTTP response model
type MoveEventResponse struct {
	EventID string `json:"eventId"`
	Start   string `json:"start"` // ISO 8601
	End     string `json:"end"`   // ISO 8601
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *moveAppointment.Response) *MoveEventResponse {
	return &MoveEventResponse{
		EventID: resp.EventID,
		Start:   resp.Start.Format(time.RFC3339),
		End:     resp.End.Format(time.RFC3339),
	}
}
