package get_client_appointments

import (
	"context"

	"github.com/agendaplus/booking-service/internal/service/appointments/models"
)

type AppointmentService interface {
	GetClientAppointments(ctx context.Context, tenantID, clientID string, status *string) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
