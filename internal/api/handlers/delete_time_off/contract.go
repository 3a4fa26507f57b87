package delete_time_off

import "context"

type TimeOffService interface {
	Delete(ctx context.Context, tenantID, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
