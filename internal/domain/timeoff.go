package domain

import "time"

// TimeOff represents an employee's blocked interval
type TimeOff struct {
	ID         string
	TenantID   string
	EmployeeID string
	StartTime  time.Time
	EndTime    time.Time
	Reason     *string // free text, nil = no reason given

	// Joined display data
	EmployeeName *string

	CreatedAt time.Time
}
