package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a booked occupation of a service/employee/client
// combination over a time interval
type Appointment struct {
	ID         string
	TenantID   string
	ClientID   string
	EmployeeID *string // nil = not assigned to an employee yet
	ServiceID  string

	StartTime time.Time
	EndTime   time.Time
	Status    AppointmentStatus

	// Joined display data, nil when the referenced row is gone
	ClientName   *string
	ServiceName  *string
	EmployeeName *string

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time interval
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsTerminal returns true if the appointment reached a final state
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCompleted || a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the appointment interval can still be edited
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status transition is allowed.
// pending -> confirmed | cancelled; confirmed -> completed | cancelled;
// terminal states accept nothing.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// Overlaps reports whether the appointment interval really intersects
// [start, end). Touching boundaries do not count as an overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}

// AppointmentRequest is a creation payload assembled from client input.
// EmployeeID stays nil and Status stays pending for the client booking flow.
type AppointmentRequest struct {
	TenantID   string
	ClientID   string
	ServiceID  string
	EmployeeID *string
	StartTime  time.Time
	EndTime    time.Time
	Status     AppointmentStatus
	Notes      *string
}

// AppointmentsFilter is a filter for listing a tenant's appointments
type AppointmentsFilter struct {
	TenantID        string
	EmployeeID      *string    // optional, nil = all employees
	From            *time.Time // optional range start
	To              *time.Time // optional range end
	Status          *AppointmentStatus
	IncludeInactive bool // include cancelled/completed
}

// ValidStatus reports whether s is one of the known appointment statuses
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
