package domain

import "time"

// Display placeholders for missing joined data. Calendar titles must always
// be non-empty human strings, so a deleted reference degrades to these.
const (
	PlaceholderClientName   = "Unknown client"
	PlaceholderServiceName  = "General service"
	PlaceholderEmployeeName = "Unassigned"
	PlaceholderReason       = "Unavailable"
)

// Business validation constants
const (
	MinServiceDurationMinutes = 1
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxReasonLength           = 500
	MaxNotesLength            = 500
)

// DefaultEventDuration substitutes a missing or unparsable end instant:
// end = start + 1h
const DefaultEventDuration = time.Hour

// Fixed reference business hours for availability placeholders
const (
	DefaultBusinessStart = "09:00"
	DefaultBusinessEnd   = "17:00"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses are the statuses that occupy a time interval.
// Used when counting overlaps for slot availability.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses are the terminal statuses excluded from availability math
var InactiveStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
}
