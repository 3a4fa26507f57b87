package domain

import (
	"time"

	"github.com/agendaplus/booking-service/pkg/types"
)

// EventKind classifies a calendar event by the source it was derived from
type EventKind string

const (
	EventKindAppointment  EventKind = "appointment"
	EventKindTimeOff      EventKind = "time_off"
	EventKindAvailability EventKind = "availability"
)

// EventResource carries kind-specific payload of a calendar event.
// Only the fields matching the event kind are populated.
type EventResource struct {
	// Appointment fields
	ClientName  string
	ServiceName string
	Status      string

	// Time-off fields
	EmployeeID   string
	EmployeeName string
	Reason       string
}

// CalendarEvent is the unification type consumed by calendar rendering
// surfaces. Derived fresh on every fetch, never persisted.
type CalendarEvent struct {
	ID       string
	Title    string
	Start    time.Time
	End      time.Time
	AllDay   bool
	Kind     EventKind
	Resource EventResource
}

// IsPlaceholder returns true for synthetic availability events that must
// never be written back to storage
func (e *CalendarEvent) IsPlaceholder() bool {
	return e.Kind == EventKindAvailability
}

// Granularity is the calendar view granularity
type Granularity string

const (
	GranularityMonth Granularity = "month"
	GranularityWeek  Granularity = "week"
	GranularityDay   Granularity = "day"
)

// ValidGranularity reports whether g is a known view granularity
func ValidGranularity(g Granularity) bool {
	return g == GranularityMonth || g == GranularityWeek || g == GranularityDay
}

// DateRange is an inclusive calendar-day range of a view
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsValid returns true if the range covers at least one day
func (r DateRange) IsValid() bool {
	return !r.From.IsZero() && !r.To.IsZero() && !r.To.Before(r.From)
}

// BusinessHours is the working-hours window used for timed availability
// placeholders. Weekends are always skipped regardless of the window.
type BusinessHours struct {
	Start types.TimeString
	End   types.TimeString
}

// DefaultBusinessHours returns the fixed 09:00-17:00 reference window
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		Start: types.TimeString(DefaultBusinessStart),
		End:   types.TimeString(DefaultBusinessEnd),
	}
}
