package domain

import "time"

// Service represents a bookable offering owned by a tenant
type Service struct {
	ID              string
	TenantID        string
	Name            string
	DurationMinutes int     // integer >= 1
	Price           float64 // non-negative
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasValidDuration returns true if the service duration can produce a
// non-empty appointment interval
func (s *Service) HasValidDuration() bool {
	return s.DurationMinutes >= MinServiceDurationMinutes
}

// Duration returns the service duration as a time.Duration
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
