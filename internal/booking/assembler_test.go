package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaplus/booking-service/internal/domain"
)

func testService(durationMinutes int) domain.Service {
	return domain.Service{
		ID:              "svc-1",
		TenantID:        "tenant-1",
		Name:            "Haircut",
		DurationMinutes: durationMinutes,
		Price:           25.0,
		IsActive:        true,
	}
}

func TestAssemble_Basic(t *testing.T) {
	date := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	req, err := Assemble("tenant-1", "c1", testService(30), date, "10:00")
	require.NoError(t, err)

	assert.Equal(t, "tenant-1", req.TenantID)
	assert.Equal(t, "c1", req.ClientID)
	assert.Equal(t, "svc-1", req.ServiceID)
	assert.Nil(t, req.EmployeeID)
	assert.Equal(t, domain.StatusPending, req.Status)
	assert.Equal(t, time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC), req.StartTime)
	assert.Equal(t, time.Date(2025, 1, 20, 10, 30, 0, 0, time.UTC), req.EndTime)
}

func TestAssemble_CrossMidnightRollover(t *testing.T) {
	date := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	req, err := Assemble("tenant-1", "c1", testService(30), date, "23:45")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 1, 20, 23, 45, 0, 0, time.UTC), req.StartTime)
	// Конец уезжает на следующие сутки
	assert.Equal(t, time.Date(2025, 1, 21, 0, 15, 0, 0, time.UTC), req.EndTime)
	assert.True(t, req.EndTime.After(req.StartTime))
}

func TestAssemble_IgnoresTimeComponentOfDate(t *testing.T) {
	// Дата пришла с случайным временем - оно не должно влиять на результат
	date := time.Date(2025, 3, 10, 18, 42, 7, 0, time.UTC)

	req, err := Assemble("tenant-1", "c1", testService(60), date, "09:30")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC), req.StartTime)
	assert.Equal(t, time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC), req.EndTime)
}

func TestAssemble_AcceptsSeconds(t *testing.T) {
	date := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	req, err := Assemble("tenant-1", "c1", testService(15), date, "10:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC), req.StartTime)
}

func TestAssemble_InvalidInput(t *testing.T) {
	date := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		tenantID  string
		clientID  string
		svc       domain.Service
		date      time.Time
		timeOfDay string
	}{
		{"unparsable time", "tenant-1", "c1", testService(30), date, "not-a-time"},
		{"hour out of range", "tenant-1", "c1", testService(30), date, "24:00"},
		{"minute out of range", "tenant-1", "c1", testService(30), date, "10:60"},
		{"zero duration", "tenant-1", "c1", testService(0), date, "10:00"},
		{"negative duration", "tenant-1", "c1", testService(-15), date, "10:00"},
		{"empty client", "tenant-1", "", testService(30), date, "10:00"},
		{"empty tenant", "", "c1", testService(30), date, "10:00"},
		{"zero date", "tenant-1", "c1", testService(30), time.Time{}, "10:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Assemble(tc.tenantID, tc.clientID, tc.svc, tc.date, tc.timeOfDay)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	h, m, err := ParseTimeOfDay("23:45")
	require.NoError(t, err)
	assert.Equal(t, 23, h)
	assert.Equal(t, 45, m)

	_, _, err = ParseTimeOfDay("1200")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
