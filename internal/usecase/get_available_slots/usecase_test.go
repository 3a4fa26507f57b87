package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaplus/booking-service/internal/slots"
	"github.com/agendaplus/booking-service/pkg/ptr"
)

type stubEngine struct {
	raw    []slots.RawSlot
	err    error
	called int
}

func (e *stubEngine) GetAvailableSlotsWithGracefulDegradation(context.Context, string, time.Time, *string) ([]slots.RawSlot, error) {
	e.called++
	return e.raw, e.err
}

type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.data[key] = value
	return nil
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("cache down")
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("cache down")
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newTestUseCase(engine *stubEngine, cache Cache, now time.Time) *UseCase {
	uc := NewUseCase(engine, cache, time.Minute, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute_NormalizesHeterogeneousSlots(t *testing.T) {
	engine := &stubEngine{
		raw: []slots.RawSlot{
			{SlotTime: ptr.Ptr("09:00:00")},
			{StartTime: ptr.Ptr("10:30")},
			{Bare: ptr.Ptr("11:00:00")},
		},
	}
	uc := newTestUseCase(engine, newMemCache(), time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: "tenant-1",
		Date:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-10", resp.Date)
	assert.Equal(t, []string{"09:00", "10:30", "11:00"}, resp.Slots)
}

func TestExecute_PastDateReturnsEmptyWithoutEngineCall(t *testing.T) {
	engine := &stubEngine{raw: []slots.RawSlot{{SlotTime: ptr.Ptr("09:00")}}}
	uc := newTestUseCase(engine, newMemCache(), time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: "tenant-1",
		Date:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
	assert.Zero(t, engine.called)
}

func TestExecute_CacheHitSkipsEngine(t *testing.T) {
	cache := newMemCache()
	payload, err := json.Marshal([]string{"12:00", "12:30"})
	require.NoError(t, err)
	cache.data["slots:tenant-1:2025-06-10"] = payload

	engine := &stubEngine{}
	uc := newTestUseCase(engine, cache, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: "tenant-1",
		Date:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"12:00", "12:30"}, resp.Slots)
	assert.Zero(t, engine.called)
}

func TestExecute_CorruptCacheEntryFallsThroughToEngine(t *testing.T) {
	cache := newMemCache()
	cache.data["slots:tenant-1:2025-06-10"] = []byte("not json")

	engine := &stubEngine{raw: []slots.RawSlot{{SlotTime: ptr.Ptr("09:00")}}}
	uc := newTestUseCase(engine, cache, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: "tenant-1",
		Date:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00"}, resp.Slots)
	assert.Equal(t, 1, engine.called)
}

func TestExecute_ResultIsCached(t *testing.T) {
	cache := newMemCache()
	engine := &stubEngine{raw: []slots.RawSlot{{SlotTime: ptr.Ptr("09:00")}}}
	uc := newTestUseCase(engine, cache, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	req := &Request{
		TenantID: "tenant-1",
		Date:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Второй вызов обслуживается из кеша
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, engine.called)
}

func TestExecute_CacheFailureIsNotFatal(t *testing.T) {
	engine := &stubEngine{raw: []slots.RawSlot{{SlotTime: ptr.Ptr("09:00")}}}
	uc := newTestUseCase(engine, failingCache{}, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: "tenant-1",
		Date:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, resp.Slots)
}

func TestExecute_EmployeeScopedCacheKey(t *testing.T) {
	cache := newMemCache()
	engine := &stubEngine{raw: []slots.RawSlot{{SlotTime: ptr.Ptr("09:00")}}}
	uc := newTestUseCase(engine, cache, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{
		TenantID:   "tenant-1",
		Date:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		EmployeeID: ptr.Ptr("emp-1"),
	})
	require.NoError(t, err)

	_, ok := cache.data["slots:tenant-1:2025-06-10:emp-1"]
	assert.True(t, ok)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&stubEngine{}, newMemCache(), time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), &Request{Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{TenantID: "tenant-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
