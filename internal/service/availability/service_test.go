package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomspera05/NH-BookingService/internal/domain"
	"github.com/tomspera05/NH-BookingService/pkg/types"
)

// fakeBlockedSlotRepo in-memory реализация BlockedSlotRepository для тестов
type fakeBlockedSlotRepo struct {
	blocked map[string][]types.TimeString
}

func newFakeBlockedSlotRepo(blocked map[string][]types.TimeString) *fakeBlockedSlotRepo {
	return &fakeBlockedSlotRepo{blocked: blocked}
}

func (r *fakeBlockedSlotRepo) IsBlocked(_ context.Context, date time.Time, startTime types.TimeString) (bool, error) {
	for _, s := range r.blocked[date.Format(domain.DateFormat)] {
		if s == startTime {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBlockedSlotRepo) GetByDate(_ context.Context, date time.Time) ([]types.TimeString, error) {
	return r.blocked[date.Format(domain.DateFormat)], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(blocked map[string][]types.TimeString) *Service {
	return NewService(newFakeBlockedSlotRepo(blocked), nopLogger{})
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return date
}

func TestCheckAvailability_FreeSlot(t *testing.T) {
	svc := newTestService(map[string][]types.TimeString{
		"2025-11-14": {"10:00", "14:00", "16:30"},
	})

	result, err := svc.CheckAvailability(context.Background(), mustDate(t, "2025-11-14"), "09:00", []string{"1"})
	require.NoError(t, err)

	assert.True(t, result.Available)
	assert.Empty(t, result.AlternativeSlots)
}

func TestCheckAvailability_BlockedSlotOffersAlternatives(t *testing.T) {
	svc := newTestService(map[string][]types.TimeString{
		"2025-11-14": {"10:00", "14:00", "16:30"},
	})

	result, err := svc.CheckAvailability(context.Background(), mustDate(t, "2025-11-14"), "10:00", []string{"1", "2"})
	require.NoError(t, err)

	assert.False(t, result.Available)
	assert.Equal(t, []types.TimeString{
		"09:00", "09:15", "09:30", "09:45", "10:15", "10:30",
	}, result.AlternativeSlots)
}

func TestCheckAvailability_InvalidInput(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.CheckAvailability(context.Background(), time.Time{}, "10:00", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CheckAvailability(context.Background(), mustDate(t, "2025-11-14"), "25:99", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckAvailability_DeterministicForSameDate(t *testing.T) {
	svc := newTestService(map[string][]types.TimeString{
		"2025-11-15": {"11:00", "15:00"},
	})

	first, err := svc.CheckAvailability(context.Background(), mustDate(t, "2025-11-15"), "11:00", nil)
	require.NoError(t, err)

	second, err := svc.CheckAvailability(context.Background(), mustDate(t, "2025-11-15"), "11:00", nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAlternativeSlots_DefaultLimit(t *testing.T) {
	svc := newTestService(nil)

	slots, err := svc.GetAlternativeSlots(context.Background(), mustDate(t, "2025-11-14"), 0)
	require.NoError(t, err)

	assert.Len(t, slots, domain.DefaultAlternativeSlotLimit)
}

func TestGetAlternativeSlots_NeverReturnsBlocked(t *testing.T) {
	blocked := []types.TimeString{"09:00", "10:00", "14:00"}
	svc := newTestService(map[string][]types.TimeString{
		"2025-11-14": blocked,
	})

	slots, err := svc.GetAlternativeSlots(context.Background(), mustDate(t, "2025-11-14"), domain.MaxSlotsPerDay)
	require.NoError(t, err)

	require.Len(t, slots, 33)
	for _, s := range slots {
		assert.NotContains(t, blocked, s)
	}
}

func TestGetAlternativeSlots_CapsLimit(t *testing.T) {
	svc := newTestService(nil)

	slots, err := svc.GetAlternativeSlots(context.Background(), mustDate(t, "2025-11-14"), 1000)
	require.NoError(t, err)

	// День содержит 36 отметок, больше вернуть нечего
	assert.Len(t, slots, 36)
}

func TestLoadMoreSlots_ReturnsOnlyNewSlots(t *testing.T) {
	svc := newTestService(nil)

	current := []types.TimeString{"09:00", "09:15", "09:30", "09:45", "10:00", "10:15"}

	more, err := svc.LoadMoreSlots(context.Background(), mustDate(t, "2025-11-14"), current, 6)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{
		"10:30", "10:45", "11:00", "11:15", "11:30", "11:45",
	}, more)

	for _, s := range more {
		assert.NotContains(t, current, s)
	}
}

func TestLoadMoreSlots_DefaultCount(t *testing.T) {
	svc := newTestService(nil)

	more, err := svc.LoadMoreSlots(context.Background(), mustDate(t, "2025-11-14"), nil, 0)
	require.NoError(t, err)

	assert.Len(t, more, domain.DefaultAdditionalSlotCount)
}

func TestLoadMoreSlots_ExhaustedDay(t *testing.T) {
	svc := newTestService(nil)

	all, err := svc.GetAlternativeSlots(context.Background(), mustDate(t, "2025-11-14"), domain.MaxSlotsPerDay)
	require.NoError(t, err)

	more, err := svc.LoadMoreSlots(context.Background(), mustDate(t, "2025-11-14"), all, 6)
	require.NoError(t, err)

	assert.Empty(t, more)
}
