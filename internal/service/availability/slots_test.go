package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomspera05/NH-BookingService/pkg/types"
)

func TestEnumerateFreeSlots_NoBlocked(t *testing.T) {
	slots := enumerateFreeSlots(map[types.TimeString]struct{}{}, 6)

	assert.Equal(t, []types.TimeString{
		"09:00", "09:15", "09:30", "09:45", "10:00", "10:15",
	}, slots)
}

func TestEnumerateFreeSlots_SkipsBlocked(t *testing.T) {
	blocked := map[types.TimeString]struct{}{
		"09:15": {},
		"09:30": {},
	}

	slots := enumerateFreeSlots(blocked, 4)

	assert.Equal(t, []types.TimeString{
		"09:00", "09:45", "10:00", "10:15",
	}, slots)
}

func TestEnumerateFreeSlots_SkipsLunchHour(t *testing.T) {
	slots := enumerateFreeSlots(map[types.TimeString]struct{}{}, 100)

	// 9 рабочих часов по 4 отметки, час 13 отсутствует
	require.Len(t, slots, 36)
	for _, s := range slots {
		minutes, err := s.TotalMinutes()
		require.NoError(t, err)
		assert.False(t, minutes >= 13*60 && minutes < 14*60, "slot %s falls into lunch hour", s)
	}

	assert.Equal(t, types.TimeString("12:45"), slots[15])
	assert.Equal(t, types.TimeString("14:00"), slots[16])
}

func TestEnumerateFreeSlots_StopsAtLimit(t *testing.T) {
	slots := enumerateFreeSlots(map[types.TimeString]struct{}{}, 1)
	assert.Equal(t, []types.TimeString{"09:00"}, slots)
}

func TestFilterNewSlots(t *testing.T) {
	all := []types.TimeString{"09:00", "09:15", "09:30", "09:45", "10:00"}
	current := []types.TimeString{"09:00", "09:30"}

	assert.Equal(t, []types.TimeString{"09:15", "09:45"}, filterNewSlots(all, current, 2))
	assert.Equal(t, []types.TimeString{"09:15", "09:45", "10:00"}, filterNewSlots(all, current, 10))
	assert.Empty(t, filterNewSlots(all, all, 5))
}
