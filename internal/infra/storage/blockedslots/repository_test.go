package blockedslots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomspera05/NH-BookingService/internal/domain"
	"github.com/tomspera05/NH-BookingService/pkg/types"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, value)
	require.NoError(t, err)
	return date
}

func TestIsBlocked_DefaultTable(t *testing.T) {
	repo := NewRepository()

	blocked, err := repo.IsBlocked(context.Background(), mustDate(t, "2025-11-14"), "10:00")
	require.NoError(t, err)
	assert.True(t, blocked)

	blocked, err = repo.IsBlocked(context.Background(), mustDate(t, "2025-11-14"), "09:00")
	require.NoError(t, err)
	assert.False(t, blocked)

	// Тот же час на другую дату свободен
	blocked, err = repo.IsBlocked(context.Background(), mustDate(t, "2025-11-16"), "10:00")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestGetByDate(t *testing.T) {
	repo := NewRepositoryWithSlots([]string{
		"2025-11-14 10:00",
		"2025-11-14 16:30",
		"2025-11-15 11:00",
	})

	slots, err := repo.GetByDate(context.Background(), mustDate(t, "2025-11-14"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []types.TimeString{"10:00", "16:30"}, slots)

	slots, err = repo.GetByDate(context.Background(), mustDate(t, "2025-11-16"))
	require.NoError(t, err)
	assert.Empty(t, slots)
}
