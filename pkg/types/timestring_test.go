package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid morning time", value: "09:00", wantErr: false},
		{name: "valid afternoon time", value: "16:45", wantErr: false},
		{name: "midnight", value: "00:00", wantErr: false},
		{name: "empty string", value: "", wantErr: true},
		{name: "missing leading zero", value: "9:00", wantErr: true},
		{name: "out of range hour", value: "25:00", wantErr: true},
		{name: "out of range minute", value: "10:61", wantErr: true},
		{name: "garbage", value: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TimeString(tt.value).Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 11, 14, 10, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("10:30"), NewTimeString(moment))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:15")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:15"), ts)

	_, err = NewTimeStringFromString("bad")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_TotalMinutes(t *testing.T) {
	minutes, err := TimeString("10:30").TotalMinutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	minutes, err = TimeString("00:00").TotalMinutes()
	require.NoError(t, err)
	assert.Equal(t, 0, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	result, err := TimeString("10:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), result)

	result, err = TimeString("09:00").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:30"), result)

	_, err = TimeString("23:30").AddMinutes(45)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:45").IsAfter("09:15"))
	assert.False(t, TimeString("09:15").IsAfter("18:45"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("11:15")))
	assert.Equal(t, TimeString("11:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 11, 14, 16, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:30"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
