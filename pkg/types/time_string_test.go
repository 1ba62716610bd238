package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AutoSchool-BookingService/pkg/types"
)

func TestNewTimeString_DropsDateAndSeconds(t *testing.T) {
	parsed, err := time.Parse(time.RFC3339, "2025-10-15T09:05:42Z")
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("09:05"), types.NewTimeString(parsed))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := types.NewTimeStringFromString("18:30")
	require.NoError(t, err)
	assert.Equal(t, "18:30", ts.String())

	_, err = types.NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)

	_, err = types.NewTimeStringFromString("not a time")
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := types.NewTimeStringFromString("18:30")
	require.NoError(t, err)

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 18*60+30, minutes)
}
