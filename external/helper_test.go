package external

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceDay = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func TestResolveWallClockAnchorsToReferenceDay(t *testing.T) {
	resolved := ResolveWallClock("07:00", referenceDay)
	require.NotNil(t, resolved)
	assert.Equal(t, time.Date(2025, 3, 14, 7, 0, 0, 0, time.UTC), *resolved)
}

func TestResolveWallClockToleratesPadding(t *testing.T) {
	resolved := ResolveWallClock(" 7 : 30 ", referenceDay)
	require.NotNil(t, resolved)
	assert.Equal(t, 7, resolved.Hour())
	assert.Equal(t, 30, resolved.Minute())
}

func TestResolveWallClockRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"", "7", "7:0:0", "seven:30", "07:3x", "N/A"} {
		assert.Nil(t, ResolveWallClock(input, referenceDay), "input %q", input)
	}
}

func TestResolveInstant(t *testing.T) {
	resolved := ResolveInstant("2025-03-14T07:15:00.123Z")
	require.NotNil(t, resolved)
	assert.Equal(t, 7, resolved.UTC().Hour())
	assert.Equal(t, 15, resolved.UTC().Minute())

	assert.Nil(t, ResolveInstant("07:15"))
	assert.Nil(t, ResolveInstant(""))
}

func TestWallClockDisplay(t *testing.T) {
	instant := time.Date(2025, 3, 14, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "09:05", WallClockDisplay(&instant))
	assert.Equal(t, "N/A", WallClockDisplay(nil))
}
