package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misterclayt0n/fittrack/internal/models"
)

func TestTodayUsesClockZone(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 20:00 UTC on the 1st is already the 2nd in UTC+9.
	clock := FixedClock(time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC).In(loc))
	assert.Equal(t, models.NewDate(2025, 5, 2), Today(clock))
}

func TestNewIDIsUniqueAndOrdered(t *testing.T) {
	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 100; i++ {
		id := NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		if prev != "" {
			assert.LessOrEqual(t, prev[:13], id[:13])
		}
		prev = id
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("Local")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = LoadLocation("UTC")
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = LoadLocation("Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome("~/data")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data"), got)

	got, err = ExpandHome("/tmp/x")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", got)
}
