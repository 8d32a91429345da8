package timezone_test

import (
	"stayledger/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLocation(t *testing.T) {
	t.Cleanup(func() { _ = timezone.SetLocation("UTC") })

	require.NoError(t, timezone.SetLocation("Asia/Manila"))
	assert.Equal(t, "Asia/Manila", timezone.GetLocation().String())
	assert.Equal(t, "Asia/Manila", timezone.Now().Location().String())

	assert.Error(t, timezone.SetLocation("Mars/Olympus_Mons"))
	assert.Equal(t, "Asia/Manila", timezone.GetLocation().String())
}

func TestToAppTimeAndFormat(t *testing.T) {
	t.Cleanup(func() { _ = timezone.SetLocation("UTC") })

	require.NoError(t, timezone.SetLocation("Asia/Manila"))

	utc := time.Date(2025, 12, 31, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-01-01 04:00", timezone.Format(utc, "2006-01-02 15:04"))
	assert.True(t, timezone.ToAppTime(utc).Equal(utc))
}

func TestTodayAndCurrentMonth(t *testing.T) {
	today := timezone.Today()

	assert.False(t, today.IsZero())
	assert.True(t, timezone.CurrentMonth().Contains(today))
}
