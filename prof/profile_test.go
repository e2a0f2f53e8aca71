package prof

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackDisabledRecordsNothing(t *testing.T) {
	Enable(false)
	SnapshotAndReset()
	Track(time.Now(), "ignored")
	assert.Empty(t, SnapshotAndReset())
}

func TestTrackAndTotals(t *testing.T) {
	Enable(true)
	defer Enable(false)
	SnapshotAndReset()

	Track(time.Now().Add(-2*time.Millisecond), "a")
	Track(time.Now().Add(-5*time.Millisecond), "b")
	Track(time.Now().Add(-4*time.Millisecond), "a")

	entries := SnapshotAndReset()
	require.Len(t, entries, 3)
	assert.Empty(t, SnapshotAndReset())

	totals := Totals(entries)
	require.Len(t, totals, 2)
	assert.Equal(t, "a", totals[0].Label)
	assert.Equal(t, 2, totals[0].Calls)
	assert.Equal(t, "b", totals[1].Label)
	assert.GreaterOrEqual(t, totals[0].Dur, 6*time.Millisecond)
}
