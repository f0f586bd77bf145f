// File: services/availability/intervals_test.go
package availability

import (
	"testing"

	"glospa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mins(h, m int) int { return h*60 + m }

func TestParseClock(t *testing.T) {
	v, err := ParseClock("09:00")
	require.NoError(t, err)
	assert.Equal(t, mins(9, 0), v)

	v, err = ParseClock("17:30")
	require.NoError(t, err)
	assert.Equal(t, mins(17, 30), v)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
	_, err = ParseClock("09:61")
	assert.Error(t, err)
	_, err = ParseClock("nine")
	assert.Error(t, err)
}

func TestMergeIntervals(t *testing.T) {
	got := mergeIntervals([]models.Interval{
		{Start: mins(13, 0), End: mins(17, 0)},
		{Start: mins(9, 0), End: mins(12, 0)},
		{Start: mins(11, 0), End: mins(13, 0)},
	})
	assert.Equal(t, []models.Interval{{Start: mins(9, 0), End: mins(17, 0)}}, got)

	got = mergeIntervals([]models.Interval{
		{Start: mins(9, 0), End: mins(10, 0)},
		{Start: mins(11, 0), End: mins(12, 0)},
	})
	assert.Equal(t, []models.Interval{
		{Start: mins(9, 0), End: mins(10, 0)},
		{Start: mins(11, 0), End: mins(12, 0)},
	}, got)

	// Zero-width intervals vanish.
	assert.Nil(t, mergeIntervals([]models.Interval{{Start: mins(9, 0), End: mins(9, 0)}}))
}

func TestSubtractIntervalsBlockSplitsWindow(t *testing.T) {
	free := []models.Interval{{Start: mins(9, 0), End: mins(14, 0)}}
	blocks := []models.Interval{{Start: mins(10, 0), End: mins(11, 0)}}

	got := subtractIntervals(free, blocks)
	assert.Equal(t, []models.Interval{
		{Start: mins(9, 0), End: mins(10, 0)},
		{Start: mins(11, 0), End: mins(14, 0)},
	}, got)
}

func TestSubtractIntervalsBlockWinsPartialOverlap(t *testing.T) {
	free := []models.Interval{{Start: mins(9, 0), End: mins(12, 0)}}
	blocks := []models.Interval{{Start: mins(11, 0), End: mins(13, 0)}}

	got := subtractIntervals(free, blocks)
	assert.Equal(t, []models.Interval{{Start: mins(9, 0), End: mins(11, 0)}}, got)
}

func TestSubtractIntervalsFullCoverage(t *testing.T) {
	free := []models.Interval{{Start: mins(9, 0), End: mins(12, 0)}}
	blocks := []models.Interval{{Start: mins(8, 0), End: mins(13, 0)}}

	assert.Empty(t, subtractIntervals(free, blocks))
}

func TestFreeWindowsLayersRows(t *testing.T) {
	rows := []models.StaffSchedule{
		{ID: "a", StartTime: "09:00", EndTime: "13:00"},
		{ID: "b", StartTime: "13:00", EndTime: "17:00"},
		{ID: "c", StartTime: "12:00", EndTime: "13:00", IsBlocked: true},
	}

	got, err := FreeWindows(rows)
	require.NoError(t, err)
	assert.Equal(t, []models.Interval{
		{Start: mins(9, 0), End: mins(12, 0)},
		{Start: mins(13, 0), End: mins(17, 0)},
	}, got)
}

func TestFreeWindowsRejectsBadClock(t *testing.T) {
	_, err := FreeWindows([]models.StaffSchedule{
		{ID: "a", StartTime: "9am", EndTime: "17:00"},
	})
	assert.Error(t, err)
}
