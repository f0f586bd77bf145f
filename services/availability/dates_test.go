// File: services/availability/dates_test.go
package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday.
var anchor = time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)

func TestResolveDateRelativeTokens(t *testing.T) {
	d, err := ResolveDate("today", anchor)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-11", DateString(d))

	d, err = ResolveDate("tomorrow", anchor)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-12", DateString(d))
}

func TestResolveDateWeekdayNames(t *testing.T) {
	// Friday is two days ahead of the Wednesday anchor.
	d, err := ResolveDate("friday", anchor)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-13", DateString(d))

	// The anchor's own weekday resolves to the anchor date, not next week.
	d, err = ResolveDate("wednesday", anchor)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-11", DateString(d))

	// A weekday just past wraps to next week.
	d, err = ResolveDate("Tuesday", anchor)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-17", DateString(d))
}

func TestResolveDateCalendarPassthrough(t *testing.T) {
	d, err := ResolveDate("2025-07-04", anchor)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-04", DateString(d))
}

func TestResolveDateUnrecognized(t *testing.T) {
	_, err := ResolveDate("someday", anchor)
	assert.Error(t, err)
}

func TestIsCalendarDate(t *testing.T) {
	assert.True(t, IsCalendarDate("2025-06-11"))
	assert.False(t, IsCalendarDate("friday"))
	assert.False(t, IsCalendarDate("tomorrow"))
}
