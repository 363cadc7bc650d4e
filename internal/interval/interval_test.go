package interval

import (
	"logsearch/internal/entity"
	"logsearch/internal/parser"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const firstLine = "Oct 14 2014 17:02:15|User 124935 LoggedOut\n"

var firstTime = time.Date(2014, time.October, 14, 17, 2, 15, 0, time.UTC)

func TestResolveDefaults(t *testing.T) {
	r := NewResolver(parser.NewLineParser(time.UTC))

	window, err := r.Resolve(firstLine, nil, nil, false)
	require.NoError(t, err)
	assert.Equal(t, firstTime, window.Start)
	assert.Equal(t, entity.FarFuture(time.UTC), window.Finish)
}

func TestResolveExplicitBounds(t *testing.T) {
	r := NewResolver(parser.NewLineParser(time.UTC))
	start := time.Date(2014, time.October, 15, 0, 0, 0, 0, time.UTC)
	finish := time.Date(2014, time.October, 20, 12, 0, 0, 0, time.UTC)

	window, err := r.Resolve(firstLine, &start, &finish, false)
	require.NoError(t, err)
	assert.Equal(t, start, window.Start)
	assert.Equal(t, finish, window.Finish)
}

func TestResolveFinishBeforeLog(t *testing.T) {
	r := NewResolver(parser.NewLineParser(time.UTC))
	finish := firstTime.Add(-time.Second)

	_, err := r.Resolve(firstLine, nil, &finish, false)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestResolveStartAfterFinish(t *testing.T) {
	r := NewResolver(parser.NewLineParser(time.UTC))
	start := firstTime.Add(48 * time.Hour)
	finish := firstTime.Add(24 * time.Hour)

	_, err := r.Resolve(firstLine, &start, &finish, false)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestResolveEmptyLog(t *testing.T) {
	r := NewResolver(parser.NewLineParser(time.UTC))

	_, err := r.Resolve("", nil, nil, false)
	assert.ErrorIs(t, err, ErrEmptyLog)
}

func TestResolveMalformedFirstLine(t *testing.T) {
	r := NewResolver(parser.NewLineParser(time.UTC))

	_, err := r.Resolve("garbage\n", nil, nil, false)
	assert.ErrorIs(t, err, parser.ErrMalformedTimestamp)
}

// The flag is named "noon" but snaps to 00:00:00. Keep it that way.
func TestResolveSnapsToMidnightNotNoon(t *testing.T) {
	r := NewResolver(parser.NewLineParser(time.UTC))

	window, err := r.Resolve(firstLine, nil, nil, true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2014, time.October, 14, 0, 0, 0, 0, time.UTC), window.Start)
	assert.Equal(t, 0, window.Finish.Hour())
	assert.Equal(t, 0, window.Finish.Minute())
	assert.Equal(t, 0, window.Finish.Second())
	assert.Equal(t, 3000, window.Finish.Year())
	assert.Equal(t, time.December, window.Finish.Month())
	assert.Equal(t, 31, window.Finish.Day())
}

func TestSnapToMidnight(t *testing.T) {
	ts := time.Date(2014, time.October, 16, 12, 0, 5, 0, time.UTC)
	assert.Equal(t, time.Date(2014, time.October, 16, 0, 0, 0, 0, time.UTC), SnapToMidnight(ts))
}

func TestResolveOpenFinishInLogTimeZone(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*3600)
	r := NewResolver(parser.NewLineParser(zone))

	window, err := r.Resolve(firstLine, nil, nil, true)
	require.NoError(t, err)
	assert.True(t, window.Finish.Equal(time.Date(3000, time.December, 31, 0, 0, 0, 0, zone)))
	assert.True(t, window.Start.Equal(time.Date(2014, time.October, 14, 0, 0, 0, 0, zone)))
}
