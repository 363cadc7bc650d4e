package config

import (
	"bytes"
	"logsearch/internal/parser"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2014, time.October, 27, 12, 0, 0, 0, time.UTC)

func testEnvironment() *Environment {
	return &Environment{GraphsDir: "graphs", AwsRegion: "eu-central-1", Timezone: "UTC"}
}

func TestParseSearchArgsDefaults(t *testing.T) {
	o, err := ParseSearchArgs([]string{"-l", "logs/log_test.txt", "-k", "ERROR,Login"}, testEnvironment(), parser.NewLineParser(time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "logs/log_test.txt", o.LogFile)
	assert.Equal(t, []string{"ERROR", "Login"}, o.Keywords)
	assert.Equal(t, "", o.OutputFile)
	assert.False(t, o.CaseInsensitive)
	assert.Nil(t, o.Start)
	assert.Nil(t, o.Finish)
	assert.False(t, o.SnapToMidnight)
	assert.False(t, o.MakeHistogram)
	assert.Equal(t, DefaultBucketSeconds, o.BucketSeconds)
	assert.Equal(t, 24*time.Hour, o.BucketWidth())
	assert.False(t, o.PersistIntermediate)
	assert.Equal(t, "graphs", o.GraphsDir)
	assert.False(t, o.Debug)
}

func TestParseSearchArgsAll(t *testing.T) {
	args := []string{
		"--log=logs/log_test.txt", "--keywords=ERROR, Login", "-o", "out.txt", "-i",
		"-s", "30.10.14 10:00:00", "-e", "31.10.2014 10:00:00", "-n", "-g", "-d", "3600", "-w",
		"--terminal", "--publish=s3://bucket/prefix", "--debug",
	}
	o, err := ParseSearchArgs(args, testEnvironment(), parser.NewLineParser(time.UTC))
	require.NoError(t, err)

	assert.Equal(t, []string{"error", "login"}, o.Keywords)
	assert.Equal(t, "out.txt", o.OutputFile)
	assert.True(t, o.CaseInsensitive)
	require.NotNil(t, o.Start)
	require.NotNil(t, o.Finish)
	assert.Equal(t, time.Date(2014, 10, 30, 10, 0, 0, 0, time.UTC), *o.Start)
	assert.Equal(t, time.Date(2014, 10, 31, 10, 0, 0, 0, time.UTC), *o.Finish)
	assert.True(t, o.SnapToMidnight)
	assert.True(t, o.MakeHistogram)
	assert.Equal(t, time.Hour, o.BucketWidth())
	assert.True(t, o.PersistIntermediate)
	assert.True(t, o.Terminal)
	assert.Equal(t, "s3://bucket/prefix", o.Publish)
	assert.True(t, o.Debug)
}

func TestParseSearchArgsMissingRequired(t *testing.T) {
	p := parser.NewLineParser(time.UTC)

	_, err := ParseSearchArgs([]string{"-k", "ERROR"}, testEnvironment(), p)
	assert.ErrorIs(t, err, ErrMissingRequiredOption)

	_, err = ParseSearchArgs([]string{"-l", "log.txt"}, testEnvironment(), p)
	assert.ErrorIs(t, err, ErrMissingRequiredOption)

	_, err = ParseSearchArgs([]string{"-l", "log.txt", "-k", " , "}, testEnvironment(), p)
	assert.ErrorIs(t, err, ErrMissingRequiredOption)
}

func TestParseSearchArgsMalformedTimeFallsBack(t *testing.T) {
	o, err := ParseSearchArgs([]string{"-l", "log.txt", "-k", "ERROR", "-s", "yesterday", "-e", "2014-10-31"}, testEnvironment(), parser.NewLineParser(time.UTC))
	require.NoError(t, err)
	assert.Nil(t, o.Start)
	assert.Nil(t, o.Finish)
}

func TestParseSearchArgsInvalidDelta(t *testing.T) {
	_, err := ParseSearchArgs([]string{"-l", "log.txt", "-k", "ERROR", "-d", "0"}, testEnvironment(), parser.NewLineParser(time.UTC))
	assert.Error(t, err)
}

func TestParseCreateArgsDefaults(t *testing.T) {
	o, err := ParseCreateArgs([]string{"-f", "logs/log_test.txt", "-k", "ERROR,Login,LoggedOut"}, testEnvironment(), parser.NewLineParser(time.UTC), now)
	require.NoError(t, err)

	assert.Equal(t, "logs/log_test.txt", o.File)
	assert.Equal(t, []string{"ERROR", "Login", "LoggedOut"}, o.Keywords)
	assert.Equal(t, 10000, o.Lines)
	assert.Equal(t, now, o.Time)
	assert.Equal(t, 2, o.MinWords)
	assert.Equal(t, 5, o.MaxWords)
	assert.Equal(t, 600, o.Delta)
	assert.Equal(t, now.UnixNano(), o.Seed)
}

func TestParseCreateArgs(t *testing.T) {
	args := []string{"-f", "log.txt", "-k", "ERROR", "-n", "50", "-t", "14.10.14 17:02:15", "-s", "1", "-l", "3", "-d", "86400", "--seed", "42"}
	o, err := ParseCreateArgs(args, testEnvironment(), parser.NewLineParser(time.UTC), now)
	require.NoError(t, err)

	assert.Equal(t, 50, o.Lines)
	assert.Equal(t, time.Date(2014, 10, 14, 17, 2, 15, 0, time.UTC), o.Time)
	assert.Equal(t, 1, o.MinWords)
	assert.Equal(t, 3, o.MaxWords)
	assert.Equal(t, 86400, o.Delta)
	assert.Equal(t, int64(42), o.Seed)
}

func TestParseCreateArgsMalformedTimeUsesNow(t *testing.T) {
	o, err := ParseCreateArgs([]string{"-f", "log.txt", "-k", "ERROR", "-t", "soon"}, testEnvironment(), parser.NewLineParser(time.UTC), now)
	require.NoError(t, err)
	assert.Equal(t, now, o.Time)
}

func TestParseCreateArgsInvalid(t *testing.T) {
	p := parser.NewLineParser(time.UTC)

	_, err := ParseCreateArgs([]string{"-k", "ERROR"}, testEnvironment(), p, now)
	assert.ErrorIs(t, err, ErrMissingRequiredOption)

	_, err = ParseCreateArgs([]string{"-f", "log.txt", "-k", "ERROR", "-s", "5", "-l", "5"}, testEnvironment(), p, now)
	assert.Error(t, err)

	_, err = ParseCreateArgs([]string{"-f", "log.txt", "-k", "ERROR", "-d", "10"}, testEnvironment(), p, now)
	assert.Error(t, err)
}

func TestLoadEnvironment(t *testing.T) {
	os.Setenv("LOGSEARCH_DEBUG", "true")
	os.Setenv("LOGSEARCH_GRAPHS_DIR", "/tmp/graphs")
	os.Setenv("LOGSEARCH_TIMEZONE", "UTC")
	defer func() {
		os.Unsetenv("LOGSEARCH_DEBUG")
		os.Unsetenv("LOGSEARCH_GRAPHS_DIR")
		os.Unsetenv("LOGSEARCH_TIMEZONE")
	}()

	env, err := LoadEnvironment()
	require.NoError(t, err)
	assert.True(t, env.Debug)
	assert.Equal(t, "/tmp/graphs", env.GraphsDir)
	assert.Equal(t, "eu-central-1", env.AwsRegion)

	loc, err := env.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	o, err := ParseSearchArgs([]string{"-l", "log.txt", "-k", "ERROR"}, env, parser.NewLineParser(loc))
	require.NoError(t, err)
	assert.True(t, o.Debug)
	assert.Equal(t, "/tmp/graphs", o.GraphsDir)
}

func TestEnvironmentUnknownTimezone(t *testing.T) {
	env := testEnvironment()
	env.Timezone = "Mars/Olympus"
	_, err := env.Location()
	assert.Error(t, err)
}

func TestParseSearchArgsDropsRepeatedKeywords(t *testing.T) {
	p := parser.NewLineParser(time.UTC)

	o, err := ParseSearchArgs([]string{"-l", "log.txt", "-k", "ERROR,error,Login", "-i"}, testEnvironment(), p)
	require.NoError(t, err)
	assert.Equal(t, []string{"error", "login"}, o.Keywords)

	o, err = ParseSearchArgs([]string{"-l", "log.txt", "-k", "ERROR,error,ERROR"}, testEnvironment(), p)
	require.NoError(t, err)
	assert.Equal(t, []string{"ERROR", "error"}, o.Keywords)
}

func TestHelpListsEnvironment(t *testing.T) {
	usage, err := Usage()
	require.NoError(t, err)
	assert.Contains(t, usage, "LOGSEARCH_TIMEZONE")

	var o SearchOptions
	var start, finish, keywords string
	out := new(bytes.Buffer)
	app := newSearchApp(testEnvironment(), &o, &start, &finish, &keywords)
	app.UsageWriter(out)
	app.Usage(nil)

	assert.Contains(t, out.String(), "--keywords")
	assert.Contains(t, out.String(), "LOGSEARCH_GRAPHS_DIR")
}
