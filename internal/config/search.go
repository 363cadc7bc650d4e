package config

import (
	"errors"
	"fmt"
	"logsearch/internal/parser"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var ErrMissingRequiredOption = errors.New("please, provide at least log file name AND list of keywords")

const DefaultBucketSeconds = 86400

// SearchOptions is the parsed command line of searchlog
type SearchOptions struct {
	LogFile             string
	Keywords            []string
	OutputFile          string
	CaseInsensitive     bool
	Start               *time.Time
	Finish              *time.Time
	SnapToMidnight      bool
	MakeHistogram       bool
	BucketSeconds       int
	PersistIntermediate bool
	GraphsDir           string
	Terminal            bool
	Publish             string
	Debug               bool
}

func (o *SearchOptions) BucketWidth() time.Duration {
	return time.Duration(o.BucketSeconds) * time.Second
}

func newSearchApp(env *Environment, o *SearchOptions, start, finish, keywords *string) *kingpin.Application {
	app := kingpin.New("searchlog", "Search a log file for keywords within a time window and build histograms of their occurrences.")
	app.HelpFlag.Short('h')

	app.Flag("log", "Path to the log file, or s3://bucket/key").Short('l').StringVar(&o.LogFile)
	app.Flag("keywords", "Comma separated list of the keywords").Short('k').StringVar(keywords)
	app.Flag("output-file", "Name of the output file, default <log dir>/results/<log>_only_<keywords>.txt").Short('o').StringVar(&o.OutputFile)
	app.Flag("insensitive", "Make the search case-insensitive").Short('i').BoolVar(&o.CaseInsensitive)
	app.Flag("start", `Search starts after this time point, default is the first timestamp in the log. Format: "dd.mm.yy hh:mm:ss"`).Short('s').StringVar(start)
	app.Flag("finish", `Search ends before this time point, default is open-ended. Format: "dd.mm.yy hh:mm:ss"`).Short('e').StringVar(finish)
	app.Flag("noon", "Set 00:00:00 as time for start and finish dates").Short('n').BoolVar(&o.SnapToMidnight)
	app.Flag("graph", "Make a histogram of keyword occurrences over time").Short('g').BoolVar(&o.MakeHistogram)
	app.Flag("delta", "Time interval for calculating the histogram, sec").Short('d').Default(strconv.Itoa(DefaultBucketSeconds)).IntVar(&o.BucketSeconds)
	app.Flag("write", "Write intermediate results to files").Short('w').BoolVar(&o.PersistIntermediate)
	app.Flag("graphs-dir", "Directory for histogram images").Default(env.GraphsDir).StringVar(&o.GraphsDir)
	app.Flag("terminal", "Also print histograms to the terminal").BoolVar(&o.Terminal)
	app.Flag("publish", "Upload produced files to s3://bucket/prefix").StringVar(&o.Publish)
	app.Flag("debug", "Enable debug logging").Default(strconv.FormatBool(env.Debug)).BoolVar(&o.Debug)

	return withEnvironmentUsage(app)
}

// ParseSearchArgs parses the searchlog command line. Malformed start or finish
// times are not fatal: they are reported and left unset.
func ParseSearchArgs(args []string, env *Environment, p *parser.LineParser) (*SearchOptions, error) {
	var o SearchOptions
	var start, finish, keywords string

	app := newSearchApp(env, &o, &start, &finish, &keywords)
	if _, err := app.Parse(args); err != nil {
		return nil, err
	}

	o.Keywords = SplitKeywords(keywords)
	if o.LogFile == "" || len(o.Keywords) == 0 {
		return nil, ErrMissingRequiredOption
	}

	// Keywords are stored the way they are matched
	if o.CaseInsensitive {
		for i, k := range o.Keywords {
			o.Keywords[i] = strings.ToLower(k)
		}
	}
	o.Keywords = uniqueKeywords(o.Keywords)

	if o.BucketSeconds <= 0 {
		return nil, fmt.Errorf("delta must be a positive number of seconds, got %d", o.BucketSeconds)
	}

	o.Start = parseBound(p, start, "Start time hasn't been set up correctly. Using first log entry time instead")
	o.Finish = parseBound(p, finish, "Finish time hasn't been set up correctly. Using open-ended finish instead")

	return &o, nil
}

func parseBound(p *parser.LineParser, arg string, warning string) *time.Time {
	if arg == "" {
		return nil
	}
	ts, err := p.ParseTimeArgument(arg)
	if err != nil {
		log.WithError(err).Warn(warning)
		return nil
	}
	return &ts
}

// SplitKeywords splits a comma separated list, dropping blanks
func SplitKeywords(list string) []string {
	var keywords []string
	for _, k := range strings.Split(list, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// uniqueKeywords drops repeated keywords, keeping the first occurrence
func uniqueKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	unique := keywords[:0]
	for _, k := range keywords {
		if !seen[k] {
			seen[k] = true
			unique = append(unique, k)
		}
	}
	return unique
}
