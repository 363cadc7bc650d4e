package config

import (
	"fmt"
	"logsearch/internal/parser"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// CreateOptions is the parsed command line of createlog
type CreateOptions struct {
	File     string
	Keywords []string
	Lines    int
	Time     time.Time
	MinWords int
	MaxWords int
	Delta    int
	Dict     string
	Seed     int64
	Debug    bool
}

// ParseCreateArgs parses the createlog command line. now is used when the
// first time point is missing or malformed.
func ParseCreateArgs(args []string, env *Environment, p *parser.LineParser, now time.Time) (*CreateOptions, error) {
	var o CreateOptions
	var keywords, startTime string

	app := kingpin.New("createlog", "Generate a log file with random words and keywords for testing purposes.")
	app.HelpFlag.Short('h')
	withEnvironmentUsage(app)

	app.Flag("file", "Path and name of the output file").Short('f').StringVar(&o.File)
	app.Flag("keywords", "Comma separated list of the keywords to be included in the log").Short('k').StringVar(&keywords)
	app.Flag("lines", "Number of lines in the log").Short('n').Default("10000").IntVar(&o.Lines)
	app.Flag("time", `First time point of the log, default is the current time. Format: "dd.mm.yy hh:mm:ss"`).Short('t').StringVar(&startTime)
	app.Flag("minwords", "Minimum number of words in one log entry").Short('s').Default("2").IntVar(&o.MinWords)
	app.Flag("maxwords", "Maximum number of words in one log entry").Short('l').Default("5").IntVar(&o.MaxWords)
	app.Flag("delta", "Maximum time interval between log entries, in seconds").Short('d').Default("600").IntVar(&o.Delta)
	app.Flag("dict", "Word list, one word per line; default is the built-in dictionary").StringVar(&o.Dict)
	app.Flag("seed", "Random seed, default is time based").Default("0").Int64Var(&o.Seed)
	app.Flag("debug", "Enable debug logging").Default(fmt.Sprint(env.Debug)).BoolVar(&o.Debug)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}

	o.Keywords = SplitKeywords(keywords)
	if o.File == "" || len(o.Keywords) == 0 {
		return nil, ErrMissingRequiredOption
	}
	if o.Lines < 0 {
		return nil, fmt.Errorf("lines must not be negative, got %d", o.Lines)
	}
	if o.MinWords < 0 || o.MaxWords <= o.MinWords {
		return nil, fmt.Errorf("maxwords (%d) must be greater than minwords (%d)", o.MaxWords, o.MinWords)
	}
	if o.Delta <= 10 {
		return nil, fmt.Errorf("delta must be greater than 10 seconds, got %d", o.Delta)
	}

	o.Time = now
	if startTime != "" {
		ts, err := p.ParseTimeArgument(startTime)
		if err != nil {
			log.WithError(err).Warn("Time hasn't been set up correctly. Using current time instead")
		} else {
			o.Time = ts
		}
	}
	if o.Seed == 0 {
		o.Seed = now.UnixNano()
	}

	return &o, nil
}
