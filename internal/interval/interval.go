package interval

import (
	"errors"
	"fmt"
	"logsearch/internal/entity"
	"logsearch/internal/parser"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidTimeRange = errors.New("invalid time range")
	ErrEmptyLog         = errors.New("log is empty")
)

// Resolver fills in scan window bounds the user left unset
type Resolver struct {
	Parser parser.Parser
}

func NewResolver(p parser.Parser) *Resolver {
	return &Resolver{
		Parser: p,
	}
}

// Resolve builds the scan window from the first log line and the optional bounds.
// An unset start falls back to the first timestamp of the log, an unset finish to
// entity.FarFuture in the time zone of the log. With snap set both bounds are moved to midnight of their day.
func (r *Resolver) Resolve(firstLine string, start, finish *time.Time, snap bool) (entity.ScanWindow, error) {
	if firstLine == "" {
		return entity.ScanWindow{}, ErrEmptyLog
	}

	firstTime, err := r.Parser.ParseTimestamp(firstLine)
	if err != nil {
		return entity.ScanWindow{}, fmt.Errorf("could not parse first log entry: %w", err)
	}

	window := entity.NewScanWindow(firstTime, entity.FarFuture(firstTime.Location()))
	if start != nil {
		window.Start = *start
	}

	if finish != nil {
		if finish.Before(firstTime) {
			return entity.ScanWindow{}, fmt.Errorf("%w: finish %s is before the first log entry %s",
				ErrInvalidTimeRange, entity.FormatTimestamp(*finish), entity.FormatTimestamp(firstTime))
		}
		window.Finish = *finish
	}

	if start != nil && finish != nil && start.After(*finish) {
		return entity.ScanWindow{}, fmt.Errorf("%w: start %s is after finish %s",
			ErrInvalidTimeRange, entity.FormatTimestamp(*start), entity.FormatTimestamp(*finish))
	}

	if snap {
		window.Start = SnapToMidnight(window.Start)
		window.Finish = SnapToMidnight(window.Finish)
	}

	logrus.WithField("window", window.String()).Debug("Resolved scan window")

	return window, nil
}

// SnapToMidnight keeps the date of t and sets the time of day to 00:00:00.
// The command line flag for this is still called "noon"; it has always meant midnight.
func SnapToMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
