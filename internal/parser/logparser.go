package parser

import (
	"errors"
	"fmt"
	"logsearch/internal/entity"
	"strings"
	"time"
)

var (
	ErrMalformedTimestamp    = errors.New("malformed timestamp")
	ErrMalformedTimeArgument = errors.New("malformed time argument")
)

// Accepted layouts for time arguments given on the command line
var timeArgumentLayouts = []string{
	"02.01.06 15:04:05",
	"02.01.2006 15:04:05",
	"02.01.06 15:04",
	"02.01.2006 15:04",
	"02.01.06",
	"02.01.2006",
}

type LineParser struct {
	location *time.Location
}

func NewLineParser(location *time.Location) *LineParser {
	if location == nil {
		location = time.Local
	}
	return &LineParser{
		location: location,
	}
}

// ParseTimestamp parses the header before the first delimiter of line
func (p *LineParser) ParseTimestamp(line string) (time.Time, error) {
	i := strings.Index(line, entity.HeaderDelimiter)
	if i < 0 {
		return time.Time{}, fmt.Errorf("%w: no delimiter in line %q", ErrMalformedTimestamp, line)
	}

	ts, err := time.ParseInLocation(entity.TimestampLayout, line[:i], p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrMalformedTimestamp, err)
	}
	return ts, nil
}

// ParseTimeArgument parses a "dd.mm.yy hh:mm:ss" style time
func (p *LineParser) ParseTimeArgument(arg string) (time.Time, error) {
	arg = strings.TrimSpace(arg)
	for _, layout := range timeArgumentLayouts {
		ts, err := time.ParseInLocation(layout, arg, p.location)
		if err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimeArgument, arg)
}
