package parser

import "time"

// Parser extracts the timestamp header of a log line
type Parser interface {
	ParseTimestamp(line string) (time.Time, error)
}
