package entity

import "time"

// TimestampLayout is the header format of every log line, e.g. "Oct 14 2014 17:02:15"
const TimestampLayout = "Jan 02 2006 15:04:05"

// HeaderDelimiter separates the timestamp header from the free-text body
const HeaderDelimiter = "|"

// FarFuture stands in for an open-ended finish bound in loc
func FarFuture(loc *time.Location) time.Time {
	return time.Date(3000, time.December, 31, 23, 59, 59, 0, loc)
}

// ScanWindow is the time range admitted during a scan. Both bounds are exclusive.
type ScanWindow struct {
	Start  time.Time
	Finish time.Time
}

func NewScanWindow(start, finish time.Time) ScanWindow {
	return ScanWindow{
		Start:  start,
		Finish: finish,
	}
}

// Unbounded admits every timestamp after the zero time and before FarFuture
func Unbounded() ScanWindow {
	return NewScanWindow(time.Time{}, FarFuture(time.UTC))
}

// Contains reports whether t lies strictly between Start and Finish
func (w ScanWindow) Contains(t time.Time) bool {
	return t.After(w.Start) && t.Before(w.Finish)
}

func (w ScanWindow) String() string {
	return w.Start.Format(TimestampLayout) + " - " + w.Finish.Format(TimestampLayout)
}

// FormatTimestamp renders t the way log headers are written
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
