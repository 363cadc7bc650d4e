package histogram

import (
	"errors"
	"fmt"
	"logsearch/internal/entity"
	"sort"
	"time"
)

var ErrInvalidBucketWidth = errors.New("bucket width must be positive")

// walk is the moving bucket end of the forward walk from start+delta
type walk struct {
	end   time.Time
	delta time.Duration
}

// advance moves the walk forward until t falls into the current bucket.
// Whole-second widths jump straight to the bucket before t in Unix seconds,
// so the cost does not depend on how far t lies from start.
func (w walk) advance(t time.Time) walk {
	if w.delta%time.Second == 0 {
		d := int64(w.delta / time.Second)
		if gap := t.Unix() - w.end.Unix(); gap > d {
			steps := (gap - 1) / d
			w.end = time.Unix(w.end.Unix()+steps*d, int64(w.end.Nanosecond())).In(w.end.Location())
		}
	}
	for t.After(w.end) {
		w.end = w.end.Add(w.delta)
	}
	return w
}

// Aggregate counts, per keyword, the matched timestamps falling into each
// bucket of width delta. Bucket ends are start+delta, start+2*delta, ...; a
// timestamp belongs to the first bucket end not before it. Buckets without
// matches are left out. A keyword without matches gets the sentinel bucket.
func Aggregate(record *entity.MatchRecord, keywords []string, start time.Time, delta time.Duration) (*entity.HistogramTable, error) {
	if delta <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBucketWidth, delta)
	}

	table := &entity.HistogramTable{
		Start:      start,
		Delta:      delta,
		Histograms: make([]entity.KeywordHistogram, 0, len(keywords)),
	}

	for _, keyword := range keywords {
		table.Histograms = append(table.Histograms, entity.KeywordHistogram{
			Keyword: keyword,
			Buckets: bucketize(record.TimestampsWith(keyword), start, delta),
		})
	}

	return table, nil
}

func bucketize(timestamps []time.Time, start time.Time, delta time.Duration) []entity.Bucket {
	if len(timestamps) == 0 {
		return []entity.Bucket{entity.SentinelBucket()}
	}

	sorted := make([]time.Time, len(timestamps))
	copy(sorted, timestamps)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	var buckets []entity.Bucket
	w := walk{end: start.Add(delta), delta: delta}
	for _, t := range sorted {
		w = w.advance(t)
		if n := len(buckets); n > 0 && buckets[n-1].End.Equal(w.end) {
			buckets[n-1].Count++
			continue
		}
		buckets = append(buckets, entity.Bucket{End: w.end, Count: 1})
	}

	return buckets
}
