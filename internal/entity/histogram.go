package entity

import "time"

// Bucket is identified by its end timestamp; it covers (End-delta, End]
type Bucket struct {
	End   time.Time
	Count int
}

// SentinelBucket stands for a keyword without any match
func SentinelBucket() Bucket {
	return Bucket{}
}

func (b Bucket) IsSentinel() bool {
	return b.End.IsZero() && b.Count == 0
}

type KeywordHistogram struct {
	Keyword string
	Buckets []Bucket
}

// Empty reports whether the histogram only carries the sentinel bucket
func (h *KeywordHistogram) Empty() bool {
	return len(h.Buckets) == 1 && h.Buckets[0].IsSentinel()
}

func (h *KeywordHistogram) Total() int {
	total := 0
	for _, b := range h.Buckets {
		total += b.Count
	}
	return total
}

// HistogramTable holds one histogram per keyword, in keyword list order
type HistogramTable struct {
	Start      time.Time
	Delta      time.Duration
	Histograms []KeywordHistogram
}

func (t *HistogramTable) Get(keyword string) (*KeywordHistogram, bool) {
	for i := range t.Histograms {
		if t.Histograms[i].Keyword == keyword {
			return &t.Histograms[i], true
		}
	}
	return nil, false
}
