package entity

import "time"

// Match holds the keywords found by the scan at one timestamp
type Match struct {
	Timestamp time.Time
	Keywords  []string
}

func (m *Match) HasKeyword(keyword string) bool {
	for _, k := range m.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

// MatchRecord maps timestamps to the keywords matched there. Entries keep the
// order in which their timestamp was first seen. Lines sharing a timestamp are
// merged into the same entry.
type MatchRecord struct {
	matches []*Match
	index   map[int64]int
	Lines   int
}

func NewMatchRecord() *MatchRecord {
	return &MatchRecord{
		index: make(map[int64]int),
	}
}

// Add records one matched line
func (r *MatchRecord) Add(t time.Time, keyword string) {
	r.Lines++

	key := t.Unix()
	if i, ok := r.index[key]; ok {
		if !r.matches[i].HasKeyword(keyword) {
			r.matches[i].Keywords = append(r.matches[i].Keywords, keyword)
		}
		return
	}

	r.index[key] = len(r.matches)
	r.matches = append(r.matches, &Match{
		Timestamp: t,
		Keywords:  []string{keyword},
	})
}

// Len is the number of distinct timestamps
func (r *MatchRecord) Len() int {
	return len(r.matches)
}

func (r *MatchRecord) Get(t time.Time) (*Match, bool) {
	i, ok := r.index[t.Unix()]
	if !ok {
		return nil, false
	}
	return r.matches[i], true
}

func (r *MatchRecord) Matches() []*Match {
	return r.matches
}

// TimestampsWith returns, in record order, every timestamp whose keyword set contains keyword
func (r *MatchRecord) TimestampsWith(keyword string) []time.Time {
	var timestamps []time.Time
	for _, m := range r.matches {
		if m.HasKeyword(keyword) {
			timestamps = append(timestamps, m.Timestamp)
		}
	}
	return timestamps
}
