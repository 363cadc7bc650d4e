package render

import (
	"fmt"
	"logsearch/internal/entity"
	"time"
)

// Renderer draws the histogram of one keyword
type Renderer interface {
	Render(h entity.KeywordHistogram, delta time.Duration) error
}

// Title describes the plotted range, e.g.
// 'ERROR' in (Oct 14 2014 10:05:00 - Oct 14 10:15:00) with delta = 5 min
func Title(h entity.KeywordHistogram, delta time.Duration) string {
	if h.Empty() || len(h.Buckets) == 0 {
		return fmt.Sprintf("'%s' has no matches", h.Keyword)
	}
	first := h.Buckets[0].End
	last := h.Buckets[len(h.Buckets)-1].End
	return fmt.Sprintf("'%s' in (%s - %s) with delta = %d min",
		h.Keyword,
		entity.FormatTimestamp(first),
		last.Format("Jan 02 15:04:05"),
		int64(delta/time.Minute))
}
