package render

import (
	"fmt"
	"io"
	"logsearch/internal/entity"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Background(lipgloss.Color("39"))
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// TerminalRenderer prints a bar chart per keyword, one bar per non-empty bucket
type TerminalRenderer struct {
	out    io.Writer
	width  int
	height int
}

func NewTerminalRenderer(out io.Writer, width, height int) *TerminalRenderer {
	return &TerminalRenderer{
		out:    out,
		width:  width,
		height: height,
	}
}

func (r *TerminalRenderer) Render(h entity.KeywordHistogram, delta time.Duration) error {
	if _, err := fmt.Fprintln(r.out, titleStyle.Render(Title(h, delta))); err != nil {
		return err
	}
	if h.Empty() {
		return nil
	}

	buckets := h.Buckets
	if maxBars := r.width / 2; len(buckets) > maxBars && maxBars > 0 {
		buckets = buckets[len(buckets)-maxBars:]
	}

	bc := barchart.New(r.width, r.height,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)
	maxCount, total := 0, 0
	for _, b := range buckets {
		total += b.Count
		bc.Push(barchart.BarData{
			Label: "",
			Values: []barchart.BarValue{
				{Name: h.Keyword, Value: float64(b.Count), Style: barStyle},
			},
		})
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	bc.Draw()

	footer := fmt.Sprintf("%s .. %s  max %d, total %d",
		buckets[0].End.Format("Jan 02 15:04"),
		buckets[len(buckets)-1].End.Format("Jan 02 15:04"),
		maxCount, total)
	if len(buckets) < len(h.Buckets) {
		footer += fmt.Sprintf(" (last %d of %d buckets, total %d)", len(buckets), len(h.Buckets), h.Total())
	}

	_, err := fmt.Fprintf(r.out, "%s\n%s\n", bc.View(), axisStyle.Render(footer))
	return err
}
