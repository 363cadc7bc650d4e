package render

import (
	"fmt"
	"logsearch/internal/entity"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PNGRenderer writes one line-and-points plot per keyword to dir/hist_<keyword>.png
type PNGRenderer struct {
	dir    string
	width  vg.Length
	height vg.Length
}

func NewPNGRenderer(dir string) *PNGRenderer {
	return &PNGRenderer{
		dir:    dir,
		width:  8 * vg.Inch,
		height: 4 * vg.Inch,
	}
}

func (r *PNGRenderer) Path(keyword string) string {
	return filepath.Join(r.dir, "hist_"+keyword+".png")
}

// Render skips keywords without matches
func (r *PNGRenderer) Render(h entity.KeywordHistogram, delta time.Duration) error {
	if h.Empty() {
		log.WithField("keyword", h.Keyword).Debug("Nothing to plot")
		return nil
	}

	p := plot.New()
	p.Title.Text = Title(h, delta)
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Frequency"
	p.X.Tick.Marker = plot.TimeTicks{
		Format: "Jan 02\n15:04",
		Time: func(t float64) time.Time {
			return time.Unix(int64(t), 0)
		},
	}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(h.Buckets))
	for i, b := range h.Buckets {
		pts[i].X = float64(b.End.Unix())
		pts[i].Y = float64(b.Count)
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("could not build plot for %s: %v", h.Keyword, err)
	}
	line.Width = vg.Points(2)
	p.Add(line, points)

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("could not create %s: %v", r.dir, err)
	}
	path := r.Path(h.Keyword)
	if err := p.Save(r.width, r.height, path); err != nil {
		return fmt.Errorf("could not save plot %s: %v", path, err)
	}

	log.WithField("path", path).Info("Histogram written")
	return nil
}
