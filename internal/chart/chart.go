// Package chart renders analysis results as PNG images.
package chart

import (
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Reminerva/Proyek-Data-Analysis/internal/pipeline"
	errs "github.com/Reminerva/Proyek-Data-Analysis/pkg/errors"
)

var (
	barFill     = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	segmentFill = color.RGBA{R: 60, G: 160, B: 90, A: 255}
)

// Writer saves report charts into a directory.
type Writer struct {
	dir string
}

// NewWriter creates a chart writer rooted at dir; the directory is
// created on first save.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteAll saves the standard chart set for a report and returns the
// paths written.
func (w *Writer) WriteAll(report *pipeline.Report) ([]string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, errs.Wrap(err, errs.ErrCodeChartFailed, "creating chart directory").
			WithContext("dir", w.dir)
	}

	saves := []struct {
		file string
		fn   func(string) error
	}{
		{"seller_cities.png", func(path string) error {
			return w.geoBars("Seller revenue by city", "City", report.SellerCities, path)
		}},
		{"customer_cities.png", func(path string) error {
			return w.geoBars("Customer spend by city", "City", report.CustomerCities, path)
		}},
		{"seller_states.png", func(path string) error {
			return w.geoBars("Seller revenue by state", "State", report.SellerStates, path)
		}},
		{"customer_states.png", func(path string) error {
			return w.geoBars("Customer spend by state", "State", report.CustomerStates, path)
		}},
		{"seller_segments.png", func(path string) error {
			return w.segmentBars("Seller segments", report.SellerSegments, path)
		}},
		{"customer_segments.png", func(path string) error {
			return w.segmentBars("Customer segments", report.CustomerSegments, path)
		}},
		{"top_sellers.png", func(path string) error {
			return w.sellerBars("Top sellers by revenue", report, path)
		}},
	}

	paths := make([]string, 0, len(saves))
	for _, s := range saves {
		path := filepath.Join(w.dir, s.file)
		if err := s.fn(path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (w *Writer) geoBars(title, axis string, rollups []pipeline.GeoRollup, path string) error {
	values := make(plotter.Values, len(rollups))
	labels := make([]string, len(rollups))
	for i, g := range rollups {
		values[i] = g.Total
		labels[i] = g.Name
	}
	return saveBars(title, axis, "Total (BRL)", values, labels, barFill, path)
}

func (w *Writer) segmentBars(title string, seg *pipeline.Segmentation, path string) error {
	values := make(plotter.Values, len(seg.Buckets))
	labels := make([]string, len(seg.Buckets))
	for i, b := range seg.Buckets {
		values[i] = float64(b.Count)
		labels[i] = b.Label
	}
	return saveBars(title, "Band", "Entities", values, labels, segmentFill, path)
}

// sellerBars renders the ten highest-revenue sellers as horizontal bars,
// which keeps the long hash ids readable.
func (w *Writer) sellerBars(title string, report *pipeline.Report, path string) error {
	sellers := report.TopSellers(10)
	values := make(plotter.Values, len(sellers))
	labels := make([]string, len(sellers))
	for i, s := range sellers {
		values[i] = s.Price.Sum
		id := s.SellerID
		if len(id) > 10 {
			id = id[:10]
		}
		labels[i] = id
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = "Revenue (BRL)"

	bars, err := plotter.NewBarChart(values, vg.Points(16))
	if err != nil {
		return errs.Wrap(err, errs.ErrCodeChartFailed, "building bar chart").
			WithContext("chart", title)
	}
	bars.Color = barFill
	bars.LineStyle.Width = vg.Length(0)
	bars.Horizontal = true
	p.Add(bars)

	p.NominalY(labels...)
	p.X.Min = 0

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return errs.Wrap(err, errs.ErrCodeChartFailed, "saving chart").
			WithContext("path", path)
	}
	return nil
}

func saveBars(title, xLabel, yLabel string, values plotter.Values, labels []string, fill color.Color, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return errs.Wrap(err, errs.ErrCodeChartFailed, "building bar chart").
			WithContext("chart", title)
	}
	bars.Color = fill
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight
	p.Y.Min = 0

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return errs.Wrap(err, errs.ErrCodeChartFailed, "saving chart").
			WithContext("path", path)
	}
	return nil
}
