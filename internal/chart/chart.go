// Package chart renders revenue rows as a PNG bar chart.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/diewo77/salesreport/internal/models"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when there are no rows to plot.
var ErrNoData = errors.New("no revenue rows to plot")

var skyBlue = drawing.Color{R: 135, G: 206, B: 235, A: 255}

// Options controls the chart labels and size in pixels.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  int
	Height int
}

// DefaultOptions returns the standard revenue chart layout.
func DefaultOptions() Options {
	return Options{
		Title:  "Total Revenue by Product",
		XLabel: "Product",
		YLabel: "Revenue ($)",
		Width:  600,
		Height: 400,
	}
}

// Render writes a PNG bar chart with one bar per row to w.
func Render(w io.Writer, rows []models.RevenueRow, opts Options) error {
	if len(rows) == 0 {
		return ErrNoData
	}
	bars := make([]chart.Value, 0, len(rows))
	var top float64
	for _, r := range rows {
		bars = append(bars, chart.Value{
			Label: r.Product,
			Value: r.Revenue,
			Style: chart.Style{FillColor: skyBlue, StrokeColor: skyBlue},
		})
		top = math.Max(top, r.Revenue)
	}

	graph := chart.BarChart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 30, Right: 20, Bottom: 30},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: axisMax(top)},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars:     bars,
		Elements: []chart.Renderable{axisTitles(opts)},
	}
	return graph.Render(chart.PNG, w)
}

// RenderFile writes the chart to path, replacing any existing file.
func RenderFile(path string, rows []models.RevenueRow, opts Options) (err error) {
	if len(rows) == 0 {
		return ErrNoData
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Render(f, rows, opts)
}

// axisMax rounds v up to a readable axis bound with some headroom.
func axisMax(v float64) float64 {
	if v <= 0 {
		return 1
	}
	v *= 1.1
	step := math.Pow(10, math.Floor(math.Log10(v)))
	return math.Ceil(v/step) * step
}

// axisTitles draws the x title under the bar labels and the rotated y title
// along the left edge.
func axisTitles(opts Options) chart.Renderable {
	return func(r chart.Renderer, _ chart.Box, defaults chart.Style) {
		style := chart.Style{FontSize: 10, FontColor: drawing.ColorBlack}.InheritFrom(defaults)
		style.WriteTextOptionsToRenderer(r)

		if opts.XLabel != "" {
			tb := r.MeasureText(opts.XLabel)
			r.Text(opts.XLabel, (opts.Width-tb.Width())/2, opts.Height-8)
		}
		if opts.YLabel != "" {
			tb := r.MeasureText(opts.YLabel)
			r.SetTextRotation(-math.Pi / 2)
			r.Text(opts.YLabel, 14, (opts.Height+tb.Width())/2)
			r.ClearTextRotation()
		}
	}
}
