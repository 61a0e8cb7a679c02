// Package render draws chart descriptions to image files with gonum/plot.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/ukaji3/snowplot-go/pkg/snowplot/models"
)

// Figure and text sizes.
const (
	DefaultWidth  = 12 * vg.Inch
	DefaultHeight = 8 * vg.Inch

	titleFontSize  = 15
	xLabelFontSize = 10
	yLabelFontSize = 11
	lineWidth      = 2
)

var thresholdColor = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// Options configures the renderer.
type Options struct {
	// Width and Height are the image size. Zero selects the defaults.
	Width, Height vg.Length
	// DryRun renders in memory without writing the file.
	DryRun bool
}

// PNG renders charts to image files. The format follows the file extension.
type PNG struct {
	opts Options
}

// New creates a renderer.
func New(opts Options) *PNG {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	return &PNG{opts: opts}
}

// Render draws chart and saves it to path.
func (r *PNG) Render(chart *models.Chart, path string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("render %s: %v", chart.Name, rec)
		}
	}()

	p, err := Plot(chart)
	if err != nil {
		return fmt.Errorf("render %s: %w", chart.Name, err)
	}

	if r.opts.DryRun {
		w, err := p.WriterTo(r.opts.Width, r.opts.Height, "png")
		if err != nil {
			return err
		}
		_, err = w.WriteTo(io.Discard)
		return err
	}

	return p.Save(r.opts.Width, r.opts.Height, path)
}

// Plot builds the gonum plot of chart.
func Plot(chart *models.Chart) (*plot.Plot, error) {
	if chart.LogScale && chart.YAxisRange[0] <= 0 {
		return nil, errors.New("log scale needs a positive lower y bound")
	}

	p := plot.New()
	p.Title.Text = chart.Title
	p.Title.TextStyle.Font.Size = vg.Points(titleFontSize)
	p.X.Label.Text = chart.XAxisTitle
	p.X.Label.TextStyle.Font.Size = vg.Points(xLabelFontSize)
	p.Y.Label.Text = chart.YAxisTitle
	p.Y.Label.TextStyle.Font.Size = vg.Points(yLabelFontSize)

	if len(chart.XTicks) > 0 {
		ticks := make([]plot.Tick, len(chart.XTicks))
		for i, t := range chart.XTicks {
			ticks[i] = plot.Tick{Value: t.Value, Label: t.Label}
		}
		p.X.Tick.Marker = plot.ConstantTicks(ticks)
	}
	if chart.LogScale {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	for _, s := range chart.Series {
		style := draw.LineStyle{
			Color: s.Color,
			Width: vg.Points(lineWidth),
		}
		for _, seg := range segments(s.X, s.Y, chart.LogScale) {
			line, err := plotter.NewLine(seg)
			if err != nil {
				return nil, fmt.Errorf("series %q: %w", s.Name, err)
			}
			line.LineStyle = style
			p.Add(line)
		}
		p.Legend.Add(s.Name, &plotter.Line{LineStyle: style})
	}
	p.Legend.Top = false
	p.Legend.Left = true
	p.Legend.YOffs = vg.Points(4)
	p.Legend.XOffs = vg.Points(4)

	if chart.Threshold != nil {
		level := *chart.Threshold
		f := plotter.NewFunction(func(float64) float64 { return level })
		f.Color = thresholdColor
		f.Width = vg.Points(1)
		f.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
		p.Add(f)
	}

	// Fixed bounds override the ranges collected by Add.
	p.X.Min, p.X.Max = chart.XAxisRange[0], chart.XAxisRange[1]
	p.Y.Min, p.Y.Max = chart.YAxisRange[0], chart.YAxisRange[1]

	return p, nil
}
