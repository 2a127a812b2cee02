// Package build assembles drawable scenes from parsed chart specs. It is
// the shared pipeline behind the render command and the preview server.
package build

import (
	"fmt"

	"github.com/led-ufc/carcara/pkg/chart"
	"github.com/led-ufc/carcara/pkg/geo"
	"github.com/led-ufc/carcara/pkg/geoio"
	"github.com/led-ufc/carcara/pkg/render"
	"github.com/led-ufc/carcara/pkg/spec"
)

// Scene builds the scene a spec describes.
func Scene(s *spec.ChartSpec) (chart.Scene, error) {
	canvas := chart.Canvas{Origin: geo.Point2D{}, Width: s.Canvas.Width, Height: s.Canvas.Height}
	if canvas.Width <= 0 || canvas.Height <= 0 {
		canvas = chart.DefaultCanvas()
	}

	switch s.Type {
	case spec.TypeHistogram:
		return buildHistogram(canvas, s)
	case spec.TypeScatter:
		return buildScatter(canvas, s)
	case spec.TypeLine:
		return buildLine(canvas, s)
	case spec.TypeHeatmap:
		return buildHeatmap(canvas, s)
	case spec.TypeLabels:
		return buildLabels(s)
	default:
		return chart.Scene{}, fmt.Errorf("unknown chart type %q", s.Type)
	}
}

// LabelResults computes interior points for every WKT geometry in the spec.
func LabelResults(s *spec.ChartSpec) ([]geoio.LabelResult, error) {
	precision := s.Output.Precision
	if precision <= 0 {
		precision = geo.DefaultPrecision
	}

	var results []geoio.LabelResult
	for i, wkt := range s.Data.WKT {
		g, err := geoio.ParseWKT(wkt)
		if err != nil {
			return nil, fmt.Errorf("geometry %d: %w", i, err)
		}
		rs, err := geoio.InteriorPoints(g, precision)
		if err != nil {
			return nil, fmt.Errorf("geometry %d: %w", i, err)
		}
		results = append(results, rs...)
	}
	return results, nil
}

func buildHistogram(canvas chart.Canvas, s *spec.ChartSpec) (chart.Scene, error) {
	opts := chart.DefaultHistogramOptions()
	if s.Output.Bins > 0 {
		opts.Bins = s.Output.Bins
	}
	if s.Axes.YLabels > 0 {
		opts.YLabels = s.Axes.YLabels
	}
	if s.Axes.Decimals > 0 {
		opts.Decimals = s.Axes.Decimals
	}
	if s.Axes.Extension > 0 {
		opts.Extension = s.Axes.Extension
	}
	opts.GridY = s.Axes.GridY
	if s.Colors.Bar != "" {
		opts.BarStyle.Fill = s.Colors.Bar
	}
	return chart.Histogram(canvas, s.Data.Values, opts), nil
}

func buildScatter(canvas chart.Canvas, s *spec.ChartSpec) (chart.Scene, error) {
	opts := chart.DefaultScatterOptions()
	if s.Axes.XLabels > 0 {
		opts.XLabels = s.Axes.XLabels
	}
	if s.Axes.YLabels > 0 {
		opts.YLabels = s.Axes.YLabels
	}
	if s.Axes.Decimals > 0 {
		opts.Decimals = s.Axes.Decimals
	}
	if s.Axes.MarginX > 0 {
		opts.MarginX = s.Axes.MarginX
	}
	if s.Axes.MarginY > 0 {
		opts.MarginY = s.Axes.MarginY
	}
	opts.Extension = s.Axes.Extension
	if len(s.Colors.Gradient) >= 2 {
		stops, err := chart.ParseStops(s.Colors.Gradient)
		if err != nil {
			return chart.Scene{}, err
		}
		opts.Colors = gradientColors(s.Data.Y, stops)
	}
	return chart.Scatter(canvas, s.Data.X, s.Data.Y, opts)
}

// gradientColors maps each value onto the gradient over the series range.
func gradientColors(values []float64, stops []chart.RGBA) []chart.RGBA {
	min, max, _ := chart.RangeWithMargin(values, 0)
	colors := make([]chart.RGBA, len(values))
	for i, v := range values {
		colors[i] = chart.Gradient(v, min, max, stops)
	}
	return colors
}

func buildLine(canvas chart.Canvas, s *spec.ChartSpec) (chart.Scene, error) {
	opts := chart.DefaultLineOptions()
	opts.Smooth = s.Output.Smooth
	if s.Axes.XLabels > 0 {
		opts.XLabels = s.Axes.XLabels
	}
	if s.Axes.YLabels > 0 {
		opts.YLabels = s.Axes.YLabels
	}
	if s.Axes.Decimals > 0 {
		opts.Decimals = s.Axes.Decimals
	}
	if len(s.Colors.Series) > 0 {
		opts.SeriesColors = s.Colors.Series
	}

	xs := make([]chart.Series, len(s.Data.XSeries))
	ys := make([]chart.Series, len(s.Data.YSeries))
	for i := range s.Data.XSeries {
		xs[i] = chart.Series(s.Data.XSeries[i])
	}
	for i := range s.Data.YSeries {
		ys[i] = chart.Series(s.Data.YSeries[i])
	}
	return chart.LinePlot(canvas, xs, ys, opts)
}

func buildHeatmap(canvas chart.Canvas, s *spec.ChartSpec) (chart.Scene, error) {
	opts := chart.DefaultHeatmapOptions()
	if len(s.Colors.Gradient) >= 2 {
		stops, err := chart.ParseStops(s.Colors.Gradient)
		if err != nil {
			return chart.Scene{}, err
		}
		opts.Stops = stops
	}
	opts.RowLabels = s.Data.RowLabels
	opts.ColLabels = s.Data.ColLabels
	return chart.Heatmap(canvas, s.Data.Matrix, opts), nil
}

func buildLabels(s *spec.ChartSpec) (chart.Scene, error) {
	results, err := LabelResults(s)
	if err != nil {
		return chart.Scene{}, err
	}
	return render.LabelScene(results, 2), nil
}
