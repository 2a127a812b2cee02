package chart

import "github.com/led-ufc/carcara/pkg/geo"

// linePalette cycles per-series stroke colors when the caller provides none.
var linePalette = []string{"steelblue", "indianred", "seagreen", "goldenrod", "slategray"}

// LineOptions configures LinePlot.
type LineOptions struct {
	Smooth         bool // sample a Catmull-Rom spline through the points
	SamplesPerSpan int  // spline samples per segment when Smooth is set
	StrokeWidth    float64
	SeriesColors   []string
	XLabels        int
	YLabels        int
	Decimals       int
	MarginX        float64
	MarginY        float64
	Extension      float64
	LabelDistance  float64
}

// DefaultLineOptions mirrors the common defaults used by chart callers.
func DefaultLineOptions() LineOptions {
	return LineOptions{
		SamplesPerSpan: 8,
		StrokeWidth:    1.5,
		XLabels:        5,
		YLabels:        5,
		Decimals:       1,
		MarginX:        5,
		MarginY:        5,
		LabelDistance:  10,
	}
}

// LinePlot lays out one polyline per series pair. Every series pair must
// have equal lengths; the shared X/Y range covers all series. With Smooth
// set, each polyline is replaced by a Catmull-Rom spline sampled through its
// mapped points, matching how curve plots are traced for path output.
func LinePlot(canvas Canvas, xSeries, ySeries []Series, opts LineOptions) (Scene, error) {
	sc := Scene{Canvas: canvas}
	if err := EqualLengths("lineplot", len(xSeries), len(ySeries)); err != nil {
		return sc, err
	}
	for i := range xSeries {
		if err := EqualLengths("lineplot series", len(xSeries[i]), len(ySeries[i])); err != nil {
			return sc, err
		}
	}

	allX := Flatten(xSeries)
	allY := Flatten(ySeries)
	m := NewMapper(canvas, allX, allY, opts.MarginX, opts.MarginY)

	for i := range xSeries {
		pts := make([]geo.Point2D, len(xSeries[i]))
		for j := range xSeries[i] {
			pts[j] = m.MapPoint(xSeries[i][j], ySeries[i][j])
		}
		if opts.Smooth && len(pts) > 2 {
			pts = geo.CatmullRomSpline(pts, opts.SamplesPerSpan, 0.5)
		}

		stroke := linePalette[i%len(linePalette)]
		if i < len(opts.SeriesColors) {
			stroke = opts.SeriesColors[i]
		}
		sc.Polys = append(sc.Polys, Poly{
			Points: pts,
			Style:  Style{Fill: "none", Stroke: stroke, StrokeWidth: opts.StrokeWidth},
		})
	}

	sc.Lines = append(sc.Lines, Axes(canvas, opts.Extension)...)
	sc.Labels = append(sc.Labels,
		AxisLabels(canvas, m.XMin, m.XMax, opts.XLabels, AxisX, opts.LabelDistance, opts.Decimals)...)
	sc.Labels = append(sc.Labels,
		AxisLabels(canvas, m.YMin, m.YMax, opts.YLabels, AxisY, opts.LabelDistance, opts.Decimals)...)

	return sc, nil
}
