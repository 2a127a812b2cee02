package chart

// ScatterOptions configures Scatter.
type ScatterOptions struct {
	Radius        float64
	Radii         []float64 // optional per-point radii, overrides Radius
	Colors        []RGBA    // optional per-point fill colors
	XLabels       int
	YLabels       int
	Decimals      int
	MarginX       float64
	MarginY       float64
	Extension     float64
	LabelDistance float64
	PointStyle    Style
}

// DefaultScatterOptions mirrors the common defaults used by chart callers.
func DefaultScatterOptions() ScatterOptions {
	return ScatterOptions{
		Radius:        2,
		XLabels:       5,
		YLabels:       5,
		Decimals:      1,
		MarginX:       5,
		MarginY:       5,
		LabelDistance: 10,
		PointStyle:    Style{Fill: "steelblue"},
	}
}

// Scatter lays out a scatter plot of the paired x/y values on the canvas.
// X and Y must have equal lengths.
func Scatter(canvas Canvas, x, y []float64, opts ScatterOptions) (Scene, error) {
	sc := Scene{Canvas: canvas}
	if err := EqualLengths("scatter", len(x), len(y)); err != nil {
		return sc, err
	}

	m := NewMapper(canvas, x, y, opts.MarginX, opts.MarginY)

	for i := range x {
		r := opts.Radius
		if i < len(opts.Radii) {
			r = opts.Radii[i]
		}
		style := opts.PointStyle
		if i < len(opts.Colors) {
			style.Fill = opts.Colors[i].Hex()
		}
		sc.Circles = append(sc.Circles, Circle{
			Center: m.MapPoint(x[i], y[i]),
			Radius: r,
			Style:  style,
		})
	}

	sc.Lines = append(sc.Lines, Axes(canvas, opts.Extension)...)
	sc.Labels = append(sc.Labels,
		AxisLabels(canvas, m.XMin, m.XMax, opts.XLabels, AxisX, opts.LabelDistance, opts.Decimals)...)
	sc.Labels = append(sc.Labels,
		AxisLabels(canvas, m.YMin, m.YMax, opts.YLabels, AxisY, opts.LabelDistance, opts.Decimals)...)

	return sc, nil
}
