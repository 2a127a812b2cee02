package chart

import "github.com/led-ufc/carcara/pkg/geo"

// Bins divides the data range into n equal-width bins and counts samples per
// bin. The top edge of the last bin is inclusive. A constant data set
// collapses to a single bin holding every sample.
func Bins(data []float64, n int) (edges []float64, counts []int) {
	if len(data) == 0 || n <= 0 {
		return nil, nil
	}

	min, max := data[0], data[0]
	for _, v := range data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return []float64{min, max}, []int{len(data)}
	}

	width := (max - min) / float64(n)
	edges = make([]float64, n+1)
	for i := range edges {
		edges[i] = min + float64(i)*width
	}

	counts = make([]int, n)
	for _, v := range data {
		idx := int((v - min) / width)
		if idx >= n {
			idx = n - 1
		}
		counts[idx]++
	}
	return edges, counts
}

// HistogramOptions configures Histogram.
type HistogramOptions struct {
	Bins          int
	XLabels       int // 0 means one label per bin edge
	YLabels       int
	Decimals      int
	Extension     float64
	LabelDistance float64
	GridY         bool
	BarStyle      Style
}

// DefaultHistogramOptions mirrors the common defaults used by chart callers.
func DefaultHistogramOptions() HistogramOptions {
	return HistogramOptions{
		Bins:          10,
		YLabels:       5,
		Decimals:      1,
		LabelDistance: 10,
		BarStyle:      Style{Fill: "steelblue", Stroke: "black", StrokeWidth: 0.5},
	}
}

// Histogram lays out a histogram of values on the canvas: bars, axes, tick
// labels, and optional horizontal grid lines.
func Histogram(canvas Canvas, values []float64, opts HistogramOptions) Scene {
	sc := Scene{Canvas: canvas}

	edges, counts := Bins(values, opts.Bins)
	if len(counts) == 0 {
		return sc
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	barWidth := canvas.Width / float64(len(counts))
	o := canvas.Origin
	for i, c := range counts {
		h := float64(c) / float64(maxCount) * canvas.Height
		sc.Rects = append(sc.Rects, Rect{
			Origin: geo.Pt(o.X+float64(i)*barWidth, o.Y),
			Width:  barWidth,
			Height: h,
			Style:  opts.BarStyle,
		})
	}

	sc.Lines = append(sc.Lines, Axes(canvas, opts.Extension)...)

	xLabels := opts.XLabels
	if xLabels <= 0 {
		xLabels = len(edges)
	}
	sc.Labels = append(sc.Labels,
		AxisLabels(canvas, edges[0], edges[len(edges)-1], xLabels, AxisX, opts.LabelDistance, opts.Decimals)...)
	sc.Labels = append(sc.Labels,
		AxisLabels(canvas, 0, float64(maxCount), opts.YLabels, AxisY, opts.LabelDistance, 0)...)

	if opts.GridY {
		offsets := LabelPositions(0, canvas.Height, opts.YLabels)
		sc.Lines = append(sc.Lines, GridLines(canvas, offsets, AxisY)...)
	}

	return sc
}
