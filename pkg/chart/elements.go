package chart

import "github.com/led-ufc/carcara/pkg/geo"

// Axis selects the horizontal or vertical axis of a chart.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

var axisStyle = Style{Stroke: "black", StrokeWidth: 1}
var gridStyle = Style{Stroke: "lightgray", StrokeWidth: 0.5, Dash: "2,2"}

// Axes returns the X and Y axis lines along the bottom and left canvas
// edges, extended past the canvas by the given amount on both ends.
func Axes(canvas Canvas, extension float64) []Line {
	o := canvas.Origin
	return []Line{
		{
			Start: geo.Pt(o.X-extension, o.Y),
			End:   geo.Pt(o.X+canvas.Width+extension, o.Y),
			Style: axisStyle,
		},
		{
			Start: geo.Pt(o.X, o.Y-extension),
			End:   geo.Pt(o.X, o.Y+canvas.Height+extension),
			Style: axisStyle,
		},
	}
}

// GridLines returns grid lines across the canvas at the given offsets along
// the chosen axis. Offsets are relative to the canvas origin.
func GridLines(canvas Canvas, offsets []float64, axis Axis) []Line {
	o := canvas.Origin
	lines := make([]Line, 0, len(offsets))
	for _, off := range offsets {
		var l Line
		if axis == AxisX {
			l = Line{
				Start: geo.Pt(o.X+off, o.Y),
				End:   geo.Pt(o.X+off, o.Y+canvas.Height),
			}
		} else {
			l = Line{
				Start: geo.Pt(o.X, o.Y+off),
				End:   geo.Pt(o.X+canvas.Width, o.Y+off),
			}
		}
		l.Style = gridStyle
		lines = append(lines, l)
	}
	return lines
}

// AxisLabels returns n evenly spaced tick labels for the value range
// [min,max] along the chosen axis, offset from the canvas edge by distance.
func AxisLabels(canvas Canvas, min, max float64, n int, axis Axis, distance float64, decimals int) []Label {
	values := LabelPositions(min, max, n)
	var size float64
	if axis == AxisX {
		size = canvas.Width
	} else {
		size = canvas.Height
	}
	offsets := LabelPositions(0, size, n)

	o := canvas.Origin
	labels := make([]Label, 0, n)
	for i, v := range values {
		l := Label{Text: FormatNumber(v, decimals)}
		if axis == AxisX {
			l.Position = geo.Pt(o.X+offsets[i], o.Y-distance)
			l.Anchor = AnchorMiddle
		} else {
			l.Position = geo.Pt(o.X-distance, o.Y+offsets[i])
			l.Anchor = AnchorEnd
		}
		labels = append(labels, l)
	}
	return labels
}
