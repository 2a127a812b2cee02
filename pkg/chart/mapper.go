package chart

import "github.com/led-ufc/carcara/pkg/geo"

// Mapper transforms data coordinates to canvas coordinates. Ranges are
// computed once from the data, with per-axis margins, and reused for every
// mapped point.
type Mapper struct {
	Canvas Canvas

	XMin, XMax, XRange float64
	YMin, YMax, YRange float64
}

// NewMapper builds a mapper for the canvas from the X and Y data, applying
// the given margin percentages to each axis.
func NewMapper(canvas Canvas, xData, yData []float64, mx, my float64) Mapper {
	m := Mapper{Canvas: canvas}
	m.XMin, m.XMax, m.XRange = RangeWithMargin(xData, mx)
	m.YMin, m.YMax, m.YRange = RangeWithMargin(yData, my)
	return m
}

// MapX maps a data value to a canvas X offset (relative to the origin).
func (m Mapper) MapX(v float64) float64 {
	return (v - m.XMin) / m.XRange * m.Canvas.Width
}

// MapY maps a data value to a canvas Y offset (relative to the origin).
func (m Mapper) MapY(v float64) float64 {
	return (v - m.YMin) / m.YRange * m.Canvas.Height
}

// MapPoint maps a data point to an absolute canvas point.
func (m Mapper) MapPoint(x, y float64) geo.Point2D {
	return m.Canvas.Origin.Add(geo.Pt(m.MapX(x), m.MapY(y)))
}

// MapValue maps a single value onto a canvas dimension without a Mapper.
func MapValue(value, min, rng, canvasSize float64) float64 {
	return (value - min) / rng * canvasSize
}
