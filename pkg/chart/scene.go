package chart

import "github.com/led-ufc/carcara/pkg/geo"

// Canvas is the drawing area a chart is laid out on. Origin is the
// lower-left corner in chart coordinates.
type Canvas struct {
	Origin geo.Point2D `json:"origin"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
}

// DefaultCanvas returns a 100x100 canvas anchored at the origin.
func DefaultCanvas() Canvas {
	return Canvas{Width: 100, Height: 100}
}

// Corner returns the corner at index 0..3, counterclockwise from the origin.
func (c Canvas) Corner(i int) geo.Point2D {
	switch i % 4 {
	case 1:
		return geo.Pt(c.Origin.X+c.Width, c.Origin.Y)
	case 2:
		return geo.Pt(c.Origin.X+c.Width, c.Origin.Y+c.Height)
	case 3:
		return geo.Pt(c.Origin.X, c.Origin.Y+c.Height)
	default:
		return c.Origin
	}
}

// Style carries stroke and fill attributes through to the renderer.
type Style struct {
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	Dash        string  `json:"dash,omitempty"`
}

// Line is a straight segment (axes, grid lines).
type Line struct {
	Start geo.Point2D `json:"start"`
	End   geo.Point2D `json:"end"`
	Style Style       `json:"style"`
}

// Rect is an axis-aligned rectangle (histogram bars, heatmap cells).
type Rect struct {
	Origin geo.Point2D `json:"origin"`
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Style  Style       `json:"style"`
}

// Circle is a filled marker (scatter points, interior-point markers).
type Circle struct {
	Center geo.Point2D `json:"center"`
	Radius float64     `json:"radius"`
	Style  Style       `json:"style"`
}

// Poly is an open or closed vertex chain (line plots, polygon outlines).
// The renderer treats a chain whose last point repeats the first as closed.
type Poly struct {
	Points []geo.Point2D `json:"points"`
	Style  Style         `json:"style"`
}

// Anchor is the horizontal alignment of a label relative to its position.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Label is a text annotation.
type Label struct {
	Position geo.Point2D `json:"position"`
	Text     string      `json:"text"`
	Size     float64     `json:"size,omitempty"`
	Fill     string      `json:"fill,omitempty"`
	Anchor   Anchor      `json:"anchor,omitempty"`
}

// Scene is the complete geometric output of a chart generator, ready for the
// renderer or for JSON export.
type Scene struct {
	Canvas  Canvas   `json:"canvas"`
	Lines   []Line   `json:"lines,omitempty"`
	Rects   []Rect   `json:"rects,omitempty"`
	Circles []Circle `json:"circles,omitempty"`
	Polys   []Poly   `json:"polys,omitempty"`
	Labels  []Label  `json:"labels,omitempty"`
}

// Merge appends all elements of other into s.
func (s *Scene) Merge(other Scene) {
	s.Lines = append(s.Lines, other.Lines...)
	s.Rects = append(s.Rects, other.Rects...)
	s.Circles = append(s.Circles, other.Circles...)
	s.Polys = append(s.Polys, other.Polys...)
	s.Labels = append(s.Labels, other.Labels...)
}
