// Package render draws chart scenes and labeled polygons as SVG documents.
// Element assembly is delegated to github.com/ajstarks/svgo; this package
// maps scene coordinates (Y up) into SVG viewport coordinates (Y down).
package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	svg "github.com/ajstarks/svgo/float"

	"github.com/led-ufc/carcara/pkg/chart"
	"github.com/led-ufc/carcara/pkg/geo"
)

// closedTolerance decides when a vertex chain counts as a closed polygon.
const closedTolerance = 1e-3

// Options configures the SVG viewport.
type Options struct {
	// Padding is the margin around the canvas, leaving room for axis
	// labels and extensions.
	Padding float64
	// Background fills the viewport when non-empty.
	Background string
}

// DefaultOptions leaves room for default axis labels.
func DefaultOptions() Options {
	return Options{Padding: 20, Background: "white"}
}

// view maps scene coordinates into the SVG viewport.
type view struct {
	minX, maxY    float64
	width, height float64
}

func newView(c chart.Canvas, padding float64) view {
	return view{
		minX:   c.Origin.X - padding,
		maxY:   c.Origin.Y + c.Height + padding,
		width:  c.Width + 2*padding,
		height: c.Height + 2*padding,
	}
}

func (v view) x(p geo.Point2D) float64 { return p.X - v.minX }
func (v view) y(p geo.Point2D) float64 { return v.maxY - p.Y }

// WriteScene renders the scene as a complete SVG document.
func WriteScene(w io.Writer, sc chart.Scene, opts Options) {
	v := newView(sc.Canvas, opts.Padding)

	canvas := svg.New(w)
	canvas.Start(v.width, v.height)
	if opts.Background != "" {
		canvas.Rect(0, 0, v.width, v.height, "fill:"+opts.Background)
	}

	for _, l := range sc.Lines {
		canvas.Line(v.x(l.Start), v.y(l.Start), v.x(l.End), v.y(l.End), styleAttr(l.Style))
	}
	for _, r := range sc.Rects {
		top := r.Origin.Add(geo.Pt(0, r.Height))
		canvas.Rect(v.x(top), v.y(top), r.Width, r.Height, styleAttr(r.Style))
	}
	for _, c := range sc.Circles {
		canvas.Circle(v.x(c.Center), v.y(c.Center), c.Radius, styleAttr(c.Style))
	}
	for _, p := range sc.Polys {
		writePoly(canvas, v, p)
	}
	for _, l := range sc.Labels {
		canvas.Text(v.x(l.Position), v.y(l.Position), l.Text, labelAttr(l))
	}

	canvas.End()
}

// SaveScene writes the scene to an SVG file, creating parent directories as
// needed.
func SaveScene(path string, sc chart.Scene, opts Options) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating SVG file: %w", err)
	}
	defer f.Close()

	WriteScene(f, sc, opts)
	return nil
}

// writePoly emits a polygon when the chain is closed (within tolerance) and
// a polyline otherwise.
func writePoly(canvas *svg.SVG, v view, p chart.Poly) {
	if len(p.Points) < 2 {
		return
	}
	xs := make([]float64, len(p.Points))
	ys := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		xs[i] = v.x(pt)
		ys[i] = v.y(pt)
	}

	first := p.Points[0]
	last := p.Points[len(p.Points)-1]
	closed := len(p.Points) >= 3 && first.Distance(last) < closedTolerance
	if closed {
		canvas.Polygon(xs[:len(xs)-1], ys[:len(ys)-1], styleAttr(p.Style))
	} else {
		canvas.Polyline(xs, ys, styleAttr(p.Style))
	}
}

// styleAttr converts a scene style into an SVG style attribute.
func styleAttr(st chart.Style) string {
	var parts []string
	fill := st.Fill
	if fill == "" {
		fill = "none"
	}
	parts = append(parts, "fill:"+fill)
	if st.Stroke != "" {
		parts = append(parts, "stroke:"+st.Stroke)
	}
	if st.StrokeWidth > 0 {
		parts = append(parts, fmt.Sprintf("stroke-width:%g", st.StrokeWidth))
	}
	if st.Dash != "" {
		parts = append(parts, "stroke-dasharray:"+st.Dash)
	}
	return "style=\"" + strings.Join(parts, ";") + "\""
}

func labelAttr(l chart.Label) string {
	size := l.Size
	if size == 0 {
		size = 10
	}
	fill := l.Fill
	if fill == "" {
		fill = "black"
	}
	anchor := l.Anchor
	if anchor == "" {
		anchor = chart.AnchorStart
	}
	return fmt.Sprintf(
		"style=\"fill:%s;font-size:%gpx;font-family:sans-serif;text-anchor:%s\"",
		fill, size, anchor)
}
