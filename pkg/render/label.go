package render

import (
	"fmt"

	"github.com/led-ufc/carcara/pkg/chart"
	"github.com/led-ufc/carcara/pkg/geo"
	"github.com/led-ufc/carcara/pkg/geoio"
)

var (
	polygonStyle = chart.Style{Fill: "none", Stroke: "black", StrokeWidth: 1}
	markerStyle  = chart.Style{Fill: "indianred", Stroke: "black", StrokeWidth: 0.5}
)

// LabelScene builds a scene showing polygons with their computed interior
// points: the boundary outline, a marker at each label point, and the
// coordinates as text. The canvas covers the bounding box of all rings.
func LabelScene(results []geoio.LabelResult, markerRadius float64) chart.Scene {
	sc := chart.Scene{Canvas: chart.DefaultCanvas()}
	if len(results) == 0 {
		return sc
	}
	if markerRadius <= 0 {
		markerRadius = 2
	}

	minP, maxP := results[0].Ring.BoundingBox()
	for _, res := range results[1:] {
		mn, mx := res.Ring.BoundingBox()
		if mn.X < minP.X {
			minP.X = mn.X
		}
		if mn.Y < minP.Y {
			minP.Y = mn.Y
		}
		if mx.X > maxP.X {
			maxP.X = mx.X
		}
		if mx.Y > maxP.Y {
			maxP.Y = mx.Y
		}
	}
	sc.Canvas = chart.Canvas{
		Origin: minP,
		Width:  maxP.X - minP.X,
		Height: maxP.Y - minP.Y,
	}

	for _, res := range results {
		sc.Polys = append(sc.Polys, chart.Poly{Points: res.Ring.Vertices, Style: polygonStyle})
		sc.Circles = append(sc.Circles, chart.Circle{
			Center: res.Point,
			Radius: markerRadius,
			Style:  markerStyle,
		})
		sc.Labels = append(sc.Labels, chart.Label{
			Position: res.Point.Add(geo.Pt(markerRadius*1.5, 0)),
			Text:     fmt.Sprintf("(%.2f, %.2f)", res.Point.X, res.Point.Y),
		})
	}
	return sc
}
