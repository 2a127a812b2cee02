// Package geoio converts between text geometry formats (WKT, GeoJSON) and
// the geometry types used by the analysis and chart packages. Parsing and
// serialization are delegated to github.com/paulmach/orb; this package only
// bridges representations and applies the ring-closing contract the analysis
// functions expect.
package geoio

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"

	"github.com/led-ufc/carcara/pkg/geo"
)

// ParseWKT parses a WKT string into an orb geometry.
func ParseWKT(s string) (orb.Geometry, error) {
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("parsing WKT: %w", err)
	}
	return g, nil
}

// MarshalWKT serializes an orb geometry to WKT.
func MarshalWKT(g orb.Geometry) string {
	return wkt.MarshalString(g)
}

// WKTToGeoJSON converts a WKT string to a GeoJSON geometry document.
func WKTToGeoJSON(s string) ([]byte, error) {
	g, err := ParseWKT(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(geojson.NewGeometry(g))
}

// GeoJSONToWKT converts a GeoJSON geometry document to a WKT string.
func GeoJSONToWKT(data []byte) (string, error) {
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return "", fmt.Errorf("parsing GeoJSON: %w", err)
	}
	return wkt.MarshalString(g.Geometry()), nil
}

// FromOrbRing converts an orb ring to a geo.Ring, closed.
func FromOrbRing(r orb.Ring) geo.Ring {
	pts := make([]geo.Point2D, len(r))
	for i, p := range r {
		pts[i] = geo.Pt(p.X(), p.Y())
	}
	return geo.Ring{Vertices: pts}.Closed()
}

// ToOrbRing converts a geo.Ring to a closed orb ring.
func ToOrbRing(r geo.Ring) orb.Ring {
	closed := r.Closed()
	ring := make(orb.Ring, len(closed.Vertices))
	for i, p := range closed.Vertices {
		ring[i] = orb.Point{p.X, p.Y}
	}
	return ring
}

// ToOrbPolygon converts rings (exterior first, then holes) to an orb polygon.
func ToOrbPolygon(rings ...geo.Ring) orb.Polygon {
	poly := make(orb.Polygon, len(rings))
	for i, r := range rings {
		poly[i] = ToOrbRing(r)
	}
	return poly
}

// ExteriorRings extracts the closed exterior ring of every polygon in the
// geometry. Non-areal geometries yield an error.
func ExteriorRings(g orb.Geometry) ([]geo.Ring, error) {
	switch v := g.(type) {
	case orb.Polygon:
		if len(v) == 0 {
			return nil, nil
		}
		return []geo.Ring{FromOrbRing(v[0])}, nil
	case orb.MultiPolygon:
		rings := make([]geo.Ring, 0, len(v))
		for _, p := range v {
			if len(p) > 0 {
				rings = append(rings, FromOrbRing(p[0]))
			}
		}
		return rings, nil
	default:
		return nil, fmt.Errorf("geometry %T has no polygon rings", g)
	}
}

// LabelResult pairs a polygon ring with its computed interior point.
type LabelResult struct {
	Ring   geo.Ring   `json:"-"`
	Point  geo.Point2D `json:"point"`
	Method geo.Method  `json:"method"`
}

// InteriorPoints computes a label point for every polygon in the geometry
// using the centroid-first strategy.
func InteriorPoints(g orb.Geometry, precision float64) ([]LabelResult, error) {
	rings, err := ExteriorRings(g)
	if err != nil {
		return nil, err
	}

	results := make([]LabelResult, len(rings))
	for i, r := range rings {
		p, method := r.InteriorPoint(precision)
		results[i] = LabelResult{Ring: r, Point: p, Method: method}
	}
	return results, nil
}
