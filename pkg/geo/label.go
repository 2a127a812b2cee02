package geo

import "math"

// Method identifies which strategy produced an interior point.
type Method string

const (
	// MethodCentroid means the vertex centroid was inside the ring.
	MethodCentroid Method = "centroid"
	// MethodPolylabel means the grid-search pole of inaccessibility was used.
	MethodPolylabel Method = "polylabel"
)

// DefaultPrecision is the default grid-cell lower bound for the
// pole-of-inaccessibility search.
const DefaultPrecision = 0.01

// Contains reports whether the point is inside the ring, using the even-odd
// ray-casting rule. Edges are walked with modulo indexing, so the ring may be
// open or closed. Horizontal edges never toggle the crossing flag; for a
// point exactly on the boundary the result is implementation-defined, as is
// usual for ray casting.
func (r Ring) Contains(p Point2D) bool {
	n := len(r.Vertices)
	if n == 0 {
		return false
	}
	inside := false

	a := r.Vertices[0]
	for i := 1; i <= n; i++ {
		b := r.Vertices[i%n]
		if p.Y > math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y) && p.X <= math.Max(a.X, b.X) {
			var xCross float64
			if a.Y != b.Y {
				xCross = (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y) + a.X
			}
			// Vertical edges toggle without computing the crossing.
			if a.X == b.X || p.X <= xCross {
				inside = !inside
			}
		}
		a = b
	}

	return inside
}

// DistanceTo returns the minimum Euclidean distance from the point to the
// ring's boundary. The boundary is the chain of segments between consecutive
// vertices: the ring must already be closed (see Closed), otherwise the edge
// from the last vertex back to the first is not considered. Returns +Inf for
// a ring with fewer than 2 vertices.
func (r Ring) DistanceTo(p Point2D) float64 {
	minDist := math.Inf(1)

	for i := 0; i+1 < len(r.Vertices); i++ {
		a := r.Vertices[i]
		b := r.Vertices[i+1]

		d := b.Sub(a)
		var dist float64
		if d.X == 0 && d.Y == 0 {
			// Zero-length segment: plain point distance.
			dist = p.Distance(a)
		} else {
			t := p.Sub(a).Dot(d) / d.Dot(d)
			t = math.Max(0, math.Min(1, t))
			dist = p.Distance(a.Add(d.Scale(t)))
		}
		if dist < minDist {
			minDist = dist
		}
	}

	return minDist
}

// Centroid returns the arithmetic mean of the ring's vertices, with the
// duplicated closing vertex excluded. This is the vertex centroid, not the
// area centroid: it is cheap but can fall outside a concave ring, which is
// why InteriorPoint exists. Returns (0,0) for an empty ring.
func (r Ring) Centroid() Point2D {
	v := r.Opened().Vertices
	if len(v) == 0 {
		return Point2D{}
	}

	sum := Point2D{}
	for _, p := range v {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(v)))
}

// PoleOfInaccessibility approximates the interior point farthest from the
// ring's boundary by scanning a fixed-resolution grid over the bounding box.
// The cell size is the smaller bounding-box dimension divided by 20, floored
// by precision. The ring must be closed. If no grid point lands inside the
// ring, the bounding-box midpoint is returned with distance 0.
//
// This is deliberately a single-resolution search, not the adaptive quadtree
// refinement used by reference polylabel implementations; precision bounds
// the work on small rings rather than driving refinement.
func (r Ring) PoleOfInaccessibility(precision float64) (Point2D, float64) {
	if len(r.Vertices) < 2 {
		return Point2D{}, 0
	}
	box := Ring{Vertices: r.Vertices[:len(r.Vertices)-1]}
	minP, maxP := box.BoundingBox()

	width := maxP.X - minP.X
	height := maxP.Y - minP.Y
	cell := math.Max(math.Min(width, height)/20, precision)

	var best Point2D
	bestDist := -1.0
	found := false

	for y := minP.Y; y <= maxP.Y; y += cell {
		for x := minP.X; x <= maxP.X; x += cell {
			p := Point2D{x, y}
			if !r.Contains(p) {
				continue
			}
			if d := r.DistanceTo(p); d > bestDist {
				bestDist = d
				best = p
				found = true
			}
		}
	}

	if !found {
		return MidPoint(minP, maxP), 0
	}
	return best, bestDist
}

// InteriorPoint returns a point inside the ring along with the method that
// produced it. The vertex centroid is tried first; when it falls outside
// (concave rings), the search falls back to PoleOfInaccessibility. The ring
// must be closed.
func (r Ring) InteriorPoint(precision float64) (Point2D, Method) {
	c := r.Centroid()
	if r.Contains(c) {
		return c, MethodCentroid
	}

	p, _ := r.PoleOfInaccessibility(precision)
	return p, MethodPolylabel
}
