package geo

import "math"

// Ring is a polygon boundary defined by its vertices in order. A ring may be
// given open (first vertex not repeated) or explicitly closed (last vertex
// equal to the first). The analysis functions in this package document which
// form they expect.
type Ring struct {
	Vertices []Point2D
}

// NewRing creates a ring from a list of vertices.
func NewRing(pts ...Point2D) Ring {
	return Ring{Vertices: pts}
}

// Len returns the number of vertices.
func (r Ring) Len() int {
	return len(r.Vertices)
}

// IsEmpty returns true if the ring has fewer than 3 vertices.
func (r Ring) IsEmpty() bool {
	return len(r.Vertices) < 3
}

// IsClosed returns true if the last vertex repeats the first.
func (r Ring) IsClosed() bool {
	n := len(r.Vertices)
	return n > 1 && r.Vertices[0] == r.Vertices[n-1]
}

// Closed returns the ring with the first vertex appended as the last, if it
// is not already. The receiver is not modified.
func (r Ring) Closed() Ring {
	if len(r.Vertices) == 0 || r.IsClosed() {
		return r
	}
	closed := make([]Point2D, len(r.Vertices)+1)
	copy(closed, r.Vertices)
	closed[len(r.Vertices)] = r.Vertices[0]
	return Ring{Vertices: closed}
}

// Opened returns the ring without the duplicated closing vertex, if present.
func (r Ring) Opened() Ring {
	if !r.IsClosed() {
		return r
	}
	return Ring{Vertices: r.Vertices[:len(r.Vertices)-1]}
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
func (r Ring) SignedArea() float64 {
	v := r.Opened().Vertices
	n := len(v)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += v[i].X * v[j].Y
		area -= v[j].X * v[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the ring.
func (r Ring) Area() float64 {
	return math.Abs(r.SignedArea())
}

// Perimeter returns the total boundary length.
func (r Ring) Perimeter() float64 {
	v := r.Opened().Vertices
	n := len(v)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += v[i].Distance(v[j])
	}
	return total
}

// BoundingBox returns the axis-aligned bounding box as (min, max).
func (r Ring) BoundingBox() (Point2D, Point2D) {
	if len(r.Vertices) == 0 {
		return Point2D{}, Point2D{}
	}
	minP := r.Vertices[0]
	maxP := r.Vertices[0]
	for _, v := range r.Vertices[1:] {
		if v.X < minP.X {
			minP.X = v.X
		}
		if v.Y < minP.Y {
			minP.Y = v.Y
		}
		if v.X > maxP.X {
			maxP.X = v.X
		}
		if v.Y > maxP.Y {
			maxP.Y = v.Y
		}
	}
	return minP, maxP
}
