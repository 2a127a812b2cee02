package geo

import (
	"math"
	"testing"
)

const tolerance = 0.01

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// --- Point2D tests ---

func TestPointDistance(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(3, 4)
	if !approxEqual(a.Distance(b), 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", a.Distance(b))
	}
}

func TestPointNormalize(t *testing.T) {
	p := Pt(3, 4)
	n := p.Normalize()
	if !approxEqual(n.Length(), 1.0, tolerance) {
		t.Errorf("expected unit length, got %f", n.Length())
	}
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, 10)
	mid := a.Lerp(b, 0.5)
	if !approxEqual(mid.X, 5, tolerance) || !approxEqual(mid.Y, 5, tolerance) {
		t.Errorf("expected (5,5), got (%f,%f)", mid.X, mid.Y)
	}
}

// --- Ring tests ---

func TestRingAreaSquare(t *testing.T) {
	// 10x10 square
	sq := NewRing(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	area := sq.Area()
	if !approxEqual(area, 100, tolerance) {
		t.Errorf("expected area 100, got %f", area)
	}
}

func TestRingAreaClosedSameAsOpen(t *testing.T) {
	open := NewRing(Pt(0, 0), Pt(10, 0), Pt(0, 10))
	closed := open.Closed()
	if !approxEqual(open.Area(), closed.Area(), tolerance) {
		t.Errorf("open area %f != closed area %f", open.Area(), closed.Area())
	}
}

func TestRingClosedIdempotent(t *testing.T) {
	r := NewRing(Pt(0, 0), Pt(10, 0), Pt(0, 10))
	once := r.Closed()
	twice := once.Closed()
	if once.Len() != 4 || twice.Len() != 4 {
		t.Errorf("expected 4 vertices after closing, got %d and %d", once.Len(), twice.Len())
	}
	if !once.IsClosed() {
		t.Error("expected closed ring")
	}
}

func TestRingOpened(t *testing.T) {
	r := NewRing(Pt(0, 0), Pt(10, 0), Pt(0, 10), Pt(0, 0))
	if r.Opened().Len() != 3 {
		t.Errorf("expected 3 vertices, got %d", r.Opened().Len())
	}
	// Already open: no change.
	open := NewRing(Pt(0, 0), Pt(10, 0), Pt(0, 10))
	if open.Opened().Len() != 3 {
		t.Errorf("expected 3 vertices, got %d", open.Opened().Len())
	}
}

func TestRingBoundingBox(t *testing.T) {
	r := NewRing(Pt(-5, -3), Pt(10, 0), Pt(7, 12))
	mn, mx := r.BoundingBox()
	if !approxEqual(mn.X, -5, tolerance) || !approxEqual(mn.Y, -3, tolerance) {
		t.Errorf("expected min (-5,-3), got (%f,%f)", mn.X, mn.Y)
	}
	if !approxEqual(mx.X, 10, tolerance) || !approxEqual(mx.Y, 12, tolerance) {
		t.Errorf("expected max (10,12), got (%f,%f)", mx.X, mx.Y)
	}
}

func TestRingPerimeter(t *testing.T) {
	sq := NewRing(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	if !approxEqual(sq.Perimeter(), 40, tolerance) {
		t.Errorf("expected perimeter 40, got %f", sq.Perimeter())
	}
	if !approxEqual(sq.Closed().Perimeter(), 40, tolerance) {
		t.Errorf("expected closed perimeter 40, got %f", sq.Closed().Perimeter())
	}
}
