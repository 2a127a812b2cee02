package geo

import (
	"math"
	"testing"
)

// closedSquare is a 10x10 square with the closing vertex repeated.
func closedSquare() Ring {
	return NewRing(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0))
}

// closedNotch is a concave U shape whose vertex centroid falls in the notch,
// outside the boundary.
func closedNotch() Ring {
	return NewRing(
		Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(8, 10),
		Pt(8, 2), Pt(2, 2), Pt(2, 10), Pt(0, 10),
		Pt(0, 0),
	)
}

func TestContainsSquare(t *testing.T) {
	sq := closedSquare()
	if !sq.Contains(Pt(5, 5)) {
		t.Error("expected (5,5) inside square")
	}
	if sq.Contains(Pt(15, 5)) {
		t.Error("expected (15,5) outside square")
	}
	if sq.Contains(Pt(-1, 5)) {
		t.Error("expected (-1,5) outside square")
	}
}

func TestContainsOpenRing(t *testing.T) {
	// Modulo iteration closes the ring implicitly.
	open := NewRing(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	if !open.Contains(Pt(5, 5)) {
		t.Error("expected (5,5) inside open square")
	}
	if open.Contains(Pt(15, 5)) {
		t.Error("expected (15,5) outside open square")
	}
}

func TestContainsNotch(t *testing.T) {
	notch := closedNotch()
	if notch.Contains(Pt(5, 5.5)) {
		t.Error("expected notch interior point to be outside the U")
	}
	if !notch.Contains(Pt(1, 5)) {
		t.Error("expected (1,5) inside the left arm")
	}
	if !notch.Contains(Pt(5, 1)) {
		t.Error("expected (5,1) inside the base")
	}
}

func TestDistanceToSquareCenter(t *testing.T) {
	sq := closedSquare()
	d := sq.DistanceTo(Pt(5, 5))
	if !approxEqual(d, 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", d)
	}
}

func TestDistanceToOutsidePoint(t *testing.T) {
	sq := closedSquare()
	d := sq.DistanceTo(Pt(13, 5))
	if !approxEqual(d, 3.0, tolerance) {
		t.Errorf("expected distance 3.0, got %f", d)
	}
}

func TestDistanceToZeroLengthSegment(t *testing.T) {
	// Repeated consecutive vertex must fall back to point distance.
	r := NewRing(Pt(0, 0), Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0))
	d := r.DistanceTo(Pt(5, 5))
	if !approxEqual(d, 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", d)
	}
}

func TestDistanceToNoSegments(t *testing.T) {
	r := NewRing(Pt(3, 3))
	if !math.IsInf(r.DistanceTo(Pt(0, 0)), 1) {
		t.Error("expected +Inf for ring without segments")
	}
}

func TestCentroidSquare(t *testing.T) {
	c := closedSquare().Centroid()
	if !approxEqual(c.X, 5, tolerance) || !approxEqual(c.Y, 5, tolerance) {
		t.Errorf("expected centroid (5,5), got (%f,%f)", c.X, c.Y)
	}
}

func TestCentroidExcludesClosingVertex(t *testing.T) {
	open := NewRing(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	co := open.Centroid()
	cc := open.Closed().Centroid()
	if co != cc {
		t.Errorf("open centroid %v != closed centroid %v", co, cc)
	}
}

func TestCentroidEmpty(t *testing.T) {
	c := Ring{}.Centroid()
	if c != (Point2D{}) {
		t.Errorf("expected (0,0) for empty ring, got %v", c)
	}
}

func TestCentroidPure(t *testing.T) {
	r := closedNotch()
	if r.Centroid() != r.Centroid() {
		t.Error("centroid not deterministic on identical input")
	}
}

func TestPoleOfInaccessibilitySquare(t *testing.T) {
	sq := closedSquare()
	p, dist := sq.PoleOfInaccessibility(DefaultPrecision)
	if !sq.Contains(p) {
		t.Errorf("pole %v not inside square", p)
	}
	// The true pole of a square is its center at distance 5; the fixed grid
	// should get close.
	if !approxEqual(dist, 5.0, 0.6) {
		t.Errorf("expected distance near 5.0, got %f", dist)
	}
}

func TestPoleOfInaccessibilityNotch(t *testing.T) {
	notch := closedNotch()
	p, dist := notch.PoleOfInaccessibility(DefaultPrecision)
	if !notch.Contains(p) {
		t.Errorf("pole %v not inside notch", p)
	}
	if dist < 0 {
		t.Errorf("expected non-negative distance, got %f", dist)
	}
}

func TestPoleOfInaccessibilityDegenerate(t *testing.T) {
	// Zero-area sliver: no grid point tests inside, so the bounding-box
	// midpoint is the sentinel result.
	sliver := NewRing(Pt(0, 0), Pt(10, 0), Pt(0, 0))
	p, dist := sliver.PoleOfInaccessibility(DefaultPrecision)
	if dist != 0 {
		t.Errorf("expected sentinel distance 0, got %f", dist)
	}
	if !approxEqual(p.X, 5, tolerance) || !approxEqual(p.Y, 0, tolerance) {
		t.Errorf("expected bbox midpoint (5,0), got %v", p)
	}
}

func TestInteriorPointConvex(t *testing.T) {
	sq := closedSquare()
	p, method := sq.InteriorPoint(DefaultPrecision)
	if method != MethodCentroid {
		t.Errorf("expected centroid method for convex ring, got %q", method)
	}
	if !approxEqual(p.X, 5, tolerance) || !approxEqual(p.Y, 5, tolerance) {
		t.Errorf("expected (5,5), got %v", p)
	}
}

func TestInteriorPointConcaveFallsBack(t *testing.T) {
	notch := closedNotch()
	p, method := notch.InteriorPoint(DefaultPrecision)
	if method != MethodPolylabel {
		t.Errorf("expected polylabel fallback for concave ring, got %q", method)
	}
	if !notch.Contains(p) {
		t.Errorf("interior point %v not inside ring", p)
	}
}
