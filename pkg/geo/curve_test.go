package geo

import "testing"

func TestCatmullRomSplinePassesThroughControls(t *testing.T) {
	control := []Point2D{Pt(0, 0), Pt(10, 10), Pt(20, 0), Pt(30, 10)}
	pts := CatmullRomSpline(control, 4, 0.5)

	if len(pts) != 3*4+1 {
		t.Fatalf("expected 13 samples, got %d", len(pts))
	}
	// Every control point appears at a span boundary.
	for i, c := range control {
		got := pts[i*4]
		if !approxEqual(got.X, c.X, tolerance) || !approxEqual(got.Y, c.Y, tolerance) {
			t.Errorf("sample %d = (%f, %f), want control (%f, %f)", i*4, got.X, got.Y, c.X, c.Y)
		}
	}
}

func TestCatmullRomSplineTwoPoints(t *testing.T) {
	pts := CatmullRomSpline([]Point2D{Pt(0, 0), Pt(10, 0)}, 5, 0.5)
	if len(pts) != 6 {
		t.Fatalf("expected 6 samples, got %d", len(pts))
	}
	mid := pts[len(pts)/2]
	if !approxEqual(mid.Y, 0, tolerance) {
		t.Errorf("two-point spline should be linear, got y=%f", mid.Y)
	}
}

func TestCatmullRomSplineDegenerate(t *testing.T) {
	if pts := CatmullRomSpline(nil, 4, 0.5); len(pts) != 0 {
		t.Errorf("expected no samples for empty input, got %d", len(pts))
	}
	pts := CatmullRomSpline([]Point2D{Pt(3, 4)}, 4, 0.5)
	if len(pts) != 1 || pts[0] != Pt(3, 4) {
		t.Errorf("single control point should pass through unchanged, got %v", pts)
	}
}

func TestCatmullRomSplineStaysNearControls(t *testing.T) {
	control := []Point2D{Pt(0, 0), Pt(10, 10), Pt(20, 0)}
	pts := CatmullRomSpline(control, 8, 0.5)
	for _, p := range pts {
		if p.Y < -5 || p.Y > 15 {
			t.Errorf("sample (%f, %f) strays far outside the control hull", p.X, p.Y)
		}
	}
}
