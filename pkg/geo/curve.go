package geo

// CatmullRomSpline traces a smooth curve through the control points,
// returning samplesPerSpan points for every span plus the final control
// point. The curve passes through every control point; endpoints are
// handled by reflecting the adjacent point. Tension 0.5 gives the
// standard spline.
func CatmullRomSpline(control []Point2D, samplesPerSpan int, tension float64) []Point2D {
	n := len(control)
	if n < 2 {
		return append([]Point2D(nil), control...)
	}
	if samplesPerSpan < 1 {
		samplesPerSpan = 1
	}

	if n == 2 {
		out := make([]Point2D, samplesPerSpan+1)
		for i := range out {
			out[i] = control[0].Lerp(control[1], float64(i)/float64(samplesPerSpan))
		}
		return out
	}

	// Phantom endpoints mirror the first and last spans so the curve
	// starts and ends exactly at the outer control points.
	first := control[0].Add(control[0].Sub(control[1]))
	last := control[n-1].Add(control[n-1].Sub(control[n-2]))

	neighbor := func(i int) Point2D {
		switch {
		case i < 0:
			return first
		case i >= n:
			return last
		default:
			return control[i]
		}
	}

	out := make([]Point2D, 0, (n-1)*samplesPerSpan+1)
	for i := 0; i < n-1; i++ {
		p0, p1, p2, p3 := neighbor(i-1), control[i], control[i+1], neighbor(i+2)
		for j := 0; j < samplesPerSpan; j++ {
			t := float64(j) / float64(samplesPerSpan)
			out = append(out, splinePoint(p0, p1, p2, p3, t, tension))
		}
	}
	return append(out, control[n-1])
}

func splinePoint(p0, p1, p2, p3 Point2D, t, s float64) Point2D {
	t2 := t * t
	t3 := t2 * t
	return Point2D{
		X: 0.5 * ((-s*p0.X+(2-s)*p1.X+(s-2)*p2.X+s*p3.X)*t3 +
			(2*s*p0.X+(s-3)*p1.X+(3-2*s)*p2.X-s*p3.X)*t2 +
			(-s*p0.X+s*p2.X)*t + 2*p1.X),
		Y: 0.5 * ((-s*p0.Y+(2-s)*p1.Y+(s-2)*p2.Y+s*p3.Y)*t3 +
			(2*s*p0.Y+(s-3)*p1.Y+(3-2*s)*p2.Y-s*p3.Y)*t2 +
			(-s*p0.Y+s*p2.Y)*t + 2*p1.Y),
	}
}
