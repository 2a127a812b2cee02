package chart

import (
	"testing"

	"github.com/led-ufc/carcara/pkg/geo"
)

func testCanvas() Canvas {
	return Canvas{Origin: geo.Pt(0, 0), Width: 200, Height: 100}
}

// --- Mapper tests ---

func TestMapperMidpoint(t *testing.T) {
	m := NewMapper(testCanvas(), []float64{0, 100}, []float64{0, 50}, 0, 0)
	if !approxEqual(m.MapX(50), 100, tolerance) {
		t.Errorf("expected MapX(50)=100, got %f", m.MapX(50))
	}
	if !approxEqual(m.MapY(25), 50, tolerance) {
		t.Errorf("expected MapY(25)=50, got %f", m.MapY(25))
	}
}

func TestMapperPoint(t *testing.T) {
	canvas := Canvas{Origin: geo.Pt(10, 20), Width: 100, Height: 100}
	m := NewMapper(canvas, []float64{0, 10}, []float64{0, 10}, 0, 0)
	p := m.MapPoint(10, 0)
	if !approxEqual(p.X, 110, tolerance) || !approxEqual(p.Y, 20, tolerance) {
		t.Errorf("expected (110,20), got %v", p)
	}
}

func TestMapValue(t *testing.T) {
	if got := MapValue(50, 0, 100, 200); !approxEqual(got, 100, tolerance) {
		t.Errorf("expected 100, got %f", got)
	}
}

// --- Gradient tests ---

func TestGradientEndpoints(t *testing.T) {
	stops := []RGBA{{0, 0, 0, 255}, {255, 255, 255, 255}}
	if c := Gradient(0, 0, 100, stops); c != stops[0] {
		t.Errorf("expected first stop at min, got %v", c)
	}
	if c := Gradient(100, 0, 100, stops); c != stops[1] {
		t.Errorf("expected last stop at max, got %v", c)
	}
}

func TestGradientMidpoint(t *testing.T) {
	stops := []RGBA{{0, 0, 0, 255}, {100, 200, 50, 255}}
	c := Gradient(50, 0, 100, stops)
	if c.R != 50 || c.G != 100 || c.B != 25 {
		t.Errorf("expected (50,100,25), got %v", c)
	}
}

func TestGradientClamps(t *testing.T) {
	stops := []RGBA{{0, 0, 0, 255}, {255, 255, 255, 255}}
	if c := Gradient(-10, 0, 100, stops); c != stops[0] {
		t.Errorf("expected clamp to first stop, got %v", c)
	}
	if c := Gradient(200, 0, 100, stops); c != stops[1] {
		t.Errorf("expected clamp to last stop, got %v", c)
	}
}

func TestGradientTooFewStops(t *testing.T) {
	if c := Gradient(50, 0, 100, []RGBA{{1, 2, 3, 4}}); c != greyFallback {
		t.Errorf("expected grey fallback, got %v", c)
	}
}

func TestGradientAlphaInterpolates(t *testing.T) {
	stops := []RGBA{{0, 0, 0, 0}, {0, 0, 0, 200}}
	c := Gradient(50, 0, 100, stops)
	if c.A != 100 {
		t.Errorf("expected alpha 100, got %d", c.A)
	}
}

// --- Histogram tests ---

func TestBins(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	edges, counts := Bins(data, 5)
	if len(edges) != 6 || len(counts) != 5 {
		t.Fatalf("expected 6 edges and 5 counts, got %d and %d", len(edges), len(counts))
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != len(data) {
		t.Errorf("counts sum to %d, expected %d", total, len(data))
	}
	// Max value lands in the last bin, not past it.
	if counts[4] != 2 {
		t.Errorf("expected last bin count 2 (values 8,9), got %d", counts[4])
	}
}

func TestBinsConstantData(t *testing.T) {
	edges, counts := Bins([]float64{7, 7, 7}, 4)
	if len(edges) != 2 || len(counts) != 1 || counts[0] != 3 {
		t.Errorf("expected single bin with all samples, got edges=%v counts=%v", edges, counts)
	}
}

func TestBinsEmpty(t *testing.T) {
	edges, counts := Bins(nil, 5)
	if edges != nil || counts != nil {
		t.Error("expected nil results for empty data")
	}
}

func TestHistogramScene(t *testing.T) {
	sc := Histogram(testCanvas(), []float64{1, 2, 2, 3, 3, 3}, DefaultHistogramOptions())
	if len(sc.Rects) != 10 {
		t.Errorf("expected 10 bars, got %d", len(sc.Rects))
	}
	if len(sc.Lines) != 2 {
		t.Errorf("expected 2 axis lines, got %d", len(sc.Lines))
	}
	if len(sc.Labels) == 0 {
		t.Error("expected axis labels")
	}
	// Tallest bar spans the full canvas height.
	maxH := 0.0
	for _, r := range sc.Rects {
		if r.Height > maxH {
			maxH = r.Height
		}
	}
	if !approxEqual(maxH, 100, tolerance) {
		t.Errorf("expected tallest bar height 100, got %f", maxH)
	}
}

// --- Scatter tests ---

func TestScatterScene(t *testing.T) {
	sc, err := Scatter(testCanvas(), []float64{1, 2, 3}, []float64{4, 5, 6}, DefaultScatterOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sc.Circles) != 3 {
		t.Errorf("expected 3 points, got %d", len(sc.Circles))
	}
}

func TestScatterLengthMismatch(t *testing.T) {
	_, err := Scatter(testCanvas(), []float64{1, 2}, []float64{1}, DefaultScatterOptions())
	if err == nil {
		t.Error("expected error for mismatched series lengths")
	}
}

func TestScatterPerPointColors(t *testing.T) {
	opts := DefaultScatterOptions()
	opts.Colors = []RGBA{{255, 0, 0, 255}}
	sc, err := Scatter(testCanvas(), []float64{1, 2}, []float64{1, 2}, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Circles[0].Style.Fill != "#ff0000" {
		t.Errorf("expected #ff0000, got %s", sc.Circles[0].Style.Fill)
	}
	// Second point falls back to the default style.
	if sc.Circles[1].Style.Fill != opts.PointStyle.Fill {
		t.Errorf("expected default fill, got %s", sc.Circles[1].Style.Fill)
	}
}

// --- Line plot tests ---

func TestLinePlotScene(t *testing.T) {
	x := []Series{{0, 1, 2}, {0, 1, 2}}
	y := []Series{{0, 1, 0}, {2, 3, 2}}
	sc, err := LinePlot(testCanvas(), x, y, DefaultLineOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sc.Polys) != 2 {
		t.Errorf("expected 2 polylines, got %d", len(sc.Polys))
	}
	if len(sc.Polys[0].Points) != 3 {
		t.Errorf("expected 3 points per polyline, got %d", len(sc.Polys[0].Points))
	}
}

func TestLinePlotSmooth(t *testing.T) {
	opts := DefaultLineOptions()
	opts.Smooth = true
	x := []Series{{0, 1, 2, 3}}
	y := []Series{{0, 1, 0, 1}}
	sc, err := LinePlot(testCanvas(), x, y, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sc.Polys[0].Points) <= 4 {
		t.Errorf("expected smoothed polyline with more than 4 points, got %d", len(sc.Polys[0].Points))
	}
}

func TestLinePlotSeriesCountMismatch(t *testing.T) {
	_, err := LinePlot(testCanvas(), []Series{{1, 2}}, nil, DefaultLineOptions())
	if err == nil {
		t.Error("expected error for mismatched series counts")
	}
}

// --- Heatmap tests ---

func TestHeatmapScene(t *testing.T) {
	matrix := [][]float64{{1, 2, 3}, {4, 5, 6}}
	opts := DefaultHeatmapOptions()
	opts.RowLabels = []string{"a", "b"}
	opts.ColLabels = []string{"x", "y", "z"}
	sc := Heatmap(testCanvas(), matrix, opts)
	if len(sc.Rects) != 6 {
		t.Errorf("expected 6 cells, got %d", len(sc.Rects))
	}
	if len(sc.Labels) != 5 {
		t.Errorf("expected 5 labels, got %d", len(sc.Labels))
	}
	// Row 0 is drawn at the top of the canvas.
	top := sc.Rects[0]
	if !approxEqual(top.Origin.Y, 50, tolerance) {
		t.Errorf("expected first-row cell at y=50, got %f", top.Origin.Y)
	}
}

func TestHeatmapEmpty(t *testing.T) {
	sc := Heatmap(testCanvas(), nil, DefaultHeatmapOptions())
	if len(sc.Rects) != 0 {
		t.Errorf("expected no cells, got %d", len(sc.Rects))
	}
}

// --- Color parsing tests ---

func TestParseRGBA(t *testing.T) {
	c, err := ParseRGBA("255, 0, 128")
	if err != nil {
		t.Fatalf("ParseRGBA failed: %v", err)
	}
	if c.R != 255 || c.G != 0 || c.B != 128 || c.A != 255 {
		t.Errorf("unexpected color %+v", c)
	}

	c, err = ParseRGBA("10,20,30,40")
	if err != nil {
		t.Fatalf("ParseRGBA with alpha failed: %v", err)
	}
	if c.A != 40 {
		t.Errorf("alpha = %d, want 40", c.A)
	}
}

func TestParseRGBAInvalid(t *testing.T) {
	for _, s := range []string{"", "1,2", "1,2,3,4,5", "a,b,c", "300,0,0", "-1,0,0"} {
		if _, err := ParseRGBA(s); err == nil {
			t.Errorf("ParseRGBA(%q): expected error", s)
		}
	}
}

func TestParseStops(t *testing.T) {
	stops, err := ParseStops([]string{"0,0,255", "255,255,0", "255,0,0"})
	if err != nil {
		t.Fatalf("ParseStops failed: %v", err)
	}
	if len(stops) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(stops))
	}
	if stops[0].B != 255 || stops[2].R != 255 {
		t.Errorf("unexpected stops %+v", stops)
	}

	if _, err := ParseStops([]string{"0,0,255", "bad"}); err == nil {
		t.Error("expected error for bad stop")
	}
}
