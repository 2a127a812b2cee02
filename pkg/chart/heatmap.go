package chart

import "github.com/led-ufc/carcara/pkg/geo"

// HeatmapOptions configures Heatmap.
type HeatmapOptions struct {
	Stops         []RGBA
	RowLabels     []string
	ColLabels     []string
	LabelDistance float64
	LabelSize     float64
	CellStroke    string
}

// DefaultHeatmapOptions uses a blue-to-red gradient.
func DefaultHeatmapOptions() HeatmapOptions {
	return HeatmapOptions{
		Stops: []RGBA{
			{70, 130, 180, 255},
			{255, 255, 200, 255},
			{205, 92, 92, 255},
		},
		LabelDistance: 5,
		CellStroke:    "white",
	}
}

// Heatmap lays out a matrix of colored cells on the canvas. Row 0 is drawn
// at the top. Ragged rows are tolerated; missing cells are skipped.
func Heatmap(canvas Canvas, matrix [][]float64, opts HeatmapOptions) Scene {
	sc := Scene{Canvas: canvas}
	if len(matrix) == 0 {
		return sc
	}

	cols := 0
	for _, row := range matrix {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return sc
	}

	flat := make([]float64, 0, len(matrix)*cols)
	for _, row := range matrix {
		flat = append(flat, row...)
	}
	min, max, _ := RangeWithMargin(flat, 0)

	cellW := canvas.Width / float64(cols)
	cellH := canvas.Height / float64(len(matrix))
	o := canvas.Origin

	for i, row := range matrix {
		// Row 0 at the top of the canvas.
		y := o.Y + canvas.Height - float64(i+1)*cellH
		for j, v := range row {
			c := Gradient(v, min, max, opts.Stops)
			sc.Rects = append(sc.Rects, Rect{
				Origin: geo.Pt(o.X+float64(j)*cellW, y),
				Width:  cellW,
				Height: cellH,
				Style:  Style{Fill: c.Hex(), Stroke: opts.CellStroke, StrokeWidth: 0.5},
			})
		}
	}

	for i, text := range opts.RowLabels {
		if i >= len(matrix) {
			break
		}
		sc.Labels = append(sc.Labels, Label{
			Position: geo.Pt(o.X-opts.LabelDistance, o.Y+canvas.Height-(float64(i)+0.5)*cellH),
			Text:     text,
			Size:     opts.LabelSize,
			Anchor:   AnchorEnd,
		})
	}
	for j, text := range opts.ColLabels {
		if j >= cols {
			break
		}
		sc.Labels = append(sc.Labels, Label{
			Position: geo.Pt(o.X+(float64(j)+0.5)*cellW, o.Y-opts.LabelDistance),
			Text:     text,
			Size:     opts.LabelSize,
			Anchor:   AnchorMiddle,
		})
	}

	return sc
}
