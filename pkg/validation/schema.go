package validation

import (
	"fmt"

	"github.com/led-ufc/carcara/pkg/chart"
	"github.com/led-ufc/carcara/pkg/geoio"
	"github.com/led-ufc/carcara/pkg/spec"
)

// Validate runs all validation stages on a parsed chart spec and merges
// the results into a single report.
func Validate(s *spec.ChartSpec) *Report {
	r := ValidateSchema(s)
	r.Merge(ValidateData(s))
	if s.Type == spec.TypeLabels {
		r.Merge(ValidateGeometry(s))
	}
	return r
}

// ValidateSchema checks structural correctness of a spec before any
// computation: a known chart type, sane canvas dimensions, and parseable
// options.
func ValidateSchema(s *spec.ChartSpec) *Report {
	r := NewReport()

	validateType(s, r)
	validateCanvas(s, r)
	validateColors(s, r)
	validateOutput(s, r)

	return r
}

func validateType(s *spec.ChartSpec, r *Report) {
	for _, known := range spec.KnownTypes {
		if s.Type == known {
			return
		}
	}
	names := make([]string, len(spec.KnownTypes))
	for i, known := range spec.KnownTypes {
		names[i] = string(known)
	}
	r.AddError(Result{
		Level:       LevelSchema,
		Message:     fmt.Sprintf("unknown chart type %q", s.Type),
		SpecPath:    "type",
		ActualValue: string(s.Type),
		Suggestions: names,
	})
}

func validateCanvas(s *spec.ChartSpec, r *Report) {
	if s.Canvas.Width <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "canvas width must be greater than 0",
			SpecPath:    "canvas.width",
			ActualValue: s.Canvas.Width,
			Expected:    "> 0",
		})
	}
	if s.Canvas.Height <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "canvas height must be greater than 0",
			SpecPath:    "canvas.height",
			ActualValue: s.Canvas.Height,
			Expected:    "> 0",
		})
	}
}

func validateColors(s *spec.ChartSpec, r *Report) {
	for i, tuple := range s.Colors.Gradient {
		if _, err := chart.ParseRGBA(tuple); err != nil {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("colors.gradient[%d]: %v", i, err),
				SpecPath:    fmt.Sprintf("colors.gradient[%d]", i),
				ActualValue: tuple,
				Expected:    "\"r,g,b\" or \"r,g,b,a\" with channels 0-255",
			})
		}
	}
	if n := len(s.Colors.Gradient); n == 1 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "a gradient needs at least two stops; a grey fallback will be used",
			SpecPath:    "colors.gradient",
			ActualValue: n,
			Expected:    ">= 2 stops",
		})
	}
}

func validateOutput(s *spec.ChartSpec, r *Report) {
	if s.Output.File == "" {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "output.file is empty; a default name will be used",
			SpecPath:    "output.file",
			Suggestions: []string{"set output.file to e.g. \"chart.svg\""},
		})
	}
	if s.Output.Padding < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "output.padding must be non-negative",
			SpecPath:    "output.padding",
			ActualValue: s.Output.Padding,
			Expected:    ">= 0",
		})
	}
	if s.Output.Bins < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "output.bins must be non-negative",
			SpecPath:    "output.bins",
			ActualValue: s.Output.Bins,
			Expected:    ">= 0",
		})
	}
	if s.Output.Precision < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "output.precision must be non-negative",
			SpecPath:    "output.precision",
			ActualValue: s.Output.Precision,
			Expected:    ">= 0",
		})
	}
}

// ValidateData checks that the spec's data section matches what its chart
// type consumes.
func ValidateData(s *spec.ChartSpec) *Report {
	r := NewReport()

	switch s.Type {
	case spec.TypeHistogram:
		if len(s.Data.Values) == 0 {
			r.AddError(Result{
				Level:    LevelData,
				Message:  "histogram requires data.values",
				SpecPath: "data.values",
				Expected: "at least 1 value",
			})
		}
	case spec.TypeScatter:
		if len(s.Data.X) == 0 {
			r.AddError(Result{
				Level:    LevelData,
				Message:  "scatter requires data.x and data.y",
				SpecPath: "data.x",
				Expected: "at least 1 point",
			})
		} else if len(s.Data.X) != len(s.Data.Y) {
			r.AddError(Result{
				Level:       LevelData,
				Message:     fmt.Sprintf("data.x has %d values but data.y has %d", len(s.Data.X), len(s.Data.Y)),
				SpecPath:    "data.y",
				ActualValue: len(s.Data.Y),
				Expected:    fmt.Sprintf("%d (matching data.x)", len(s.Data.X)),
			})
		}
	case spec.TypeLine:
		validateLineData(s, r)
	case spec.TypeHeatmap:
		validateMatrixData(s, r)
	case spec.TypeLabels:
		if len(s.Data.WKT) == 0 {
			r.AddError(Result{
				Level:    LevelData,
				Message:  "labels requires data.wkt",
				SpecPath: "data.wkt",
				Expected: "at least 1 geometry",
			})
		}
	}

	return r
}

func validateLineData(s *spec.ChartSpec, r *Report) {
	if len(s.Data.XSeries) == 0 {
		r.AddError(Result{
			Level:    LevelData,
			Message:  "line requires data.x_series and data.y_series",
			SpecPath: "data.x_series",
			Expected: "at least 1 series",
		})
		return
	}
	if len(s.Data.XSeries) != len(s.Data.YSeries) {
		r.AddError(Result{
			Level:       LevelData,
			Message:     fmt.Sprintf("data.x_series has %d series but data.y_series has %d", len(s.Data.XSeries), len(s.Data.YSeries)),
			SpecPath:    "data.y_series",
			ActualValue: len(s.Data.YSeries),
			Expected:    fmt.Sprintf("%d (matching data.x_series)", len(s.Data.XSeries)),
		})
		return
	}
	for i := range s.Data.XSeries {
		if len(s.Data.XSeries[i]) != len(s.Data.YSeries[i]) {
			r.AddError(Result{
				Level:       LevelData,
				Message:     fmt.Sprintf("series %d: x has %d values but y has %d", i, len(s.Data.XSeries[i]), len(s.Data.YSeries[i])),
				SpecPath:    fmt.Sprintf("data.y_series[%d]", i),
				ActualValue: len(s.Data.YSeries[i]),
				Expected:    fmt.Sprintf("%d values", len(s.Data.XSeries[i])),
			})
		}
	}
}

func validateMatrixData(s *spec.ChartSpec, r *Report) {
	if len(s.Data.Matrix) == 0 {
		r.AddError(Result{
			Level:    LevelData,
			Message:  "heatmap requires data.matrix",
			SpecPath: "data.matrix",
			Expected: "at least 1 row",
		})
		return
	}
	width := len(s.Data.Matrix[0])
	for i, row := range s.Data.Matrix {
		if len(row) != width {
			r.AddError(Result{
				Level:       LevelData,
				Message:     fmt.Sprintf("data.matrix[%d] has %d columns but row 0 has %d", i, len(row), width),
				SpecPath:    fmt.Sprintf("data.matrix[%d]", i),
				ActualValue: len(row),
				Expected:    fmt.Sprintf("%d columns", width),
			})
		}
	}
	if n := len(s.Data.RowLabels); n > 0 && n != len(s.Data.Matrix) {
		r.AddWarning(Result{
			Level:       LevelData,
			Message:     fmt.Sprintf("data.row_labels has %d entries for %d rows", n, len(s.Data.Matrix)),
			SpecPath:    "data.row_labels",
			ActualValue: n,
			Expected:    fmt.Sprintf("%d labels", len(s.Data.Matrix)),
		})
	}
	if n := len(s.Data.ColLabels); n > 0 && n != width {
		r.AddWarning(Result{
			Level:       LevelData,
			Message:     fmt.Sprintf("data.col_labels has %d entries for %d columns", n, width),
			SpecPath:    "data.col_labels",
			ActualValue: n,
			Expected:    fmt.Sprintf("%d labels", width),
		})
	}
}

// ValidateGeometry parses each WKT entry and checks it describes an areal
// geometry with usable rings.
func ValidateGeometry(s *spec.ChartSpec) *Report {
	r := NewReport()

	for i, wkt := range s.Data.WKT {
		g, err := geoio.ParseWKT(wkt)
		if err != nil {
			r.AddError(Result{
				Level:       LevelGeometry,
				Message:     fmt.Sprintf("data.wkt[%d]: %v", i, err),
				SpecPath:    fmt.Sprintf("data.wkt[%d]", i),
				ActualValue: wkt,
				Expected:    "valid WKT",
			})
			continue
		}
		rings, err := geoio.ExteriorRings(g)
		if err != nil {
			r.AddError(Result{
				Level:       LevelGeometry,
				Message:     fmt.Sprintf("data.wkt[%d]: %v", i, err),
				SpecPath:    fmt.Sprintf("data.wkt[%d]", i),
				ActualValue: wkt,
				Expected:    "POLYGON or MULTIPOLYGON",
			})
			continue
		}
		for j, ring := range rings {
			if ring.Len() < 4 {
				r.AddError(Result{
					Level:       LevelGeometry,
					Message:     fmt.Sprintf("data.wkt[%d] ring %d has %d vertices; a closed ring needs at least 4", i, j, ring.Len()),
					SpecPath:    fmt.Sprintf("data.wkt[%d]", i),
					ActualValue: ring.Len(),
					Expected:    ">= 4 vertices",
				})
			}
		}
	}

	return r
}
