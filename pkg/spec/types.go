package spec

// ChartType selects which generator a project drives.
type ChartType string

const (
	TypeHistogram ChartType = "histogram"
	TypeScatter   ChartType = "scatter"
	TypeLine      ChartType = "line"
	TypeHeatmap   ChartType = "heatmap"
	TypeLabels    ChartType = "labels"
)

// KnownTypes lists every chart type a spec may declare.
var KnownTypes = []ChartType{TypeHistogram, TypeScatter, TypeLine, TypeHeatmap, TypeLabels}

// ChartSpec is the top-level specification for one chart project.
type ChartSpec struct {
	SpecVersion string    `yaml:"spec_version" json:"spec_version"`
	Title       string    `yaml:"title" json:"title"`
	Type        ChartType `yaml:"type" json:"type"`
	Canvas      CanvasDef `yaml:"canvas" json:"canvas"`
	Data        DataDef   `yaml:"data" json:"data"`
	Axes        AxesDef   `yaml:"axes" json:"axes"`
	Colors      ColorsDef `yaml:"colors" json:"colors"`
	Output      OutputDef `yaml:"output" json:"output"`
}

// CanvasDef sizes the drawing area.
type CanvasDef struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// DataDef holds the chart's input data. Which fields apply depends on Type:
// histogram uses Values; scatter uses X and Y; line uses XSeries and
// YSeries; heatmap uses Matrix; labels uses WKT.
type DataDef struct {
	Values  []float64   `yaml:"values,omitempty" json:"values,omitempty"`
	X       []float64   `yaml:"x,omitempty" json:"x,omitempty"`
	Y       []float64   `yaml:"y,omitempty" json:"y,omitempty"`
	XSeries [][]float64 `yaml:"x_series,omitempty" json:"x_series,omitempty"`
	YSeries [][]float64 `yaml:"y_series,omitempty" json:"y_series,omitempty"`
	Matrix  [][]float64 `yaml:"matrix,omitempty" json:"matrix,omitempty"`
	WKT     []string    `yaml:"wkt,omitempty" json:"wkt,omitempty"`

	RowLabels []string `yaml:"row_labels,omitempty" json:"row_labels,omitempty"`
	ColLabels []string `yaml:"col_labels,omitempty" json:"col_labels,omitempty"`
}

// AxesDef configures axes, tick labels, and grid.
type AxesDef struct {
	XLabels   int     `yaml:"x_labels" json:"x_labels"`
	YLabels   int     `yaml:"y_labels" json:"y_labels"`
	Decimals  int     `yaml:"decimals" json:"decimals"`
	Extension float64 `yaml:"extension" json:"extension"`
	MarginX   float64 `yaml:"margin_x" json:"margin_x"`
	MarginY   float64 `yaml:"margin_y" json:"margin_y"`
	GridY     bool    `yaml:"grid_y" json:"grid_y"`
}

// ColorsDef configures chart coloring. Gradient stops are "r,g,b" or
// "r,g,b,a" tuples for heatmaps and value-colored scatter plots.
type ColorsDef struct {
	Gradient []string `yaml:"gradient,omitempty" json:"gradient,omitempty"`
	Series   []string `yaml:"series,omitempty" json:"series,omitempty"`
	Bar      string   `yaml:"bar,omitempty" json:"bar,omitempty"`
}

// OutputDef configures rendering.
type OutputDef struct {
	File       string  `yaml:"file" json:"file"`
	Padding    float64 `yaml:"padding" json:"padding"`
	Background string  `yaml:"background" json:"background"`
	// Bins applies to histograms; Smooth to line plots; Precision to labels.
	Bins      int     `yaml:"bins,omitempty" json:"bins,omitempty"`
	Smooth    bool    `yaml:"smooth,omitempty" json:"smooth,omitempty"`
	Precision float64 `yaml:"precision,omitempty" json:"precision,omitempty"`
}
