package wire

// RenderChartRequest is the inbound message describing one chart.
type RenderChartRequest struct {
	RequestID string   `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	Title     string   `json:"title,omitempty" yaml:"title,omitempty"`
	Sizes     *Sizes   `json:"sizes,omitempty" yaml:"sizes,omitempty"`
	Margins   *Margins `json:"margins,omitempty" yaml:"margins,omitempty"`
	Axes      *Axes    `json:"axes,omitempty" yaml:"axes,omitempty"`
	Views     []View   `json:"views,omitempty" yaml:"views,omitempty"`
}

// RenderChartReply carries the renderer output back to the caller. ChartData
// is opaque; ContentType names the encoding the renderer produced.
type RenderChartReply struct {
	RequestID   string `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	ContentType string `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	ChartData   []byte `json:"chart_data,omitempty" yaml:"chart_data,omitempty"`
}

// Sizes is the overall chart size in pixels.
type Sizes struct {
	Width  *int32 `json:"width,omitempty" yaml:"width,omitempty"`
	Height *int32 `json:"height,omitempty" yaml:"height,omitempty"`
}

// Margins are the chart margins in pixels.
type Margins struct {
	Top    *int32 `json:"top,omitempty" yaml:"top,omitempty"`
	Bottom *int32 `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Left   *int32 `json:"left,omitempty" yaml:"left,omitempty"`
	Right  *int32 `json:"right,omitempty" yaml:"right,omitempty"`
}

// Axes holds the four optional axis slots and their labels.
type Axes struct {
	Top         *Scale `json:"top,omitempty" yaml:"top,omitempty"`
	TopLabel    string `json:"top_label,omitempty" yaml:"top_label,omitempty"`
	Bottom      *Scale `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	BottomLabel string `json:"bottom_label,omitempty" yaml:"bottom_label,omitempty"`
	Left        *Scale `json:"left,omitempty" yaml:"left,omitempty"`
	LeftLabel   string `json:"left_label,omitempty" yaml:"left_label,omitempty"`
	Right       *Scale `json:"right,omitempty" yaml:"right,omitempty"`
	RightLabel  string `json:"right_label,omitempty" yaml:"right_label,omitempty"`
}

// Scale configures one axis. Which of the optional fields are required
// depends on Kind.
type Scale struct {
	Kind               ScaleKind `json:"kind" yaml:"kind"`
	RangeStart         *int32    `json:"range_start,omitempty" yaml:"range_start,omitempty"`
	RangeEnd           *int32    `json:"range_end,omitempty" yaml:"range_end,omitempty"`
	NoBoundariesOffset bool      `json:"no_boundaries_offset,omitempty" yaml:"no_boundaries_offset,omitempty"`
	InnerPadding       *float64  `json:"inner_padding,omitempty" yaml:"inner_padding,omitempty"`
	OuterPadding       *float64  `json:"outer_padding,omitempty" yaml:"outer_padding,omitempty"`
	Domain             *Domain   `json:"domain,omitempty" yaml:"domain,omitempty"`
}

// Domain is a one-of: a numeric interval for linear scales or an ordered
// category list for band scales.
type Domain struct {
	Numeric    *NumericDomain  `json:"numeric,omitempty" yaml:"numeric,omitempty"`
	Categories *CategoryDomain `json:"categories,omitempty" yaml:"categories,omitempty"`
}

type NumericDomain struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

type CategoryDomain struct {
	Values []string `json:"values" yaml:"values"`
}

// Color is a one-of: a hex string or an RGB triplet.
type Color struct {
	Hex *string `json:"hex,omitempty" yaml:"hex,omitempty"`
	RGB *RGB    `json:"rgb,omitempty" yaml:"rgb,omitempty"`
}

// RGB components are wider than a channel on the wire and truncated on
// resolution.
type RGB struct {
	R uint32 `json:"r" yaml:"r"`
	G uint32 `json:"g" yaml:"g"`
	B uint32 `json:"b" yaml:"b"`
}

// ViewColors is the color bundle of a view.
type ViewColors struct {
	Fill        *Color `json:"fill,omitempty" yaml:"fill,omitempty"`
	Stroke      *Color `json:"stroke,omitempty" yaml:"stroke,omitempty"`
	PointFill   *Color `json:"point_fill,omitempty" yaml:"point_fill,omitempty"`
	PointStroke *Color `json:"point_stroke,omitempty" yaml:"point_stroke,omitempty"`
}

// View configures one series of the chart.
type View struct {
	Kind               ViewKind           `json:"kind" yaml:"kind"`
	Colors             *ViewColors        `json:"colors,omitempty" yaml:"colors,omitempty"`
	BarLabelVisible    *bool              `json:"bar_label_visible,omitempty" yaml:"bar_label_visible,omitempty"`
	BarLabelPosition   BarLabelPosition   `json:"bar_label_position,omitempty" yaml:"bar_label_position,omitempty"`
	PointVisible       *bool              `json:"point_visible,omitempty" yaml:"point_visible,omitempty"`
	PointType          PointType          `json:"point_type,omitempty" yaml:"point_type,omitempty"`
	PointLabelVisible  *bool              `json:"point_label_visible,omitempty" yaml:"point_label_visible,omitempty"`
	PointLabelPosition PointLabelPosition `json:"point_label_position,omitempty" yaml:"point_label_position,omitempty"`
	Values             *Values            `json:"values,omitempty" yaml:"values,omitempty"`
}

// Values is a one-of over the three payload shapes.
type Values struct {
	Scalar *ScalarValues `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Points *PointsValues `json:"points,omitempty" yaml:"points,omitempty"`
	Bars   *BarsValues   `json:"bars,omitempty" yaml:"bars,omitempty"`
}

type ScalarValues struct {
	Values []float64 `json:"values" yaml:"values"`
}

type PointsValues struct {
	Points []Point `json:"points" yaml:"points"`
}

type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

type BarsValues struct {
	Datasets []BarsDataset `json:"datasets" yaml:"datasets"`
}

// BarsDataset is one group of bars sharing a fill and a stroke color.
type BarsDataset struct {
	Values []float64   `json:"values" yaml:"values"`
	Colors *BarsColors `json:"colors,omitempty" yaml:"colors,omitempty"`
}

type BarsColors struct {
	Fill   *Color `json:"fill,omitempty" yaml:"fill,omitempty"`
	Stroke *Color `json:"stroke,omitempty" yaml:"stroke,omitempty"`
}

// Ptr returns a pointer to v. Useful when building requests in code.
func Ptr[T any](v T) *T {
	return &v
}

// HexColor builds a hex Color.
func HexColor(hex string) *Color {
	return &Color{Hex: &hex}
}

// RGBColor builds an RGB Color.
func RGBColor(r, g, b uint32) *Color {
	return &Color{RGB: &RGB{R: r, G: g, B: b}}
}
