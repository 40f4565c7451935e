package model

import (
	"encoding/json"
	"fmt"
)

// ScaleKind is the resolved kind of a scale.
type ScaleKind string

const (
	ScaleKindLinear ScaleKind = "linear"
	ScaleKindBand   ScaleKind = "band"
)

// ViewKind is the resolved kind of a view.
type ViewKind string

const (
	ViewKindArea          ViewKind = "area"
	ViewKindHorizontalBar ViewKind = "horizontal_bar"
	ViewKindLine          ViewKind = "line"
	ViewKindScatter       ViewKind = "scatter"
	ViewKindVerticalBar   ViewKind = "vertical_bar"
)

// PointType is the marker drawn for each point.
type PointType string

const (
	PointTypeCircle PointType = "circle"
	PointTypeSquare PointType = "square"
	PointTypeX      PointType = "x"
)

// PointLabelPosition places a point's value label.
type PointLabelPosition string

const (
	PointLabelPositionTop         PointLabelPosition = "top"
	PointLabelPositionTopRight    PointLabelPosition = "top_right"
	PointLabelPositionTopLeft     PointLabelPosition = "top_left"
	PointLabelPositionLeft        PointLabelPosition = "left"
	PointLabelPositionRight       PointLabelPosition = "right"
	PointLabelPositionBottom      PointLabelPosition = "bottom"
	PointLabelPositionBottomLeft  PointLabelPosition = "bottom_left"
	PointLabelPositionBottomRight PointLabelPosition = "bottom_right"
)

// BarLabelPosition places a bar's value label.
type BarLabelPosition string

const (
	BarLabelPositionStartOutside BarLabelPosition = "start_outside"
	BarLabelPositionStartInside  BarLabelPosition = "start_inside"
	BarLabelPositionCenter       BarLabelPosition = "center"
	BarLabelPositionEndInside    BarLabelPosition = "end_inside"
	BarLabelPositionEndOutside   BarLabelPosition = "end_outside"
)

// AxisPosition names one of the four chart edges.
type AxisPosition string

const (
	AxisPositionTop    AxisPosition = "top"
	AxisPositionBottom AxisPosition = "bottom"
	AxisPositionLeft   AxisPosition = "left"
	AxisPositionRight  AxisPosition = "right"
)

// Horizontal reports whether the axis runs along the chart width.
func (p AxisPosition) Horizontal() bool {
	return p == AxisPositionTop || p == AxisPositionBottom
}

// Color is a resolved color: either a hex string kept exactly as supplied or
// an 8-bit RGB triplet.
type Color struct {
	Hex string
	RGB *RGB
}

// RGB holds 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// String returns the canonical form: the hex string as given, or
// "rgb(r,g,b)".
func (c Color) String() string {
	if c.RGB != nil {
		return fmt.Sprintf("rgb(%d,%d,%d)", c.RGB.R, c.RGB.G, c.RGB.B)
	}
	return c.Hex
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// ViewColors is a view's resolved color bundle. Slots not required by the
// view kind stay nil unless the request supplied them.
type ViewColors struct {
	Fill        *Color `json:"fill,omitempty" yaml:"fill,omitempty"`
	Stroke      *Color `json:"stroke,omitempty" yaml:"stroke,omitempty"`
	PointFill   *Color `json:"point_fill,omitempty" yaml:"point_fill,omitempty"`
	PointStroke *Color `json:"point_stroke,omitempty" yaml:"point_stroke,omitempty"`
}

// Geometry is the chart size and margins in pixels. Values are not checked
// for sign; renderers own bounds sanity.
type Geometry struct {
	Width        int `json:"width" yaml:"width"`
	Height       int `json:"height" yaml:"height"`
	MarginTop    int `json:"margin_top" yaml:"margin_top"`
	MarginBottom int `json:"margin_bottom" yaml:"margin_bottom"`
	MarginLeft   int `json:"margin_left" yaml:"margin_left"`
	MarginRight  int `json:"margin_right" yaml:"margin_right"`
}

// InnerWidth is the horizontal extent left after margins.
func (g Geometry) InnerWidth() int {
	return g.Width - g.MarginLeft - g.MarginRight
}

// InnerHeight is the vertical extent left after margins.
func (g Geometry) InnerHeight() int {
	return g.Height - g.MarginTop - g.MarginBottom
}

// Scale is a resolved scale. Exactly one of Linear and Band is set, matching
// Kind.
type Scale struct {
	Kind       ScaleKind    `json:"kind" yaml:"kind"`
	RangeStart int          `json:"range_start" yaml:"range_start"`
	RangeEnd   int          `json:"range_end" yaml:"range_end"`
	Linear     *LinearScale `json:"linear,omitempty" yaml:"linear,omitempty"`
	Band       *BandScale   `json:"band,omitempty" yaml:"band,omitempty"`
}

// LinearScale holds the numeric domain of a linear scale.
type LinearScale struct {
	DomainStart float64 `json:"domain_start" yaml:"domain_start"`
	DomainEnd   float64 `json:"domain_end" yaml:"domain_end"`
}

// BandScale holds the categories and paddings of a band scale.
type BandScale struct {
	Categories         []string `json:"categories" yaml:"categories"`
	InnerPadding       float64  `json:"inner_padding" yaml:"inner_padding"`
	OuterPadding       float64  `json:"outer_padding" yaml:"outer_padding"`
	NoBoundariesOffset bool     `json:"no_boundaries_offset" yaml:"no_boundaries_offset"`
}

// Point is one (x, y) pair.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// BarsDataset is one group of bars with its colors.
type BarsDataset struct {
	Values []float64 `json:"values" yaml:"values"`
	Fill   Color     `json:"fill" yaml:"fill"`
	Stroke Color     `json:"stroke" yaml:"stroke"`
}

// Values is the extracted data of a view. Exactly one field is populated,
// determined by the view kind.
type Values struct {
	Scalar []float64     `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Points []Point       `json:"points,omitempty" yaml:"points,omitempty"`
	Bars   []BarsDataset `json:"bars,omitempty" yaml:"bars,omitempty"`
}

// PointOptions are the marker settings of area, line and scatter views.
type PointOptions struct {
	Type          PointType          `json:"type" yaml:"type"`
	LabelPosition PointLabelPosition `json:"label_position" yaml:"label_position"`
	Visible       bool               `json:"visible" yaml:"visible"`
	LabelVisible  bool               `json:"label_visible" yaml:"label_visible"`
}

// BarOptions are the label settings of bar views.
type BarOptions struct {
	LabelVisible  bool             `json:"label_visible" yaml:"label_visible"`
	LabelPosition BarLabelPosition `json:"label_position" yaml:"label_position"`
}

// View is a resolved series. Point is set for area, line and scatter views,
// Bar for the two bar kinds.
type View struct {
	Kind       ViewKind      `json:"kind" yaml:"kind"`
	Horizontal Scale         `json:"horizontal" yaml:"horizontal"`
	Vertical   Scale         `json:"vertical" yaml:"vertical"`
	Colors     ViewColors    `json:"colors" yaml:"colors"`
	Point      *PointOptions `json:"point,omitempty" yaml:"point,omitempty"`
	Bar        *BarOptions   `json:"bar,omitempty" yaml:"bar,omitempty"`
	Values     Values        `json:"values" yaml:"values"`
}

// Axis is a present chart axis with its label and resolved scale.
type Axis struct {
	Position AxisPosition `json:"position" yaml:"position"`
	Label    string       `json:"label,omitempty" yaml:"label,omitempty"`
	Scale    Scale        `json:"scale" yaml:"scale"`
}

// Chart is the fully resolved model handed to renderers.
type Chart struct {
	RequestID string   `json:"request_id,omitempty" yaml:"request_id,omitempty"`
	Title     string   `json:"title,omitempty" yaml:"title,omitempty"`
	Geometry  Geometry `json:"geometry" yaml:"geometry"`
	Axes      []Axis   `json:"axes" yaml:"axes"`
	Views     []View   `json:"views" yaml:"views"`
}

// Axis returns the resolved axis at position, if present.
func (c Chart) Axis(position AxisPosition) (Axis, bool) {
	for _, axis := range c.Axes {
		if axis.Position == position {
			return axis, true
		}
	}
	return Axis{}, false
}
