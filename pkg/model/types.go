package model

import internalmodel "github.com/goliatone/go-chartgen/internal/model"

type (
	Chart              = internalmodel.Chart
	Axis               = internalmodel.Axis
	AxisPosition       = internalmodel.AxisPosition
	Geometry           = internalmodel.Geometry
	Scale              = internalmodel.Scale
	ScaleKind          = internalmodel.ScaleKind
	LinearScale        = internalmodel.LinearScale
	BandScale          = internalmodel.BandScale
	View               = internalmodel.View
	ViewKind           = internalmodel.ViewKind
	ViewColors         = internalmodel.ViewColors
	Color              = internalmodel.Color
	RGB                = internalmodel.RGB
	Values             = internalmodel.Values
	Point              = internalmodel.Point
	BarsDataset        = internalmodel.BarsDataset
	PointOptions       = internalmodel.PointOptions
	PointType          = internalmodel.PointType
	PointLabelPosition = internalmodel.PointLabelPosition
	BarOptions         = internalmodel.BarOptions
	BarLabelPosition   = internalmodel.BarLabelPosition
	RangeStrategy      = internalmodel.RangeStrategy
)

const (
	ScaleKindLinear = internalmodel.ScaleKindLinear
	ScaleKindBand   = internalmodel.ScaleKindBand

	ViewKindArea          = internalmodel.ViewKindArea
	ViewKindHorizontalBar = internalmodel.ViewKindHorizontalBar
	ViewKindLine          = internalmodel.ViewKindLine
	ViewKindScatter       = internalmodel.ViewKindScatter
	ViewKindVerticalBar   = internalmodel.ViewKindVerticalBar

	AxisPositionTop    = internalmodel.AxisPositionTop
	AxisPositionBottom = internalmodel.AxisPositionBottom
	AxisPositionLeft   = internalmodel.AxisPositionLeft
	AxisPositionRight  = internalmodel.AxisPositionRight

	PointTypeCircle = internalmodel.PointTypeCircle
	PointTypeSquare = internalmodel.PointTypeSquare
	PointTypeX      = internalmodel.PointTypeX

	BarLabelPositionStartOutside = internalmodel.BarLabelPositionStartOutside
	BarLabelPositionStartInside  = internalmodel.BarLabelPositionStartInside
	BarLabelPositionCenter       = internalmodel.BarLabelPositionCenter
	BarLabelPositionEndInside    = internalmodel.BarLabelPositionEndInside
	BarLabelPositionEndOutside   = internalmodel.BarLabelPositionEndOutside

	RangeFromRequest  = internalmodel.RangeFromRequest
	RangeFromGeometry = internalmodel.RangeFromGeometry
)
