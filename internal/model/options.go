package model

import "github.com/goliatone/go-chartgen/pkg/wire"

var pointTypes = map[wire.PointType]PointType{
	wire.PointTypeCircle: PointTypeCircle,
	wire.PointTypeSquare: PointTypeSquare,
	wire.PointTypeX:      PointTypeX,
}

var pointLabelPositions = map[wire.PointLabelPosition]PointLabelPosition{
	wire.PointLabelPositionTop:         PointLabelPositionTop,
	wire.PointLabelPositionTopRight:    PointLabelPositionTopRight,
	wire.PointLabelPositionTopLeft:     PointLabelPositionTopLeft,
	wire.PointLabelPositionLeft:        PointLabelPositionLeft,
	wire.PointLabelPositionRight:       PointLabelPositionRight,
	wire.PointLabelPositionBottom:      PointLabelPositionBottom,
	wire.PointLabelPositionBottomLeft:  PointLabelPositionBottomLeft,
	wire.PointLabelPositionBottomRight: PointLabelPositionBottomRight,
}

var barLabelPositions = map[wire.BarLabelPosition]BarLabelPosition{
	wire.BarLabelPositionStartOutside: BarLabelPositionStartOutside,
	wire.BarLabelPositionStartInside:  BarLabelPositionStartInside,
	wire.BarLabelPositionCenter:       BarLabelPositionCenter,
	wire.BarLabelPositionEndInside:    BarLabelPositionEndInside,
	wire.BarLabelPositionEndOutside:   BarLabelPositionEndOutside,
}

// ResolvePointType fails for the unspecified tag and out-of-range tags alike.
func ResolvePointType(tag wire.PointType) (PointType, error) {
	if resolved, ok := pointTypes[tag]; ok {
		return resolved, nil
	}
	return "", ErrPointTypeUnknown
}

func ResolvePointLabelPosition(tag wire.PointLabelPosition) (PointLabelPosition, error) {
	if resolved, ok := pointLabelPositions[tag]; ok {
		return resolved, nil
	}
	return "", ErrPointLabelPositionUnknown
}

func ResolveBarLabelPosition(tag wire.BarLabelPosition) (BarLabelPosition, error) {
	if resolved, ok := barLabelPositions[tag]; ok {
		return resolved, nil
	}
	return "", ErrBarLabelPositionUnknown
}

func resolvePointOptions(view wire.View) (*PointOptions, error) {
	pointType, err := ResolvePointType(view.PointType)
	if err != nil {
		return nil, err
	}
	labelPosition, err := ResolvePointLabelPosition(view.PointLabelPosition)
	if err != nil {
		return nil, err
	}
	visible, err := require(view.PointVisible, ErrPointVisibleNotSpecified)
	if err != nil {
		return nil, err
	}
	labelVisible, err := require(view.PointLabelVisible, ErrPointLabelVisibleNotSpecified)
	if err != nil {
		return nil, err
	}
	return &PointOptions{
		Type:          pointType,
		LabelPosition: labelPosition,
		Visible:       visible,
		LabelVisible:  labelVisible,
	}, nil
}

func resolveBarOptions(view wire.View) (*BarOptions, error) {
	labelPosition, err := ResolveBarLabelPosition(view.BarLabelPosition)
	if err != nil {
		return nil, err
	}
	labelVisible, err := require(view.BarLabelVisible, ErrBarLabelVisibleNotSpecified)
	if err != nil {
		return nil, err
	}
	return &BarOptions{
		LabelVisible:  labelVisible,
		LabelPosition: labelPosition,
	}, nil
}
