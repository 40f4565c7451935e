package model

import "github.com/goliatone/go-chartgen/pkg/wire"

type payloadKind int

const (
	payloadScalar payloadKind = iota
	payloadPoints
	payloadBars
)

type colorSlot int

const (
	slotFill colorSlot = iota
	slotStroke
	slotPointFill
	slotPointStroke
)

type colorRequirement struct {
	slot colorSlot
	err  ErrorKind
}

type scaleRole struct {
	kind wire.ScaleKind
	err  ErrorKind
}

// viewContract lists what a view kind requires from its request.
type viewContract struct {
	kind       ViewKind
	payload    payloadKind
	horizontal scaleRole
	vertical   scaleRole
	// colors is nil for bar kinds, whose colors live on each dataset.
	colors []colorRequirement
}

var viewContracts = map[wire.ViewKind]viewContract{
	wire.ViewKindArea: {
		kind:       ViewKindArea,
		payload:    payloadScalar,
		horizontal: scaleRole{wire.ScaleKindBand, ErrAreaHorizontalAxisNotBand},
		vertical:   scaleRole{wire.ScaleKindLinear, ErrAreaVerticalAxisNotLinear},
		colors: []colorRequirement{
			{slotFill, ErrAreaFillColorNotSpecified},
			{slotStroke, ErrAreaStrokeColorNotSpecified},
			{slotPointFill, ErrAreaPointFillColorNotSpecified},
			{slotPointStroke, ErrAreaPointStrokeColorNotSpecified},
		},
	},
	wire.ViewKindLine: {
		kind:       ViewKindLine,
		payload:    payloadScalar,
		horizontal: scaleRole{wire.ScaleKindBand, ErrLineHorizontalAxisNotBand},
		vertical:   scaleRole{wire.ScaleKindLinear, ErrLineVerticalAxisNotLinear},
		colors: []colorRequirement{
			{slotStroke, ErrLineStrokeColorNotSpecified},
			{slotPointFill, ErrLinePointFillColorNotSpecified},
			{slotPointStroke, ErrLinePointStrokeColorNotSpecified},
		},
	},
	wire.ViewKindScatter: {
		kind:       ViewKindScatter,
		payload:    payloadPoints,
		horizontal: scaleRole{wire.ScaleKindLinear, ErrScatterHorizontalAxisNotLinear},
		vertical:   scaleRole{wire.ScaleKindLinear, ErrScatterVerticalAxisNotLinear},
		colors: []colorRequirement{
			{slotPointFill, ErrScatterPointFillColorNotSpecified},
			{slotPointStroke, ErrScatterPointStrokeColorNotSpecified},
		},
	},
	wire.ViewKindHorizontalBar: {
		kind:       ViewKindHorizontalBar,
		payload:    payloadBars,
		horizontal: scaleRole{wire.ScaleKindLinear, ErrHorizontalBarHorizontalAxisNotLinear},
		vertical:   scaleRole{wire.ScaleKindBand, ErrHorizontalBarVerticalAxisNotBand},
	},
	wire.ViewKindVerticalBar: {
		kind:       ViewKindVerticalBar,
		payload:    payloadBars,
		horizontal: scaleRole{wire.ScaleKindBand, ErrVerticalBarHorizontalAxisNotBand},
		vertical:   scaleRole{wire.ScaleKindLinear, ErrVerticalBarVerticalAxisNotLinear},
	},
}

// ResolveView lowers one wire view against the selected horizontal and
// vertical axis scales. Steps run in a fixed order and the first failure is
// returned unchanged: scales, colors, point or bar options, then data.
func ResolveView(view wire.View, horizontal, vertical *wire.Scale, ranges Ranges) (View, error) {
	contract, ok := viewContracts[view.Kind]
	if !ok {
		return View{}, ErrViewKindUnknown
	}

	hScale, err := resolveRole(horizontal, contract.horizontal, ranges, DimensionHorizontal)
	if err != nil {
		return View{}, err
	}
	vScale, err := resolveRole(vertical, contract.vertical, ranges, DimensionVertical)
	if err != nil {
		return View{}, err
	}

	resolved := View{
		Kind:       contract.kind,
		Horizontal: hScale,
		Vertical:   vScale,
	}

	if contract.payload == payloadBars {
		resolved.Colors = optionalViewColors(view.Colors)
		if resolved.Bar, err = resolveBarOptions(view); err != nil {
			return View{}, err
		}
	} else {
		if resolved.Colors, err = resolveRequiredColors(view.Colors, contract.colors); err != nil {
			return View{}, err
		}
		if resolved.Point, err = resolvePointOptions(view); err != nil {
			return View{}, err
		}
	}

	switch contract.payload {
	case payloadScalar:
		resolved.Values.Scalar, err = ExtractScalar(view.Values)
	case payloadPoints:
		resolved.Values.Points, err = ExtractPoints(view.Values)
	case payloadBars:
		resolved.Values.Bars, err = ExtractBars(view.Values)
	}
	if err != nil {
		return View{}, err
	}

	return resolved, nil
}

func resolveRole(scale *wire.Scale, role scaleRole, ranges Ranges, dimension Dimension) (Scale, error) {
	if scale == nil || scale.Kind != role.kind {
		return Scale{}, role.err
	}
	if role.kind == wire.ScaleKindBand {
		return ResolveBandScale(scale, ranges, dimension)
	}
	return ResolveLinearScale(scale, ranges, dimension)
}

// optionalViewColors carries whatever view colors a bar view supplied. Bar
// colors are mandatory per dataset, not per view.
func optionalViewColors(colors *wire.ViewColors) ViewColors {
	if colors == nil {
		return ViewColors{}
	}
	return ViewColors{
		Fill:        optionalColor(colors.Fill),
		Stroke:      optionalColor(colors.Stroke),
		PointFill:   optionalColor(colors.PointFill),
		PointStroke: optionalColor(colors.PointStroke),
	}
}

func resolveRequiredColors(colors *wire.ViewColors, required []colorRequirement) (ViewColors, error) {
	bundle, err := ResolveViewColors(colors)
	if err != nil {
		return ViewColors{}, err
	}
	for _, req := range required {
		if bundle.slot(req.slot) == nil {
			return ViewColors{}, req.err
		}
	}
	return bundle, nil
}

func (c ViewColors) slot(slot colorSlot) *Color {
	switch slot {
	case slotFill:
		return c.Fill
	case slotStroke:
		return c.Stroke
	case slotPointFill:
		return c.PointFill
	case slotPointStroke:
		return c.PointStroke
	default:
		return nil
	}
}
