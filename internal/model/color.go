package model

import "github.com/goliatone/go-chartgen/pkg/wire"

// ResolveColor decodes a wire color. Hex strings are kept as given and RGB
// components are truncated to 8 bits. A color with neither or both variants
// set counts as absent, so the slot that needs it fails.
func ResolveColor(color *wire.Color) (Color, bool) {
	switch {
	case color == nil:
		return Color{}, false
	case color.Hex != nil && color.RGB != nil:
		return Color{}, false
	case color.Hex != nil:
		return Color{Hex: *color.Hex}, true
	case color.RGB != nil:
		return Color{RGB: &RGB{
			R: uint8(color.RGB.R),
			G: uint8(color.RGB.G),
			B: uint8(color.RGB.B),
		}}, true
	default:
		return Color{}, false
	}
}

// ResolveViewColors resolves every slot of a view's color bundle. Only the
// bundle itself is mandatory here; slot requirements depend on the view kind.
func ResolveViewColors(colors *wire.ViewColors) (ViewColors, error) {
	if colors == nil {
		return ViewColors{}, ErrViewColorsNotSpecified
	}
	return optionalViewColors(colors), nil
}

func optionalColor(color *wire.Color) *Color {
	resolved, ok := ResolveColor(color)
	if !ok {
		return nil
	}
	return &resolved
}
