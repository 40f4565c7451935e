package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// unrecognized is the tag assigned to enum names that do not match any
// variant. It sits outside every enum's domain so the model builder reports
// the enumeration failure instead of the decoder.
const unrecognized int32 = -1

// ScaleKind selects how an axis maps its domain.
type ScaleKind int32

const (
	ScaleKindUnspecified ScaleKind = iota
	ScaleKindLinear
	ScaleKindBand
)

// ViewKind selects one of the renderable series types.
type ViewKind int32

const (
	ViewKindUnspecified ViewKind = iota
	ViewKindArea
	ViewKindHorizontalBar
	ViewKindLine
	ViewKindScatter
	ViewKindVerticalBar
)

// BarLabelPosition places value labels relative to a bar.
type BarLabelPosition int32

const (
	BarLabelPositionUnspecified BarLabelPosition = iota
	BarLabelPositionStartOutside
	BarLabelPositionStartInside
	BarLabelPositionCenter
	BarLabelPositionEndInside
	BarLabelPositionEndOutside
)

// PointType is the marker drawn for each data point.
type PointType int32

const (
	PointTypeUnspecified PointType = iota
	PointTypeCircle
	PointTypeSquare
	PointTypeX
)

// PointLabelPosition places value labels relative to a point marker.
type PointLabelPosition int32

const (
	PointLabelPositionUnspecified PointLabelPosition = iota
	PointLabelPositionTop
	PointLabelPositionTopRight
	PointLabelPositionTopLeft
	PointLabelPositionLeft
	PointLabelPositionRight
	PointLabelPositionBottom
	PointLabelPositionBottomLeft
	PointLabelPositionBottomRight
)

var (
	scaleKindNames = enumNames{
		kind:   "scale kind",
		values: []string{"unspecified", "linear", "band"},
	}
	viewKindNames = enumNames{
		kind:   "view kind",
		values: []string{"unspecified", "area", "horizontal_bar", "line", "scatter", "vertical_bar"},
	}
	barLabelPositionNames = enumNames{
		kind:   "bar label position",
		values: []string{"unspecified", "start_outside", "start_inside", "center", "end_inside", "end_outside"},
	}
	pointTypeNames = enumNames{
		kind:   "point type",
		values: []string{"unspecified", "circle", "square", "x"},
	}
	pointLabelPositionNames = enumNames{
		kind: "point label position",
		values: []string{
			"unspecified", "top", "top_right", "top_left", "left",
			"right", "bottom", "bottom_left", "bottom_right",
		},
	}
)

// enumNames maps tags to their snake_case names. The slice index is the tag.
type enumNames struct {
	kind   string
	values []string
}

func (n enumNames) name(tag int32) (string, bool) {
	if tag < 0 || int(tag) >= len(n.values) {
		return "", false
	}
	return n.values[tag], true
}

func (n enumNames) format(tag int32) string {
	if name, ok := n.name(tag); ok {
		return name
	}
	return fmt.Sprintf("%s(%d)", strings.ReplaceAll(n.kind, " ", "_"), tag)
}

func (n enumNames) parse(raw string) int32 {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, "-", "_")
	for tag, name := range n.values {
		if name == key {
			return int32(tag)
		}
	}
	return unrecognized
}

func marshalEnumJSON[E ~int32](n enumNames, value E) ([]byte, error) {
	if name, ok := n.name(int32(value)); ok {
		return json.Marshal(name)
	}
	return json.Marshal(int32(value))
}

func unmarshalEnumJSON[E ~int32](n enumNames, data []byte, dst *E) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*dst = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("wire: decode %s: %w", n.kind, err)
		}
		*dst = E(n.parse(raw))
		return nil
	}
	var tag int32
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("wire: decode %s: %w", n.kind, err)
	}
	*dst = E(tag)
	return nil
}

func marshalEnumYAML[E ~int32](n enumNames, value E) (any, error) {
	if name, ok := n.name(int32(value)); ok {
		return name, nil
	}
	return int32(value), nil
}

func unmarshalEnumYAML[E ~int32](n enumNames, node *yaml.Node, dst *E) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("wire: decode %s: expected a scalar at line %d", n.kind, node.Line)
	}
	if tag, err := strconv.ParseInt(node.Value, 10, 32); err == nil {
		*dst = E(tag)
		return nil
	}
	*dst = E(n.parse(node.Value))
	return nil
}

func (k ScaleKind) String() string               { return scaleKindNames.format(int32(k)) }
func (k ScaleKind) MarshalJSON() ([]byte, error) { return marshalEnumJSON(scaleKindNames, k) }
func (k *ScaleKind) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(scaleKindNames, data, k)
}
func (k ScaleKind) MarshalYAML() (any, error) { return marshalEnumYAML(scaleKindNames, k) }
func (k *ScaleKind) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalEnumYAML(scaleKindNames, node, k)
}

func (k ViewKind) String() string               { return viewKindNames.format(int32(k)) }
func (k ViewKind) MarshalJSON() ([]byte, error) { return marshalEnumJSON(viewKindNames, k) }
func (k *ViewKind) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(viewKindNames, data, k)
}
func (k ViewKind) MarshalYAML() (any, error) { return marshalEnumYAML(viewKindNames, k) }
func (k *ViewKind) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalEnumYAML(viewKindNames, node, k)
}

func (p BarLabelPosition) String() string { return barLabelPositionNames.format(int32(p)) }
func (p BarLabelPosition) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(barLabelPositionNames, p)
}
func (p *BarLabelPosition) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(barLabelPositionNames, data, p)
}
func (p BarLabelPosition) MarshalYAML() (any, error) {
	return marshalEnumYAML(barLabelPositionNames, p)
}
func (p *BarLabelPosition) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalEnumYAML(barLabelPositionNames, node, p)
}

func (t PointType) String() string               { return pointTypeNames.format(int32(t)) }
func (t PointType) MarshalJSON() ([]byte, error) { return marshalEnumJSON(pointTypeNames, t) }
func (t *PointType) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(pointTypeNames, data, t)
}
func (t PointType) MarshalYAML() (any, error) { return marshalEnumYAML(pointTypeNames, t) }
func (t *PointType) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalEnumYAML(pointTypeNames, node, t)
}

func (p PointLabelPosition) String() string { return pointLabelPositionNames.format(int32(p)) }
func (p PointLabelPosition) MarshalJSON() ([]byte, error) {
	return marshalEnumJSON(pointLabelPositionNames, p)
}
func (p *PointLabelPosition) UnmarshalJSON(data []byte) error {
	return unmarshalEnumJSON(pointLabelPositionNames, data, p)
}
func (p PointLabelPosition) MarshalYAML() (any, error) {
	return marshalEnumYAML(pointLabelPositionNames, p)
}
func (p *PointLabelPosition) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalEnumYAML(pointLabelPositionNames, node, p)
}
