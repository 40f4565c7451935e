package model

// Assemble combines resolved parts into a Chart. It performs no validation;
// view order is kept as given.
func Assemble(requestID, title string, geometry Geometry, axes []Axis, views []View) Chart {
	return Chart{
		RequestID: requestID,
		Title:     title,
		Geometry:  geometry,
		Axes:      axes,
		Views:     views,
	}
}
