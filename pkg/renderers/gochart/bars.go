package gochart

import (
	"errors"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/goliatone/go-chartgen/pkg/model"
)

const minBarWidth = 4

func barChart(c model.Chart) (*chart.BarChart, error) {
	vertical := c.Views[0].Vertical
	yAxis, err := yAxisFor(vertical, axisLabel(c, model.AxisPositionLeft, model.AxisPositionRight))
	if err != nil {
		return nil, err
	}

	var categories []string
	innerPadding := 0.0
	if band := c.Views[0].Horizontal.Band; band != nil {
		categories = band.Categories
		innerPadding = band.InnerPadding
	}

	var bars []chart.Value
	for _, view := range c.Views {
		for _, dataset := range view.Values.Bars {
			for i, value := range dataset.Values {
				label := ""
				if i < len(categories) {
					label = categories[i]
				}
				bars = append(bars, chart.Value{
					Value: value,
					Label: label,
					Style: chart.Style{
						FillColor:   toDrawing(dataset.Fill),
						StrokeColor: toDrawing(dataset.Stroke),
						StrokeWidth: 1,
					},
				})
			}
		}
	}
	if len(bars) == 0 {
		return nil, errors.New("gochart: bar views have no values")
	}

	return &chart.BarChart{
		Title:      c.Title,
		Width:      c.Geometry.Width,
		Height:     c.Geometry.Height,
		Background: chart.Style{Padding: padding(c.Geometry)},
		BarWidth:   barWidth(c.Geometry.InnerWidth(), len(bars), innerPadding),
		YAxis:      yAxis,
		Bars:       bars,
	}, nil
}

// barWidth splits the inner width evenly, reserving innerPadding of each slot
// for spacing.
func barWidth(innerWidth, count int, innerPadding float64) int {
	if count == 0 || innerWidth <= 0 {
		return minBarWidth
	}
	slot := float64(innerWidth) / float64(count)
	width := int(slot * (1 - innerPadding))
	if width < minBarWidth {
		return minBarWidth
	}
	return width
}
