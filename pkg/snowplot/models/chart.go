package models

import "image/color"

// ChartSeries is one line of a chart.
type ChartSeries struct {
	// Name is the legend label.
	Name string
	// Color is the line colour.
	Color color.RGBA
	// X and Y are the point coordinates. NaN in Y marks a missing point.
	X []float64
	Y []float64
}

// Tick is a labelled x-axis position.
type Tick struct {
	Value float64
	Label string
}

// Chart describes one time-series chart independently of the renderer.
type Chart struct {
	// Name is the file stem (e.g. "cellA_snowalgae_2012_TA_Rai_wfdei").
	Name string
	// Title is the chart title.
	Title string
	// XAxisTitle is the x-axis title.
	XAxisTitle string
	// YAxisTitle is the y-axis title.
	YAxisTitle string
	// XAxisRange is the x-axis range [min, max].
	XAxisRange [2]float64
	// XTicks are the labelled x-axis positions.
	XTicks []Tick
	// YAxisRange is the y-axis range [min, max].
	YAxisRange [2]float64
	// LogScale selects a logarithmic y-axis.
	LogScale bool
	// Threshold draws a horizontal reference line when non-nil.
	Threshold *float64
	// Series is the list of lines included in the chart.
	Series []ChartSeries
}
