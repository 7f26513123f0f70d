package models

import "image/color"

// Figure 两个上下排列的面板（心率、呼吸率）
type Figure struct {
	Title  string
	Panels []Panel
}

// Panel 单个图表面板；Y 轴范围固定，不随数据变化
type Panel struct {
	Title  string
	YMin   float64
	YMax   float64
	Grid   bool
	Series []PlotSeries
}

// PlotSeries 面板中的一条折线
type PlotSeries struct {
	Label  string
	Color  color.RGBA
	Points []Point
}
