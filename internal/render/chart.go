package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"time"

	"vmedd-compare/internal/models"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// TimeAxisFormat X 轴时间刻度格式
const TimeAxisFormat = "15:04:05"

// XPadding 时间戳少于两个不同值时，X 轴在该时间点两侧留出的宽度
const XPadding = time.Second

// emptyXAnchor 面板完全没有数据点时 X 轴的默认位置
var emptyXAnchor = time.Date(2000, 1, 1, 0, 0, 0, 0, time.Local)

var gridStyle = chart.Style{
	StrokeColor: drawing.ColorFromHex("d0d0d0"),
	StrokeWidth: 1.0,
}

// PanelChart 将面板转换为 go-chart 图表（Y 轴范围固定为面板配置）
func PanelChart(panel models.Panel, width, height int) chart.Chart {
	xRange, anchor := panelXRange(panel)

	series := make([]chart.Series, 0, len(panel.Series))
	for _, s := range panel.Series {
		xs := make([]time.Time, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i] = p.Time
			ys[i] = float64(p.Value)
		}
		// go-chart 不接受空序列；单点折线不绘制任何线段，图例照常显示
		if len(xs) == 0 {
			xs = []time.Time{anchor}
			ys = []float64{panel.YMin}
		}
		series = append(series, chart.TimeSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: drawing.Color{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: s.Color.A},
				StrokeWidth: 1.5,
			},
		})
	}

	ch := chart.Chart{
		Title:      panel.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat(TimeAxisFormat),
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: panel.YMin, Max: panel.YMax},
		},
		Series: series,
	}

	if xRange != nil {
		ch.XAxis.Range = xRange
	}

	if panel.Grid {
		ch.XAxis.GridMajorStyle, ch.XAxis.GridMinorStyle = gridStyle, gridStyle
		ch.YAxis.GridMajorStyle, ch.YAxis.GridMinorStyle = gridStyle, gridStyle
	} else {
		ch.XAxis.GridMajorStyle, ch.XAxis.GridMinorStyle = chart.Hidden(), chart.Hidden()
		ch.YAxis.GridMajorStyle, ch.YAxis.GridMinorStyle = chart.Hidden(), chart.Hidden()
	}

	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// panelXRange 面板内不同时间戳少于两个时返回固定的 X 轴范围，否则返回 nil（按数据自动计算）
// anchor 为落在 X 轴范围内的时间点，供空序列占位
func panelXRange(panel models.Panel) (*chart.ContinuousRange, time.Time) {
	var first time.Time
	seen, distinct := false, false
	for _, s := range panel.Series {
		for _, p := range s.Points {
			if !seen {
				first, seen = p.Time, true
			} else if !p.Time.Equal(first) {
				distinct = true
			}
		}
	}
	if distinct {
		return nil, first
	}

	center := first
	if !seen {
		center = emptyXAnchor
	}
	return &chart.ContinuousRange{
		Min: chart.TimeToFloat64(center.Add(-XPadding)),
		Max: chart.TimeToFloat64(center.Add(XPadding)),
	}, center
}

// RenderPanel 渲染面板为图像
func RenderPanel(panel models.Panel, width, height int) (image.Image, error) {
	ch := PanelChart(panel, width, height)

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render panel %q: %w", panel.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode panel %q: %w", panel.Title, err)
	}
	return img, nil
}

// RenderFigure 依次渲染全部面板，每个面板占窗口高度的一份
func RenderFigure(fig models.Figure, width, height int) ([]image.Image, error) {
	if len(fig.Panels) == 0 {
		return nil, fmt.Errorf("figure %q has no panels", fig.Title)
	}
	panelHeight := height / len(fig.Panels)

	images := make([]image.Image, 0, len(fig.Panels))
	for _, panel := range fig.Panels {
		img, err := RenderPanel(panel, width, panelHeight)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}
