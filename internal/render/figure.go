package render

import (
	"image/color"

	"vmedd-compare/internal/models"
)

const (
	FigureTitle        = "CSV Vergleich"
	HeartRateTitle     = "Herzfrequenz"
	BreathingRateTitle = "Atemfrequenz"

	RadarLabel = "Radar"
	ECGLabel   = "EKG"
)

// 面板 Y 轴范围是静态配置，不随数据变化
const (
	HeartRateMin     = 40
	HeartRateMax     = 120
	BreathingRateMin = 0
	BreathingRateMax = 40
)

var (
	RadarColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ECGColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// BuildFigure 构建对比图：上方心率面板，下方呼吸率面板
// 每个面板先画雷达（VMedD）序列，再画心电序列
func BuildFigure(radar, ecg *models.VitalSeries) models.Figure {
	return models.Figure{
		Title: FigureTitle,
		Panels: []models.Panel{
			{
				Title: HeartRateTitle,
				YMin:  HeartRateMin,
				YMax:  HeartRateMax,
				Grid:  true,
				Series: []models.PlotSeries{
					{Label: RadarLabel, Color: RadarColor, Points: radar.HeartRate.Points},
					{Label: ECGLabel, Color: ECGColor, Points: ecg.HeartRate.Points},
				},
			},
			{
				Title: BreathingRateTitle,
				YMin:  BreathingRateMin,
				YMax:  BreathingRateMax,
				Grid:  true,
				Series: []models.PlotSeries{
					{Label: RadarLabel, Color: RadarColor, Points: radar.BreathingRate.Points},
					{Label: ECGLabel, Color: ECGColor, Points: ecg.BreathingRate.Points},
				},
			},
		},
	}
}
