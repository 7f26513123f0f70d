package models

import "time"

// Point 时间序列中的一个采样点
type Point struct {
	Time  time.Time
	Value int
}

// TimeSeries 按文件行顺序排列的采样序列（不排序、不校验单调性）
type TimeSeries struct {
	Name   string
	Points []Point
}

// Append 追加一个采样点
func (s *TimeSeries) Append(t time.Time, value int) {
	s.Points = append(s.Points, Point{Time: t, Value: value})
}

// Len 返回采样点数量
func (s TimeSeries) Len() int {
	return len(s.Points)
}

// Times 返回全部时间戳
func (s TimeSeries) Times() []time.Time {
	times := make([]time.Time, len(s.Points))
	for i, p := range s.Points {
		times[i] = p.Time
	}
	return times
}

// Values 返回全部数值
func (s TimeSeries) Values() []int {
	values := make([]int, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.Value
	}
	return values
}

// VitalSeries 单个数据源解析结果：心率和呼吸率两条序列
// 每个有效行同时向两条序列各追加一个点，两者长度始终相等
type VitalSeries struct {
	Source        Role
	HeartRate     TimeSeries
	BreathingRate TimeSeries
}

// NewVitalSeries 创建指定数据源的空结果
func NewVitalSeries(source Role) *VitalSeries {
	return &VitalSeries{
		Source:        source,
		HeartRate:     TimeSeries{Name: string(source) + "-heart-rate"},
		BreathingRate: TimeSeries{Name: string(source) + "-breathing-rate"},
	}
}

// AppendRow 将一行数据写入两条序列
func (v *VitalSeries) AppendRow(t time.Time, heartRate, breathingRate int) {
	v.HeartRate.Append(t, heartRate)
	v.BreathingRate.Append(t, breathingRate)
}

// Rows 返回已消费的数据行数
func (v *VitalSeries) Rows() int {
	return v.HeartRate.Len()
}
