package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testTime(sec int) time.Time {
	return time.Date(2024, 1, 1, 10, 0, sec, 0, time.Local)
}

func TestVitalSeries_AppendRowKeepsSeriesAligned(t *testing.T) {
	v := NewVitalSeries(RoleRadar)
	assert.Equal(t, "radar-heart-rate", v.HeartRate.Name)
	assert.Equal(t, "radar-breathing-rate", v.BreathingRate.Name)

	v.AppendRow(testTime(0), 70, 16)
	v.AppendRow(testTime(1), 72, 15)

	assert.Equal(t, 2, v.Rows())
	assert.Equal(t, v.HeartRate.Times(), v.BreathingRate.Times())
	assert.Equal(t, []int{70, 72}, v.HeartRate.Values())
	assert.Equal(t, []int{16, 15}, v.BreathingRate.Values())
}

func TestTimeSeries_KeepsInsertionOrder(t *testing.T) {
	var s TimeSeries
	s.Append(testTime(5), 1)
	s.Append(testTime(2), 2)

	assert.Equal(t, []time.Time{testTime(5), testTime(2)}, s.Times())
	assert.Equal(t, 2, s.Len())
}
