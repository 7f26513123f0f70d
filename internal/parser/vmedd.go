package parser

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"vmedd-compare/internal/models"
)

// ParseVMedD 解析雷达监护仪（VMedD）导出文件
// 数值使用逗号作小数点，转换后向零截断为整数；时间戳精度按长度判断
func ParseVMedD(r io.Reader) (*models.VitalSeries, error) {
	result, _, err := parseVMedD(r, "")
	return result, err
}

func parseVMedD(r io.Reader, path string) (*models.VitalSeries, int, error) {
	result := models.NewVitalSeries(models.RoleRadar)

	skipped, err := readRows(r, path, func(rw row) error {
		ts, err := parseVMedDTimestamp(rw.fields[0])
		if err != nil {
			return formatError(path, rw.line, "timestamp", err)
		}
		heartRate, err := parseDecimal(rw.fields[1])
		if err != nil {
			return formatError(path, rw.line, "heart_rate", err)
		}
		breathingRate, err := parseDecimal(rw.fields[2])
		if err != nil {
			return formatError(path, rw.line, "breathing_rate", err)
		}

		result.AppendRow(ts, heartRate, breathingRate)
		return nil
	})
	if err != nil {
		return nil, skipped, err
	}
	return result, skipped, nil
}

// parseVMedDTimestamp 23 个字符按 YYYY-MM-DD_HH:MM:SS:fff 解析，其余长度一律按整秒格式解析
func parseVMedDTimestamp(raw string) (time.Time, error) {
	if len(raw) != subSecondLength {
		return parseSecondTimestamp(raw)
	}
	if raw[19] != ':' {
		return time.Time{}, fmt.Errorf("invalid sub-second separator in %q", raw)
	}
	return time.ParseInLocation(milliLayout, raw[:19]+"."+raw[20:], time.Local)
}

// parseDecimal "98,6" -> 98
func parseDecimal(field string) (int, error) {
	normalized := strings.TrimSpace(strings.ReplaceAll(field, ",", "."))
	f, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal %q: %w", field, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, fmt.Errorf("decimal %q out of integer range", field)
	}
	return int(f), nil
}
