package parser

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"vmedd-compare/internal/models"
)

// MissingMarker 心电导出文件中表示缺失值的字符，解析前替换为 0
const MissingMarker = "?"

// ParseECG 解析参考设备（心电，"Pat_"）导出文件
// 时间戳只支持整秒格式，数值为整数
func ParseECG(r io.Reader) (*models.VitalSeries, error) {
	result, _, err := parseECG(r, "")
	return result, err
}

func parseECG(r io.Reader, path string) (*models.VitalSeries, int, error) {
	result := models.NewVitalSeries(models.RoleReference)

	skipped, err := readRows(r, path, func(rw row) error {
		ts, err := parseSecondTimestamp(rw.fields[0])
		if err != nil {
			return formatError(path, rw.line, "timestamp", err)
		}
		heartRate, err := parseInteger(rw.fields[1])
		if err != nil {
			return formatError(path, rw.line, "heart_rate", err)
		}
		breathingRate, err := parseInteger(rw.fields[2])
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

// parseInteger "?" -> 0, "7?" -> 70
func parseInteger(field string) (int, error) {
	normalized := strings.TrimSpace(strings.ReplaceAll(field, MissingMarker, "0"))
	v, err := strconv.Atoi(normalized)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", field, err)
	}
	return v, nil
}
