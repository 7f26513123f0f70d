package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"vmedd-compare/internal/models"
)

const (
	// Delimiter 两种导出文件均使用分号分隔
	Delimiter = ';'
	// HeaderSentinel 表头行心率列的原始内容，出现该值的行整行跳过
	HeaderSentinel = " Heartrate"

	// 月、日、时、分、秒接受一位或两位数字
	secondLayout    = "2006-1-2_15:4:5"
	milliLayout     = "2006-1-2_15:4:5.000"
	subSecondLength = 23
)

// row 一条已通过表头判断、字段数足够的数据行
type row struct {
	line   int
	fields []string
}

// readRows 逐行读取 CSV，跳过表头行和空行，对每个数据行调用 fn
// 任意一行出错立即终止，不做行级恢复
func readRows(r io.Reader, path string, fn func(row) error) (skipped int, err error) {
	reader := csv.NewReader(r)
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return skipped, nil
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return skipped, &models.CompareError{Kind: models.KindFormat, Path: path, Line: pe.Line, Err: err}
			}
			return skipped, &models.CompareError{Kind: models.KindIO, Path: path, Err: fmt.Errorf("failed to read csv: %w", err)}
		}

		line, _ := reader.FieldPos(0)
		if len(record) < 2 {
			return skipped, formatError(path, line, "", fmt.Errorf("expected 3 fields, got %d", len(record)))
		}
		if record[1] == HeaderSentinel {
			skipped++
			continue
		}
		if len(record) < 3 {
			return skipped, formatError(path, line, "", fmt.Errorf("expected 3 fields, got %d", len(record)))
		}

		if err := fn(row{line: line, fields: record}); err != nil {
			return skipped, err
		}
	}
}

// parseSecondTimestamp 解析 YYYY-MM-DD_HH:MM:SS（本地时区的墙上时间）
func parseSecondTimestamp(raw string) (time.Time, error) {
	return time.ParseInLocation(secondLayout, raw, time.Local)
}

func formatError(path string, line int, field string, err error) error {
	return &models.CompareError{Kind: models.KindFormat, Path: path, Line: line, Field: field, Err: err}
}
