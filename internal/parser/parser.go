package parser

import (
	"fmt"
	"io"
	"os"

	"vmedd-compare/internal/models"

	"go.uber.org/zap"
)

// Parser 按文件角色选择解析方式
type Parser struct {
	logger *zap.Logger
}

// NewParser 创建解析器
func NewParser(logger *zap.Logger) *Parser {
	return &Parser{logger: logger}
}

// ParseFile 打开并解析一个数据文件；文件在读取结束或出错时关闭
func (p *Parser) ParseFile(src models.SourceFile) (*models.VitalSeries, error) {
	var parse func(io.Reader, string) (*models.VitalSeries, int, error)
	switch src.Role {
	case models.RoleRadar:
		parse = parseVMedD
	case models.RoleReference:
		parse = parseECG
	default:
		return nil, fmt.Errorf("unsupported source role: %q", src.Role)
	}

	f, err := os.Open(src.Path)
	if err != nil {
		return nil, &models.CompareError{Kind: models.KindIO, Path: src.Path, Err: fmt.Errorf("failed to open file: %w", err)}
	}
	defer f.Close()

	result, skipped, err := parse(f, src.Path)
	if err != nil {
		p.logger.Error("Failed to parse source file",
			zap.String("role", string(src.Role)),
			zap.String("path", src.Path),
			zap.Error(err),
		)
		return nil, err
	}

	p.logger.Info("Parsed source file",
		zap.String("role", string(src.Role)),
		zap.String("path", src.Path),
		zap.Int("rows", result.Rows()),
		zap.Int("header_rows", skipped),
	)
	return result, nil
}
