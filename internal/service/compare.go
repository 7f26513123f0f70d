package service

import (
	"context"
	"fmt"

	"vmedd-compare/internal/locator"
	"vmedd-compare/internal/models"
	"vmedd-compare/internal/parser"
	"vmedd-compare/internal/render"

	"go.uber.org/zap"
)

// FigureDisplay 显示对比图
type FigureDisplay interface {
	ShowFigure(ctx context.Context, fig models.Figure) error
}

// CompareService 对比流程：选择目录 -> 定位文件 -> 解析 -> 构建图表 -> 显示
type CompareService struct {
	selector FolderSelector
	display  FigureDisplay
	parser   *parser.Parser
	logger   *zap.Logger
}

// NewCompareService 创建对比服务
func NewCompareService(
	selector FolderSelector,
	display FigureDisplay,
	p *parser.Parser,
	logger *zap.Logger,
) *CompareService {
	return &CompareService{
		selector: selector,
		display:  display,
		parser:   p,
		logger:   logger,
	}
}

// Run 按顺序执行一次完整对比，任何一步出错立即返回
func (s *CompareService) Run(ctx context.Context) error {
	dir, err := s.selector.SelectFolder(ctx)
	if err != nil {
		return fmt.Errorf("failed to select folder: %w", err)
	}
	s.logger.Info("Folder selected", zap.String("dir", dir))

	sources, err := locator.Locate(dir)
	if err != nil {
		return fmt.Errorf("failed to locate source files: %w", err)
	}
	s.logger.Info("Source files located",
		zap.String("radar", sources.Radar.Path),
		zap.String("reference", sources.Reference.Path),
	)

	radar, err := s.parser.ParseFile(sources.Radar)
	if err != nil {
		return fmt.Errorf("failed to parse radar file: %w", err)
	}

	ecg, err := s.parser.ParseFile(sources.Reference)
	if err != nil {
		return fmt.Errorf("failed to parse reference file: %w", err)
	}

	fig := render.BuildFigure(radar, ecg)
	if err := s.display.ShowFigure(ctx, fig); err != nil {
		return fmt.Errorf("failed to show figure: %w", err)
	}
	return nil
}
