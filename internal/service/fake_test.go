package service_test

import (
	"context"

	"vmedd-compare/internal/models"
)

// fakeSelector 仅用于单元测试（返回固定结果）
type fakeSelector struct {
	dir   string
	err   error
	calls int
}

func (f *fakeSelector) SelectFolder(ctx context.Context) (string, error) {
	f.calls++
	return f.dir, f.err
}

// fakeDisplay 记录收到的图表
type fakeDisplay struct {
	figures []models.Figure
	err     error
}

func (f *fakeDisplay) ShowFigure(ctx context.Context, fig models.Figure) error {
	if f.err != nil {
		return f.err
	}
	f.figures = append(f.figures, fig)
	return nil
}
