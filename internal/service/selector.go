package service

import (
	"context"

	"vmedd-compare/internal/locator"
)

// FolderSelector 提供数据目录
type FolderSelector interface {
	SelectFolder(ctx context.Context) (string, error)
}

// StaticSelector 使用预先配置的目录，不弹出对话框
type StaticSelector struct {
	dir string
}

// NewStaticSelector 创建固定目录选择器
func NewStaticSelector(dir string) *StaticSelector {
	return &StaticSelector{dir: dir}
}

// SelectFolder 返回配置的目录（转换为本机路径分隔符）
func (s *StaticSelector) SelectFolder(ctx context.Context) (string, error) {
	return locator.NormalizeDir(s.dir), nil
}
