package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind 错误分类
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindSelection 未选择目录或目录无效
	KindSelection
	// KindDiscovery 目录中缺少所需文件
	KindDiscovery
	// KindFormat 行内时间戳或数值格式不符合预期
	KindFormat
	// KindIO 文件无法读取
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindSelection:
		return "selection"
	case KindDiscovery:
		return "discovery"
	case KindFormat:
		return "format"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// ErrSelectionCancelled 用户关闭了目录选择对话框
var ErrSelectionCancelled = errors.New("folder selection cancelled")

// CompareError 对比流程中的错误，携带分类和定位信息
type CompareError struct {
	Kind  ErrorKind
	Path  string
	Line  int    // 1-based，0 表示与具体行无关
	Field string // 出错字段名，可为空
	Err   error
}

func (e *CompareError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s error", e.Kind)
	if e.Path != "" {
		fmt.Fprintf(&b, " in %s", e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " (%s)", e.Field)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *CompareError) Unwrap() error {
	return e.Err
}

// KindOf 返回错误链中第一个 CompareError 的分类
func KindOf(err error) ErrorKind {
	var ce *CompareError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}
