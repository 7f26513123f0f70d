package locator

import "path/filepath"

// NormalizeDir 将选择到的目录转换为本机路径分隔符；空路径保持为空
func NormalizeDir(dir string) string {
	if dir == "" {
		return ""
	}
	return filepath.Clean(filepath.FromSlash(dir))
}
