package models

// Role 数据文件角色
type Role string

const (
	// RoleReference 参考设备（心电）导出文件，文件名包含 "Pat_"
	RoleReference Role = "reference"
	// RoleRadar 雷达监护仪（VMedD）导出文件
	RoleRadar Role = "radar"
)

// SourceFile 已定位的数据文件
type SourceFile struct {
	Path string
	Role Role
}
