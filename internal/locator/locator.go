package locator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vmedd-compare/internal/models"
)

const (
	// ReferenceMarker 参考设备（心电）导出文件名中包含的子串
	ReferenceMarker = "Pat_"
	// RadarFileName 雷达监护仪导出文件的完整文件名
	RadarFileName = "VMedDHealthMonitorResults.csv"
)

// Sources 定位结果
type Sources struct {
	Reference models.SourceFile
	Radar     models.SourceFile
}

// Match 按目录列出顺序依次匹配文件名，每个角色取最后一个匹配项
// 名称包含 "Pat_" 的条目不再参与雷达文件匹配
func Match(names []string) (reference, radar string, ok bool) {
	for _, name := range names {
		if strings.Contains(name, ReferenceMarker) {
			reference = name
		} else if name == RadarFileName {
			radar = name
		}
	}
	return reference, radar, reference != "" && radar != ""
}

// Locate 读取目录（非递归，保持文件系统返回的顺序）并定位两个数据文件
func Locate(dir string) (*Sources, error) {
	names, err := listDir(dir)
	if err != nil {
		kind := models.KindIO
		if dir == "" || errors.Is(err, os.ErrNotExist) {
			kind = models.KindSelection
		}
		return nil, &models.CompareError{Kind: kind, Path: dir, Err: fmt.Errorf("failed to list directory: %w", err)}
	}

	reference, radar, _ := Match(names)
	if reference == "" {
		return nil, &models.CompareError{
			Kind: models.KindDiscovery,
			Path: dir,
			Err:  fmt.Errorf("no %s file containing %q", models.RoleReference, ReferenceMarker),
		}
	}
	if radar == "" {
		return nil, &models.CompareError{
			Kind: models.KindDiscovery,
			Path: dir,
			Err:  fmt.Errorf("no %s file named %q", models.RoleRadar, RadarFileName),
		}
	}

	return &Sources{
		Reference: models.SourceFile{Path: filepath.Join(dir, reference), Role: models.RoleReference},
		Radar:     models.SourceFile{Path: filepath.Join(dir, radar), Role: models.RoleRadar},
	}, nil
}

func listDir(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Readdirnames 不排序，与目录本身的列出顺序一致
	return f.Readdirnames(-1)
}
