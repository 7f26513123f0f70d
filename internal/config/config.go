package config

import (
	"os"
	"strconv"
)

// Config 对比工具配置
type Config struct {
	// 对比流程配置
	Compare struct {
		// 预先指定的数据目录；为空时弹出目录选择对话框
		Dir string
	}

	// 图表窗口配置
	Viewer struct {
		Width  int // 窗口宽度（像素），默认 1000
		Height int // 窗口高度（像素），默认 800
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load 加载配置
func Load() (*Config, error) {
	cfg := &Config{}

	// 从环境变量加载（默认值）
	cfg.Compare.Dir = getEnv("COMPARE_DIR", "")

	cfg.Viewer.Width = getEnvInt("VIEWER_WIDTH", 1000)
	cfg.Viewer.Height = getEnvInt("VIEWER_HEIGHT", 800)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "console")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt 读取正整数环境变量，非法值回退到默认值
func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil && v > 0 {
		return v
	}
	return defaultValue
}
