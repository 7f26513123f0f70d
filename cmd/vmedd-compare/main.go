package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vmedd-compare/internal/config"
	logpkg "vmedd-compare/internal/logger"
	"vmedd-compare/internal/models"
	"vmedd-compare/internal/parser"
	"vmedd-compare/internal/service"
	"vmedd-compare/internal/viewer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Version 软件版本号，启动时输出到控制台
const Version = "1.4"

func main() {
	fmt.Println("Software Version " + Version)

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	log, err := logpkg.NewLogger(cfg.Log.Level, cfg.Log.Format, "vmedd-compare")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log = log.With(zap.String("run_id", uuid.NewString()))

	code := run(cfg, log)
	_ = log.Sync()
	os.Exit(code)
}

func run(cfg *config.Config, log *zap.Logger) int {
	a := app.New()
	win := viewer.NewWindow(a, cfg, log)

	var selector service.FolderSelector = win
	if cfg.Compare.Dir != "" {
		log.Info("Using preconfigured folder", zap.String("dir", cfg.Compare.Dir))
		selector = service.NewStaticSelector(cfg.Compare.Dir)
	}
	svc := service.NewCompareService(selector, win, parser.NewParser(log), log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 流程在事件循环启动后运行；出错时退出事件循环
	done := make(chan error, 1)
	a.Lifecycle().SetOnStarted(func() {
		go func() {
			err := svc.Run(ctx)
			done <- err
			if err != nil {
				fyne.Do(a.Quit)
			}
		}()
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		fyne.Do(a.Quit)
	}()

	log.Info("Starting vmedd-compare", zap.String("version", Version))
	win.Show()
	a.Run()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			log.Error("Comparison failed",
				zap.String("error_kind", models.KindOf(err).String()),
				zap.Error(err),
			)
			return 1
		}
		log.Info("Viewer closed")
		return 0
	default:
		log.Error("Viewer closed before the comparison finished")
		return 1
	}
}
