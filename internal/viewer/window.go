package viewer

import (
	"context"
	"fmt"

	"vmedd-compare/internal/config"
	"vmedd-compare/internal/locator"
	"vmedd-compare/internal/models"
	"vmedd-compare/internal/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

// Prompt 目录选择对话框提示语
const Prompt = "Bitte wählen sie den Ordner aus in dem sich die CSV dateien befinden"

// Window 主窗口：先承载目录选择对话框，随后显示对比图
// 关闭窗口即结束程序
type Window struct {
	window fyne.Window
	width  int
	height int
	logger *zap.Logger
}

// NewWindow 创建主窗口（尚未显示）
func NewWindow(app fyne.App, cfg *config.Config, logger *zap.Logger) *Window {
	w := app.NewWindow(render.FigureTitle)
	w.Resize(fyne.NewSize(float32(cfg.Viewer.Width), float32(cfg.Viewer.Height)))
	w.SetContent(widget.NewLabel(Prompt))
	w.SetMaster()

	return &Window{
		window: w,
		width:  cfg.Viewer.Width,
		height: cfg.Viewer.Height,
		logger: logger,
	}
}

// Show 显示窗口，须在 UI 线程调用
func (w *Window) Show() {
	w.window.Show()
}

type selection struct {
	uri fyne.ListableURI
	err error
}

// SelectFolder 弹出目录选择对话框并阻塞到用户确认或取消
func (w *Window) SelectFolder(ctx context.Context) (string, error) {
	picked := make(chan selection, 1)

	fyne.Do(func() {
		w.window.SetTitle(Prompt)
		d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
			picked <- selection{uri: uri, err: err}
		}, w.window)
		d.Resize(fyne.NewSize(float32(w.width)*0.9, float32(w.height)*0.9))
		d.Show()
	})

	select {
	case <-ctx.Done():
		return "", &models.CompareError{Kind: models.KindSelection, Err: ctx.Err()}
	case s := <-picked:
		if s.err != nil {
			return "", &models.CompareError{Kind: models.KindSelection, Err: fmt.Errorf("folder dialog failed: %w", s.err)}
		}
		if s.uri == nil {
			return "", &models.CompareError{Kind: models.KindSelection, Err: models.ErrSelectionCancelled}
		}
		dir := locator.NormalizeDir(s.uri.Path())
		w.logger.Debug("Folder picked from dialog", zap.String("uri", s.uri.String()))
		return dir, nil
	}
}

// ShowFigure 渲染对比图并替换窗口内容
func (w *Window) ShowFigure(ctx context.Context, fig models.Figure) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	images, err := render.RenderFigure(fig, w.width, w.height)
	if err != nil {
		return err
	}

	panels := make([]fyne.CanvasObject, 0, len(images))
	for _, img := range images {
		ci := canvas.NewImageFromImage(img)
		ci.FillMode = canvas.ImageFillContain
		panels = append(panels, ci)
	}

	fyne.Do(func() {
		title := widget.NewLabelWithStyle(fig.Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		w.window.SetTitle(fig.Title)
		w.window.SetContent(container.NewBorder(title, nil, nil, nil, container.NewGridWithRows(len(panels), panels...)))
	})

	w.logger.Info("Figure displayed", zap.Int("panels", len(panels)))
	return nil
}
