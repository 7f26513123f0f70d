package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"vmedd-compare/internal/locator"
	"vmedd-compare/internal/models"
	"vmedd-compare/internal/parser"
	"vmedd-compare/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	vmeddCSV = "Time; Heartrate; Breathingrate\n" +
		"2024-01-01_10:00:00;70,0;16,0\n" +
		"2024-01-01_10:00:01;72,0;15,0\n"
	ecgCSV = "Time; Heartrate; Breathingrate\n" +
		"2024-01-01_10:00:00;71;16\n" +
		"2024-01-01_10:00:01;?;15\n"
)

func sessionDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func newService(selector service.FolderSelector, display service.FigureDisplay) *service.CompareService {
	logger := zap.NewNop()
	return service.NewCompareService(selector, display, parser.NewParser(logger), logger)
}

func panelValues(p models.PlotSeries) []int {
	out := make([]int, len(p.Points))
	for i, pt := range p.Points {
		out[i] = pt.Value
	}
	return out
}

func TestCompareService_Run_EndToEnd(t *testing.T) {
	dir := sessionDir(t, map[string]string{
		locator.RadarFileName: vmeddCSV,
		"Pat_0815.csv":        ecgCSV,
		"other.txt":           "ignored",
	})
	display := &fakeDisplay{}

	err := newService(service.NewStaticSelector(dir), display).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, display.figures, 1)
	fig := display.figures[0]
	require.Len(t, fig.Panels, 2)

	hr := fig.Panels[0]
	assert.Equal(t, "Herzfrequenz", hr.Title)
	assert.Equal(t, "Radar", hr.Series[0].Label)
	assert.Equal(t, []int{70, 72}, panelValues(hr.Series[0]))
	assert.Equal(t, "EKG", hr.Series[1].Label)
	assert.Equal(t, []int{71, 0}, panelValues(hr.Series[1]))
	assert.Equal(t, time.Second, hr.Series[1].Points[1].Time.Sub(hr.Series[1].Points[0].Time))

	br := fig.Panels[1]
	assert.Equal(t, "Atemfrequenz", br.Title)
	assert.Equal(t, []int{16, 15}, panelValues(br.Series[0]))
	assert.Equal(t, []int{16, 15}, panelValues(br.Series[1]))
}

func TestCompareService_Run_SelectionCancelled(t *testing.T) {
	selector := &fakeSelector{err: &models.CompareError{Kind: models.KindSelection, Err: models.ErrSelectionCancelled}}
	display := &fakeDisplay{}

	err := newService(selector, display).Run(context.Background())

	require.Error(t, err)
	assert.Equal(t, models.KindSelection, models.KindOf(err))
	assert.True(t, errors.Is(err, models.ErrSelectionCancelled))
	assert.Equal(t, 1, selector.calls)
	assert.Empty(t, display.figures)
}

func TestCompareService_Run_EmptySelection(t *testing.T) {
	display := &fakeDisplay{}

	err := newService(&fakeSelector{dir: ""}, display).Run(context.Background())

	require.Error(t, err)
	assert.Equal(t, models.KindSelection, models.KindOf(err))
	assert.Empty(t, display.figures)
}

func TestCompareService_Run_DiscoveryFailure(t *testing.T) {
	dir := sessionDir(t, map[string]string{locator.RadarFileName: vmeddCSV})
	display := &fakeDisplay{}

	err := newService(&fakeSelector{dir: dir}, display).Run(context.Background())

	require.Error(t, err)
	assert.Equal(t, models.KindDiscovery, models.KindOf(err))
	assert.Empty(t, display.figures)
}

func TestCompareService_Run_FormatFailureIsFatal(t *testing.T) {
	dir := sessionDir(t, map[string]string{
		locator.RadarFileName: vmeddCSV,
		"Pat_1.csv":           ecgCSV + "2024-01-01_10:00:02;seventy;15\n",
	})
	display := &fakeDisplay{}

	err := newService(&fakeSelector{dir: dir}, display).Run(context.Background())

	require.Error(t, err)
	var ce *models.CompareError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, models.KindFormat, ce.Kind)
	assert.Equal(t, 4, ce.Line)
	assert.Equal(t, filepath.Join(dir, "Pat_1.csv"), ce.Path)
	assert.Empty(t, display.figures)
}

func TestCompareService_Run_DisplayError(t *testing.T) {
	dir := sessionDir(t, map[string]string{
		locator.RadarFileName: vmeddCSV,
		"Pat_1.csv":           ecgCSV,
	})
	display := &fakeDisplay{err: errors.New("window gone")}

	err := newService(&fakeSelector{dir: dir}, display).Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "window gone")
}

func TestStaticSelector_NormalizesPath(t *testing.T) {
	dir, err := service.NewStaticSelector("data/session/").SelectFolder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("data", "session"), dir)

	dir, err = service.NewStaticSelector("").SelectFolder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", dir)
}
