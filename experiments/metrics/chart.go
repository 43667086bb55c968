package metrics

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WinRateSeries returns the running win rate (draws excluded) after each game,
// given the winners in game order and the mark of the tracked side.
func WinRateSeries(winners []string, self string) []float64 {
	series := make([]float64, len(winners))
	wins, losses := 0, 0
	for i, winner := range winners {
		switch winner {
		case self:
			wins++
		case "":
		default:
			losses++
		}
		if wins+losses > 0 {
			series[i] = float64(wins) / float64(wins+losses)
		}
	}
	return series
}

// RenderWinRateChart writes an HTML line chart of the running win rate.
func RenderWinRateChart(w io.Writer, title string, series []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)

	games := make([]string, len(series))
	items := make([]opts.LineData, len(series))
	for i, rate := range series {
		games[i] = fmt.Sprintf("%d", i+1)
		items[i] = opts.LineData{Value: rate}
	}
	line.SetXAxis(games).AddSeries("win rate (excluding draws)", items)

	page := components.NewPage()
	page.AddCharts(line)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render win rate chart: %w", err)
	}
	return nil
}

func (w *Writer) WriteWinRateChart(title string, series []float64) (err error) {
	path := filepath.Join(w.baseDir, "win_rate.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create win rate chart file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close win rate chart file: %w", cerr)
		}
	}()

	return RenderWinRateChart(f, title, series)
}
